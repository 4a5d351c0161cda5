package main

import (
	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/meeting-digest/internal/aggregator"
	"github.com/nguyentantai21042004/meeting-digest/internal/audio"
	"github.com/nguyentantai21042004/meeting-digest/internal/config"
	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-digest/internal/provider"
	"github.com/nguyentantai21042004/meeting-digest/internal/renderer"
	"github.com/nguyentantai21042004/meeting-digest/internal/scanner"
	"github.com/nguyentantai21042004/meeting-digest/internal/summarizer"
	"github.com/nguyentantai21042004/meeting-digest/internal/transcriber"
	"github.com/nguyentantai21042004/meeting-digest/pkg/executor"
	"github.com/nguyentantai21042004/meeting-digest/pkg/retry"
)

type app struct {
	transcriber transcriber.Coordinator
	pipeline    pipeline.Pipeline
}

// newApp wires every stage from cfg. Remote clients are only built for the providers in use.
func newApp(cfg *config.Config, log logger.Logger) *app {
	policy := retry.Policy{
		MaxRetries:      cfg.Retry.MaxRetries,
		InitialInterval: cfg.Retry.InitialInterval,
		MaxElapsed:      cfg.Retry.MaxElapsed,
	}

	var openaiClient *openai.Client
	var gemini *provider.Gemini
	if cfg.Transcription.Provider == config.ProviderOpenAI || cfg.Summarization.Provider == config.ProviderOpenAI {
		openaiClient = provider.NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
	}
	if cfg.Transcription.Provider == config.ProviderGemini || cfg.Summarization.Provider == config.ProviderGemini {
		gemini = provider.NewGemini(cfg.Gemini.APIKeys, log)
	}

	var stt transcriber.Service
	var sttTransient retry.Classifier
	if cfg.Transcription.Provider == config.ProviderGemini {
		stt = transcriber.NewGemini(gemini, cfg.Transcription.Model, cfg.Transcription.Prompt)
		sttTransient = provider.GeminiTransient
	} else {
		stt = transcriber.NewOpenAI(openaiClient, cfg.Transcription.Model, cfg.Transcription.Language, cfg.Transcription.Prompt)
		sttTransient = provider.OpenAITransient
	}

	var llm summarizer.Service
	var llmTransient retry.Classifier
	if cfg.Summarization.Provider == config.ProviderGemini {
		llm = summarizer.NewGemini(gemini, cfg.Summarization.Model)
		llmTransient = provider.GeminiTransient
	} else {
		llm = summarizer.NewOpenAI(openaiClient, cfg.Summarization.Model)
		llmTransient = provider.OpenAITransient
	}

	codec := audio.NewFFmpegCodec(executor.New(), cfg.Audio.FFmpegPath, cfg.Audio.FFprobePath)
	seg := audio.NewSegmenter(codec, log, cfg.Audio.Threshold(), cfg.Audio.ChunkLength())
	coordinator := transcriber.New(stt, sttTransient, policy, log)

	return &app{
		transcriber: coordinator,
		pipeline: pipeline.New(pipeline.Stages{
			Scanner:     scanner.New(seg, log, cfg.Audio.Extensions),
			Transcriber: coordinator,
			Aggregator:  aggregator.New(log),
			Summarizer:  summarizer.New(llm, cfg.Summarization.Instruction, llmTransient, policy, log),
			Renderer:    renderer.New(cfg.Render, log),
		}, log),
	}
}
