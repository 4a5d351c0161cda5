package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	FormatMarkdown = "markdown"
	FormatDocx     = "docx"
	FormatXlsx     = "xlsx"
)

// DefaultMaxRetries applies when the config file does not set retry.max_retries.
const DefaultMaxRetries = 3

// DefaultInstruction is the fixed system instruction sent with every transcript.
const DefaultInstruction = "Take the following text. Summarize the results and to dos in bullet points."

type Config struct {
	Transcription TranscriptionConfig `yaml:"transcription"`
	Summarization SummarizationConfig `yaml:"summarization"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	Audio         AudioConfig         `yaml:"audio"`
	Retry         RetryConfig         `yaml:"retry"`
	Render        RenderConfig        `yaml:"render"`
	Logging       LoggingConfig       `yaml:"logging"`
	Watch         WatchConfig         `yaml:"watch"`
}

type TranscriptionConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
	Prompt   string `yaml:"prompt"`
}

type SummarizationConfig struct {
	Provider    string `yaml:"provider"`
	Model       string `yaml:"model"`
	Instruction string `yaml:"instruction"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

type AudioConfig struct {
	FFmpegPath       string   `yaml:"ffmpeg_path"`
	FFprobePath      string   `yaml:"ffprobe_path"`
	Extensions       []string `yaml:"extensions"`
	ThresholdMinutes float64  `yaml:"threshold_minutes"`
	ChunkMinutes     float64  `yaml:"chunk_minutes"`
}

type RetryConfig struct {
	MaxRetries      int           `yaml:"max_retries"`
	InitialInterval time.Duration `yaml:"initial_interval"`
	MaxElapsed      time.Duration `yaml:"max_elapsed"`
}

type RenderConfig struct {
	Title   string   `yaml:"title"`
	Formats []string `yaml:"formats"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Threshold returns the duration above which a recording is split.
func (a AudioConfig) Threshold() time.Duration {
	return time.Duration(a.ThresholdMinutes * float64(time.Minute))
}

// ChunkLength returns the length of every chunk but the last.
func (a AudioConfig) ChunkLength() time.Duration {
	return time.Duration(a.ChunkMinutes * float64(time.Minute))
}

// Accepts reports whether path has one of the configured audio extensions.
func (a AudioConfig) Accepts(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range a.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// HasFormat reports whether the given export format is enabled.
func (r RenderConfig) HasFormat(format string) bool {
	for _, f := range r.Formats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

func (c *Config) Validate() error {
	if c.Transcription.Provider == "" {
		c.Transcription.Provider = ProviderOpenAI
	}
	if c.Summarization.Provider == "" {
		c.Summarization.Provider = ProviderOpenAI
	}
	if c.Transcription.Model == "" {
		c.Transcription.Model = defaultModel(c.Transcription.Provider, "whisper-1")
	}
	if c.Summarization.Model == "" {
		c.Summarization.Model = defaultModel(c.Summarization.Provider, "gpt-3.5-turbo")
	}
	if c.Summarization.Instruction == "" {
		c.Summarization.Instruction = DefaultInstruction
	}

	for _, p := range []string{c.Transcription.Provider, c.Summarization.Provider} {
		switch p {
		case ProviderOpenAI:
			if c.OpenAI.APIKey == "" {
				return fmt.Errorf("%w: openai.api_key is required (set OPENAI_API_KEY)", errs.ErrConfiguration)
			}
		case ProviderGemini:
			if len(c.Gemini.APIKeys) == 0 {
				return fmt.Errorf("%w: gemini.api_keys is required (set GEMINI_API_KEYS)", errs.ErrConfiguration)
			}
		default:
			return fmt.Errorf("%w: unknown provider %q", errs.ErrConfiguration, p)
		}
	}

	if c.Audio.FFmpegPath == "" {
		c.Audio.FFmpegPath = "ffmpeg"
	}
	if c.Audio.FFprobePath == "" {
		c.Audio.FFprobePath = "ffprobe"
	}
	if len(c.Audio.Extensions) == 0 {
		c.Audio.Extensions = []string{".mp3"}
	}
	for i, ext := range c.Audio.Extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Audio.Extensions[i] = ext
	}
	if c.Audio.ThresholdMinutes == 0 {
		c.Audio.ThresholdMinutes = 10
	}
	if c.Audio.ChunkMinutes == 0 {
		c.Audio.ChunkMinutes = 10
	}
	if c.Audio.ThresholdMinutes < 0 || c.Audio.ChunkMinutes < 0 {
		return fmt.Errorf("%w: audio durations must be positive", errs.ErrConfiguration)
	}
	if c.Audio.ChunkMinutes > c.Audio.ThresholdMinutes {
		return fmt.Errorf("%w: audio.chunk_minutes (%g) must not exceed audio.threshold_minutes (%g)",
			errs.ErrConfiguration, c.Audio.ChunkMinutes, c.Audio.ThresholdMinutes)
	}

	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("%w: retry.max_retries must not be negative", errs.ErrConfiguration)
	}
	if c.Retry.InitialInterval == 0 {
		c.Retry.InitialInterval = time.Second
	}
	if c.Retry.MaxElapsed == 0 {
		c.Retry.MaxElapsed = 2 * time.Minute
	}

	if c.Render.Title == "" {
		c.Render.Title = "Meeting Summaries"
	}
	for _, f := range c.Render.Formats {
		switch strings.ToLower(f) {
		case FormatMarkdown, FormatDocx, FormatXlsx:
		default:
			return fmt.Errorf("%w: unknown render format %q", errs.ErrConfiguration, f)
		}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = 2 * time.Second
	}

	return nil
}

func defaultModel(provider, openaiModel string) string {
	if provider == ProviderGemini {
		return "gemini-2.5-flash"
	}
	return openaiModel
}
