package audio

import (
	"time"

	"github.com/nguyentantai21042004/meeting-digest/internal/logger"
	"github.com/nguyentantai21042004/meeting-digest/pkg/executor"
)

type implSegmenter struct {
	codec     Codec
	logger    logger.Logger
	threshold time.Duration
	chunk     time.Duration
}

// NewSegmenter creates a Segmenter that splits files longer than threshold into chunks of chunk length.
func NewSegmenter(codec Codec, log logger.Logger, threshold, chunk time.Duration) Segmenter {
	return &implSegmenter{
		codec:     codec,
		logger:    log,
		threshold: threshold,
		chunk:     chunk,
	}
}

type ffmpegCodec struct {
	executor    executor.Executor
	ffmpegPath  string
	ffprobePath string
}

// NewFFmpegCodec creates a Codec that shells out to ffprobe and ffmpeg.
func NewFFmpegCodec(exec executor.Executor, ffmpegPath, ffprobePath string) Codec {
	return &ffmpegCodec{
		executor:    exec,
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
	}
}
