package audio

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration asks ffprobe for the container duration in seconds.
func (c *ffmpegCodec) Duration(ctx context.Context, path string) (time.Duration, error) {
	// -v error: only real problems on stderr
	// -show_entries format=duration: single value
	// -of ...nokey=1: print the bare number
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}

	out, err := c.executor.Output(ctx, c.ffprobePath, args...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}
	return parseSeconds(string(out))
}

// Export cuts a slice without re-encoding.
func (c *ffmpegCodec) Export(ctx context.Context, src, dst string, start, length time.Duration) error {
	args := []string{
		"-v", "error",
		"-y",
		"-ss", formatSeconds(start),
		"-t", formatSeconds(length),
		"-i", src,
		"-c", "copy",
		dst,
	}

	if err := c.executor.Run(ctx, c.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg export: %w", err)
	}
	return nil
}

func parseSeconds(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("unexpected ffprobe duration %q", s)
	}
	return time.Duration(secs * float64(time.Second)).Round(time.Millisecond), nil
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
