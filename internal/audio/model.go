package audio

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var rePartStem = regexp.MustCompile(`_part(\d+)$`)

// File is one audio recording in the input directory.
type File struct {
	Path     string
	Duration time.Duration
	// Part is the 1-based chunk number, 0 when the file was not produced by a split.
	Part int
}

// Minutes returns the duration in fractional minutes.
func (f File) Minutes() float64 {
	return f.Duration.Minutes()
}

// Chunk is one planned slice of a recording.
type Chunk struct {
	Index  int // 1-based
	Start  time.Duration
	Length time.Duration
}

// PartPath returns the path chunk i of src is exported to: <stem>_part<i><ext> next to src.
func PartPath(src string, i int) string {
	ext := filepath.Ext(src)
	return fmt.Sprintf("%s_part%d%s", strings.TrimSuffix(src, ext), i, ext)
}

// PartNumber returns N for a chunk named <stem>_part<N><ext>, 0 otherwise.
func PartNumber(path string) int {
	base := filepath.Base(path)
	m := rePartStem.FindStringSubmatch(strings.TrimSuffix(base, filepath.Ext(base)))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// IsPart reports whether path looks like a chunk written by PartPath.
func IsPart(path string) bool {
	return PartNumber(path) > 0
}
