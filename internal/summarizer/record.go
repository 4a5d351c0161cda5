package summarizer

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
)

// Entry pairs a transcript with its summary.
type Entry struct {
	OriginalText string `json:"original_text"`
	Summary      string `json:"summary"`
}

// Record maps transcript keys to their entries.
type Record map[string]Entry

// Keys returns the keys in lexicographic order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads a summary file written by SummarizeAll.
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summary: %w", err)
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", errs.ErrFormat, path, err)
	}
	return r, nil
}
