package aggregator

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
)

// Aggregate maps transcript keys to transcript text. Iterate with Keys for the stored order.
type Aggregate map[string]string

// Keys returns the keys in lexicographic order.
func (a Aggregate) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads an aggregate file written by Combine.
func Load(path string) (Aggregate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read aggregate: %w", err)
	}

	var a Aggregate
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", errs.ErrFormat, path, err)
	}
	if a == nil {
		a = Aggregate{}
	}
	return a, nil
}
