package transcriber

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nguyentantai21042004/meeting-digest/internal/errs"
)

// Record is one transcription result. Text is the only field the pipeline reads;
// Raw is the full service response, persisted verbatim.
type Record struct {
	Text string
	Raw  json.RawMessage
}

// Encode returns the on-disk form of r: the raw response, indented.
func (r Record) Encode() ([]byte, error) {
	raw := r.Raw
	if len(raw) == 0 {
		var err error
		if raw, err = json.Marshal(map[string]string{"text": r.Text}); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "    "); err != nil {
		return nil, fmt.Errorf("%w: service response is not JSON: %w", errs.ErrFormat, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// DecodeRecord parses an on-disk record. The text field is mandatory.
func DecodeRecord(data []byte) (Record, error) {
	var probe struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Record{}, fmt.Errorf("%w: %w", errs.ErrFormat, err)
	}
	if probe.Text == nil {
		return Record{}, fmt.Errorf("%w: missing text field", errs.ErrFormat)
	}
	return Record{Text: *probe.Text, Raw: json.RawMessage(data)}, nil
}
