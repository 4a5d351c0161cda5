package renderer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Summaries"

// encodeXlsx returns a workbook with one row per summarized transcript: meeting time, label, part, key, summary.
func encodeXlsx(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{"Meeting", "Label", "Part", "Key", "Summary"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, s := range doc.Sections {
		for _, e := range s.Entries {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			values := []interface{}{s.Heading, e.Meeting.Label, e.Meeting.Part, e.Key, e.Summary}
			if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
			row++
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 18); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "E", "E", 100); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
