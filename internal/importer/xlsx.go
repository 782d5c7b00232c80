package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is the tabular view of an uploaded spreadsheet: the header row plus
// every data row keyed by its header.
type Sheet struct {
	Headers []string
	Rows    []map[string]string
}

// ReadXLSX parses an uploaded .xlsx stream into a Sheet. Only the first
// worksheet is read. Wrong extensions and unreadable files are rejected
// before any row reaches the pipeline.
func ReadXLSX(filename string, r io.Reader) (*Sheet, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return nil, &UnsupportedFormatError{Filename: filename}
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &UnsupportedFormatError{Filename: filename}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &UnsupportedFormatError{Filename: filename}
	}

	// The archive parsed, so a failure here is an I/O problem, not a
	// client uploading the wrong kind of file.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &Sheet{}, nil
	}

	headers := make([]string, 0, len(rows[0]))
	for _, h := range rows[0] {
		headers = append(headers, strings.TrimSpace(h))
	}

	sheet := &Sheet{Headers: headers}
	for _, cells := range rows[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			// GetRows drops trailing empty cells; short rows read as blank.
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}
