package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSVAdapter emits one comma-delimited row per write, quoted per standard
// CSV escaping.
type CSVAdapter struct {
	buf    *bytes.Buffer
	writer *csv.Writer
}

func NewCSVAdapter() *CSVAdapter {
	return &CSVAdapter{}
}

func (a *CSVAdapter) Open() {
	a.buf = &bytes.Buffer{}
	a.writer = csv.NewWriter(a.buf)
}

func (a *CSVAdapter) WriteHeader(fields []string) error {
	return a.writeRow(fields)
}

func (a *CSVAdapter) WriteContent(fields []string) error {
	return a.writeRow(fields)
}

func (a *CSVAdapter) writeRow(fields []string) error {
	if err := a.writer.Write(fields); err != nil {
		return fmt.Errorf("failed to write csv row: %w", err)
	}
	return nil
}

func (a *CSVAdapter) Finalize() (File, error) {
	a.writer.Flush()
	if err := a.writer.Error(); err != nil {
		return File{}, fmt.Errorf("failed to flush csv: %w", err)
	}
	return File{
		Bytes:    a.buf.Bytes(),
		MIMEType: "text/csv",
		Filename: "result." + FormatCSV,
	}, nil
}
