// Package export renders a fixed header+content table into downloadable file
// formats. Adapters are per-request values and hold no shared state.
package export

const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// File is a finalized export: raw bytes plus the metadata an HTTP response
// needs to serve it as a download.
type File struct {
	Bytes    []byte
	MIMEType string
	Filename string
}

// Adapter serializes one header row and one content row into a specific
// file format. Open must be called before any write; Finalize closes the
// document and returns the accumulated bytes.
type Adapter interface {
	Open()
	WriteHeader(fields []string) error
	WriteContent(fields []string) error
	Finalize() (File, error)
}

// New maps a format code to its adapter. Unknown formats yield (nil, false)
// before any I/O is attempted.
func New(format string) (Adapter, bool) {
	switch format {
	case FormatCSV:
		return NewCSVAdapter(), true
	case FormatPDF:
		return NewPDFAdapter(), true
	}
	return nil, false
}

// Formats lists the supported format codes.
func Formats() []string {
	return []string{FormatCSV, FormatPDF}
}
