// Package export writes admin datagrid rows as downloadable documents.
package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"slices"

	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Compile-time check that Writer implements ports.Exporter.
var _ ports.Exporter = (*Writer)(nil)

// Supported formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXML  = "xml"
)

var contentTypes = map[string]string{
	FormatCSV:  "text/csv; charset=utf-8",
	FormatJSON: "application/json",
	FormatXML:  "text/xml; charset=utf-8",
}

// Writer exports rows as CSV, JSON (an array of objects keyed by header) or
// XML (one <row> element per row).
type Writer struct{}

// NewWriter creates an exporter.
func NewWriter() *Writer { return &Writer{} }

// Formats returns the supported formats in a stable order.
func (w *Writer) Formats() []string {
	return []string{FormatCSV, FormatJSON, FormatXML}
}

// ContentType returns the media type of format, or "" when unsupported.
func (w *Writer) ContentType(format string) string {
	return contentTypes[format]
}

// Export writes header and rows to out. Rows shorter than the header are
// padded with empty values.
func (w *Writer) Export(ctx context.Context, format string, out io.Writer, header []string, rows [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !slices.Contains(w.Formats(), format) {
		return fmt.Errorf("unsupported export format %q", format)
	}

	switch format {
	case FormatCSV:
		return writeCSV(out, header, rows)
	case FormatJSON:
		return writeJSON(out, header, rows)
	default:
		return writeXML(out, header, rows)
	}
}

func writeCSV(out io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(out)
	if len(header) > 0 {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}
	for _, row := range rows {
		if err := cw.Write(pad(row, len(header))); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(out io.Writer, header []string, rows [][]string) error {
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		row = pad(row, len(header))
		rec := make(map[string]string, len(header))
		for i, name := range header {
			rec[name] = row[i]
		}
		records = append(records, rec)
	}
	if err := json.NewEncoder(out).Encode(records); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

type xmlField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type xmlRow struct {
	XMLName xml.Name   `xml:"row"`
	Fields  []xmlField `xml:",any"`
}

type xmlDataset struct {
	XMLName xml.Name `xml:"datas"`
	Rows    []xmlRow
}

func writeXML(out io.Writer, header []string, rows [][]string) error {
	doc := xmlDataset{Rows: make([]xmlRow, 0, len(rows))}
	for _, row := range rows {
		row = pad(row, len(header))
		r := xmlRow{Fields: make([]xmlField, 0, len(header))}
		for i, name := range header {
			r.Fields = append(r.Fields, xmlField{XMLName: xml.Name{Local: name}, Value: row[i]})
		}
		doc.Rows = append(doc.Rows, r)
	}

	if _, err := io.WriteString(out, xml.Header); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	enc := xml.NewEncoder(out)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write xml: %w", err)
	}
	return nil
}

func pad(row []string, n int) []string {
	if len(row) >= n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}
