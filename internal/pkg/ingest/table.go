package ingest

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an upload format, identified by its lower-case file extension
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatXLSM Format = "xlsm"
	FormatXLSB Format = "xlsb"
	FormatCSV  Format = "csv"
	FormatTXT  Format = "txt"
)

// IsSpreadsheet reports whether the format is a workbook container
func (f Format) IsSpreadsheet() bool {
	return f == FormatXLSX || f == FormatXLSM || f == FormatXLSB
}

// IsDelimited reports whether the format is delimited text
func (f Format) IsDelimited() bool {
	return f == FormatCSV || f == FormatTXT
}

// FormatFromFilename detects the format from the filename's extension, case-insensitively
func FormatFromFilename(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	format := Format(ext)
	if format.IsSpreadsheet() || format.IsDelimited() {
		return format, nil
	}
	return "", &DecodeError{Kind: KindUnsupportedFormat, Format: ext}
}

// Record is one decoded row keyed by column name. A missing cell has no key.
// Values are string, float64 or time.Time.
type Record map[string]any

// Table is the decoded tabular content of an upload
type Table struct {
	Columns  []string
	Rows     []Record
	Format   Format
	Encoding string
}

// HasColumn reports whether the header contains the named column
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// headerNames trims header cells and disambiguates duplicates with a numeric
// suffix, so the second "SLA" becomes "SLA.1".
func headerNames(raw []string) []string {
	names := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}
