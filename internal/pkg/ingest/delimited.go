package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// naTokens are cell values read as missing
var naTokens = map[string]struct{}{
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

func isMissing(cell string) bool {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return true
	}
	_, ok := naTokens[trimmed]
	return ok
}

// decodeDelimited walks the encoding chain and parses the first successful
// decode as comma separated values.
func decodeDelimited(content []byte, format Format, encodings []TextEncoding) (*Table, error) {
	var attempts []error
	for _, enc := range encodings {
		text, err := enc.Decode(content)
		if err != nil {
			attempts = append(attempts, err)
			continue
		}

		table, err := parseDelimited(bytes.NewReader(text), format)
		if err != nil {
			return nil, decodeFailure(format, fmt.Errorf("%s: %w", enc.Name, err))
		}
		table.Encoding = enc.Name
		return table, nil
	}

	return nil, &DecodeError{
		Kind:   KindEncodingExhausted,
		Format: string(format),
		Cause:  errors.Join(attempts...),
	}
}

func parseDelimited(r io.Reader, format Format) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("file is empty")
	}
	if err != nil {
		return nil, err
	}

	table := &Table{Columns: headerNames(header), Format: format}
	for {
		line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if blankLine(line) {
			continue
		}

		record := make(Record, len(table.Columns))
		for i, cell := range line {
			if i >= len(table.Columns) || isMissing(cell) {
				continue
			}
			record[table.Columns[i]] = cell
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

func blankLine(line []string) bool {
	for _, cell := range line {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
