package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DataSheet is the only worksheet read from a workbook
const DataSheet = "Data"

// SpreadsheetCodec decodes one workbook format into a table
type SpreadsheetCodec interface {
	Decode(r io.Reader, format Format) (*Table, error)
}

// SpreadsheetCodecFunc adapts a function to SpreadsheetCodec
type SpreadsheetCodecFunc func(r io.Reader, format Format) (*Table, error)

func (fn SpreadsheetCodecFunc) Decode(r io.Reader, format Format) (*Table, error) {
	return fn(r, format)
}

// ExcelizeCodec reads Office Open XML workbooks (.xlsx, .xlsm)
type ExcelizeCodec struct{}

// Decode reads the Data sheet. Numeric cells displayed as a date or time
// become time.Time, other numeric cells float64, the rest string.
func (ExcelizeCodec) Decode(r io.Reader, format Format) (*Table, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer wb.Close()

	idx, err := wb.GetSheetIndex(DataSheet)
	if err != nil {
		return nil, fmt.Errorf("find sheet %q: %w", DataSheet, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("worksheet named %q not found", DataSheet)
	}

	display, err := wb.GetRows(DataSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", DataSheet, err)
	}
	raw, err := wb.GetRows(DataSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", DataSheet, err)
	}

	table := &Table{Format: format}
	if len(display) == 0 {
		return nil, fmt.Errorf("worksheet %q is empty", DataSheet)
	}
	table.Columns = headerNames(display[0])

	for r := 1; r < len(display); r++ {
		record := make(Record, len(table.Columns))
		for c, shown := range display[r] {
			if c >= len(table.Columns) {
				break
			}
			value, ok := spreadsheetCell(shown, cellAt(raw, r, c))
			if ok {
				record[table.Columns[c]] = value
			}
		}
		if len(record) == 0 {
			continue
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

func cellAt(rows [][]string, r, c int) string {
	if r >= len(rows) || c >= len(rows[r]) {
		return ""
	}
	return rows[r][c]
}

// spreadsheetCell types one cell from its displayed and raw values
func spreadsheetCell(shown, raw string) (any, bool) {
	if isMissing(shown) && isMissing(raw) {
		return nil, false
	}
	if number, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		if displaysAsTime(shown, raw) {
			if t, ok := SerialToTime(number); ok {
				return t, true
			}
		}
		return number, true
	}
	return shown, true
}

// displaysAsTime reports whether a numeric cell is rendered through a date
// or time number format
func displaysAsTime(shown, raw string) bool {
	shown = strings.TrimSpace(shown)
	if shown == strings.TrimSpace(raw) {
		return false
	}
	if strings.Contains(shown, ":") {
		return true
	}
	return strings.Count(shown, "/") == 2 || strings.Count(shown, "-") == 2
}

// missingCodec reports a format no registered codec can read
func missingCodec(format Format) SpreadsheetCodec {
	return SpreadsheetCodecFunc(func(io.Reader, Format) (*Table, error) {
		return nil, &DecodeError{
			Kind:   KindMissingOptionalCodec,
			Format: string(format),
			Cause:  fmt.Errorf("no %s codec is registered", format),
		}
	})
}
