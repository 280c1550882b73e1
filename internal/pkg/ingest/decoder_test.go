package ingest

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/piresc/ridermap/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

const thaiCSV = "Order ID,LAT,LON,SLA STS,Rider Name,Time Check,DP Time,SLA\n" +
	"A-1,13.75,100.65,ตรงเวลา,สมชาย ใจดี,pending,09:15,10:30\n" +
	"A-2,13.72,100.62,ล่าช้า,วิภา,14:05,09:45:10,11:00\n"

func encodeTIS620(t *testing.T, s string) []byte {
	t.Helper()
	out, err := charmap.Windows874.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return out
}

func TestFormatFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
		wantErr  bool
	}{
		{"orders.xlsx", FormatXLSX, false},
		{"ORDERS.XLSM", FormatXLSM, false},
		{"orders.Xlsb", FormatXLSB, false},
		{"orders.csv", FormatCSV, false},
		{"orders.TXT", FormatTXT, false},
		{"orders.pdf", "", true},
		{"orders", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := FormatFromFilename(tt.filename)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecoder_UnsupportedFormat(t *testing.T) {
	d := NewDecoder(0)

	table, err := d.Decode([]byte("anything"), "orders.json")

	assert.Nil(t, table)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, KindUnsupportedFormat, decodeErr.Kind)
	assert.Equal(t, "json", decodeErr.Format)
}

func TestDecoder_DelimitedUTF8(t *testing.T) {
	d := NewDecoder(0)
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte(thaiCSV)...)

	table, err := d.Decode(content, "orders.csv")

	require.NoError(t, err)
	assert.Equal(t, "utf-8", table.Encoding)
	assert.Equal(t, FormatCSV, table.Format)
	assert.Equal(t, RequiredColumns(), table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "สมชาย ใจดี", table.Rows[0][ColumnRider])
	assert.Equal(t, "13.75", table.Rows[0][ColumnLatitude])
}

func TestDecoder_TIS620MatchesUTF8(t *testing.T) {
	d := NewDecoder(0)

	fromUTF8, err := d.Decode([]byte(thaiCSV), "orders.csv")
	require.NoError(t, err)

	legacy := encodeTIS620(t, thaiCSV)
	fromLegacy, err := d.Decode(legacy, "orders.txt")
	require.NoError(t, err)

	assert.Equal(t, "tis-620", fromLegacy.Encoding)
	assert.Equal(t, fromUTF8.Columns, fromLegacy.Columns)
	assert.Equal(t, fromUTF8.Rows, fromLegacy.Rows)
}

func TestDecoder_WesternFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		rider    []byte
		encoding string
		want     string
	}{
		// 0x8A is unassigned in TIS-620 but is Š in Windows-1252
		{"windows-1252", []byte{0x8A, 'a', 'r', 'a'}, "windows-1252", "Šara"},
		// 0x81 is unassigned in both, Latin-1 maps every byte
		{"latin-1", []byte{'J', 0x81}, "iso-8859-1", "J\u0081"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			buf.WriteString("Order ID,Rider Name\nA-1,")
			buf.Write(tt.rider)
			buf.WriteString("\n")

			table, err := NewDecoder(0).Decode(buf.Bytes(), "orders.csv")

			require.NoError(t, err)
			assert.Equal(t, tt.encoding, table.Encoding)
			assert.Equal(t, tt.want, table.Rows[0][ColumnRider])
		})
	}
}

func TestDecoder_EncodingExhausted(t *testing.T) {
	d := NewDecoder(0)
	d.Encodings = []TextEncoding{UTF8}

	_, err := d.Decode(encodeTIS620(t, thaiCSV), "orders.csv")

	assert.ErrorIs(t, err, ErrEncodingExhausted)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, KindEncodingExhausted, decodeErr.Kind)
}

func TestDecoder_SyntaxErrorStopsFallback(t *testing.T) {
	content := []byte("Order ID,LAT\nA-1,\"13.7\n")

	_, err := NewDecoder(0).Decode(content, "orders.csv")

	assert.ErrorIs(t, err, ErrDecodeFailure)
	assert.Contains(t, err.Error(), "utf-8")
}

func TestDecoder_DelimitedMissingCells(t *testing.T) {
	content := []byte("Order ID,LAT,LON,Rider Name\nA-1,NA,,  \n\n,,,\nA-2,#N/A,null,Ann\n")

	table, err := NewDecoder(0).Decode(content, "orders.csv")

	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, Record{ColumnOrderID: "A-1"}, table.Rows[0])
	assert.Equal(t, Record{ColumnOrderID: "A-2", ColumnRider: "Ann"}, table.Rows[1])
}

func TestIsMissing(t *testing.T) {
	missing := []string{"", "  ", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
		"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a", "nan", "null", " None "}
	for _, cell := range missing {
		assert.True(t, isMissing(cell), "cell %q", cell)
	}

	present := []string{"0", "none", "Nil", "NA-1", "pending", "n.a."}
	for _, cell := range present {
		assert.False(t, isMissing(cell), "cell %q", cell)
	}
}

func TestDecoder_DelimitedNATokens(t *testing.T) {
	content := strings.Join(RequiredColumns(), ",") + "\n" +
		"A-1,13.75,100.65,None,<NA>,n/a,#NA,-nan\n"

	table, err := NewDecoder(0).Decode([]byte(content), "orders.csv")

	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	for _, column := range []string{ColumnSLAStatus, ColumnRider, ColumnTimeCheck, ColumnDPTime, ColumnSLA} {
		assert.NotContains(t, row, column)
	}
	assert.Equal(t, "A-1", row[ColumnOrderID])
}

func TestDecoder_EmptyText(t *testing.T) {
	_, err := NewDecoder(0).Decode(nil, "orders.csv")

	assert.ErrorIs(t, err, ErrDecodeFailure)
}

func TestDecoder_MaxBytes(t *testing.T) {
	_, err := NewDecoder(16).Decode([]byte(thaiCSV), "orders.csv")

	assert.ErrorIs(t, err, ErrDecodeFailure)
	assert.Contains(t, err.Error(), "limit is 16")
}

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func workbookHeader() []interface{} {
	header := make([]interface{}, 0, len(RequiredColumns()))
	for _, c := range RequiredColumns() {
		header = append(header, c)
	}
	return header
}

func TestDecoder_Spreadsheet(t *testing.T) {
	content := buildWorkbook(t, DataSheet, [][]interface{}{
		workbookHeader(),
		{"A-1", 13.75, 100.65, "On time", " Somchai ", "14:05", "09:15", "10:30"},
		{"A-2", 13.72, 100.62, "Late", "Wipa", "pending", "09:45:10", nil},
		{"A-3", 13.70, 100.60, "On time", "Wipa", 0.604, "10:00", "11:00"},
	})

	for _, filename := range []string{"orders.xlsx", "ORDERS.XLSM"} {
		t.Run(filename, func(t *testing.T) {
			table, err := NewDecoder(0).Decode(content, filename)

			require.NoError(t, err)
			assert.Equal(t, RequiredColumns(), table.Columns)
			require.Len(t, table.Rows, 3)
			assert.Equal(t, "A-1", table.Rows[0][ColumnOrderID])
			assert.Equal(t, 13.75, table.Rows[0][ColumnLatitude])
			assert.Equal(t, 100.65, table.Rows[0][ColumnLongitude])
			assert.Equal(t, "pending", table.Rows[1][ColumnTimeCheck])
			assert.NotContains(t, table.Rows[1], ColumnSLA)
			assert.InDelta(t, 0.604, table.Rows[2][ColumnTimeCheck], 1e-9)
			assert.Equal(t, models.TimeCheckChecked, ClassifyTimeCheck(table.Rows[2][ColumnTimeCheck]))
			assert.Empty(t, table.Encoding)
		})
	}
}

func TestDecoder_SpreadsheetWithoutDataSheet(t *testing.T) {
	content := buildWorkbook(t, "Orders", [][]interface{}{workbookHeader()})

	_, err := NewDecoder(0).Decode(content, "orders.xlsx")

	assert.ErrorIs(t, err, ErrDecodeFailure)
	assert.Contains(t, err.Error(), `"Data"`)
}

func TestDecoder_CorruptSpreadsheet(t *testing.T) {
	_, err := NewDecoder(0).Decode([]byte("not a zip container"), "orders.xlsx")

	assert.ErrorIs(t, err, ErrDecodeFailure)
}

func TestDecoder_BinaryWorkbookNeedsCodec(t *testing.T) {
	d := NewDecoder(0)

	_, err := d.Decode([]byte{0x50, 0x4B, 0x03, 0x04}, "orders.xlsb")

	assert.ErrorIs(t, err, ErrMissingOptionalCodec)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, KindMissingOptionalCodec, decodeErr.Kind)

	d.RegisterCodec(FormatXLSB, SpreadsheetCodecFunc(func(r io.Reader, format Format) (*Table, error) {
		_, err := io.ReadAll(r)
		require.NoError(t, err)
		return &Table{Columns: []string{ColumnOrderID}, Rows: []Record{{ColumnOrderID: "B-1"}}}, nil
	}))

	table, err := d.Decode([]byte{0x50, 0x4B, 0x03, 0x04}, "orders.xlsb")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSB, table.Format)
	assert.Equal(t, "B-1", table.Rows[0][ColumnOrderID])
}

func TestSpreadsheetCell(t *testing.T) {
	tests := []struct {
		name  string
		shown string
		raw   string
		want  any
		ok    bool
	}{
		{"empty", "", "", nil, false},
		{"na token", "#N/A", "#N/A", nil, false},
		{"text", "Somchai", "Somchai", "Somchai", true},
		{"number", "13.75", "13.75", 13.75, true},
		{"formatted number", "1,234.50", "1234.5", 1234.5, true},
		{"time of day", "14:30:00", "0.604166666666667", timeOfDay(14, 30, 0), true},
		{"date", "01-02-24", "45293", serialEpoch.AddDate(0, 0, 45293), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := spreadsheetCell(tt.shown, tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
