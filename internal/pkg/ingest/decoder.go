package ingest

import (
	"bytes"
	"errors"
	"fmt"
)

// Decoder turns uploaded bytes into a table based on the file extension
type Decoder struct {
	// Encodings is the delimited-text fallback chain, tried in order
	Encodings []TextEncoding
	// MaxBytes rejects larger uploads when positive
	MaxBytes int64

	codecs map[Format]SpreadsheetCodec
}

// NewDecoder creates a decoder with the default encodings and the excelize
// codec for .xlsx and .xlsm. No .xlsb codec is registered.
func NewDecoder(maxBytes int64) *Decoder {
	return &Decoder{
		Encodings: DefaultTextEncodings(),
		MaxBytes:  maxBytes,
		codecs: map[Format]SpreadsheetCodec{
			FormatXLSX: ExcelizeCodec{},
			FormatXLSM: ExcelizeCodec{},
		},
	}
}

// RegisterCodec plugs in a codec for a spreadsheet format
func (d *Decoder) RegisterCodec(format Format, codec SpreadsheetCodec) {
	if d.codecs == nil {
		d.codecs = make(map[Format]SpreadsheetCodec)
	}
	d.codecs[format] = codec
}

// Decode parses content according to the filename's extension. Every failure
// is a *DecodeError.
func (d *Decoder) Decode(content []byte, filename string) (*Table, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	if d.MaxBytes > 0 && int64(len(content)) > d.MaxBytes {
		return nil, decodeFailure(format, fmt.Errorf("file is %d bytes, limit is %d", len(content), d.MaxBytes))
	}

	if format.IsDelimited() {
		return decodeDelimited(content, format, d.Encodings)
	}
	return d.decodeSpreadsheet(content, format)
}

func (d *Decoder) decodeSpreadsheet(content []byte, format Format) (*Table, error) {
	codec, ok := d.codecs[format]
	if !ok {
		codec = missingCodec(format)
	}

	table, err := codec.Decode(bytes.NewReader(content), format)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			return nil, decodeErr
		}
		return nil, decodeFailure(format, err)
	}
	table.Format = format
	return table, nil
}
