// Package parser turns uploaded file content into raw sales rows.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// Format is the declared layout of an uploaded file.
type Format string

const (
	// FormatCSV is comma-delimited UTF-8 text with a header line.
	FormatCSV Format = "csv"
	// FormatSpreadsheet is a binary workbook (first sheet is read).
	FormatSpreadsheet Format = "spreadsheet"
)

var (
	// ErrUnsupportedFormat indicates the file is neither CSV nor a workbook.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptyInput indicates the file has no header row.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidWorkbook indicates the workbook could not be decoded.
	ErrInvalidWorkbook = errors.New("invalid workbook")
	// ErrNoSheets indicates the workbook contains no sheets.
	ErrNoSheets = errors.New("workbook has no sheets")
)

const (
	mimeCSV  = "text/csv"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeXLS  = "application/vnd.ms-excel"
	mimeZip  = "application/zip"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "spreadsheet", "xlsx", "xls", "excel":
		return FormatSpreadsheet, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, s)
	}
}

// DetectFormat decides the format from the file extension, falling back to
// content sniffing when the extension is missing or unknown.
func DetectFormat(name string, content []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xls":
		return FormatSpreadsheet, nil
	}

	mtype := mimetype.Detect(content)
	switch {
	case mtype.Is(mimeCSV):
		return FormatCSV, nil
	case mtype.Is(mimeXLSX), mtype.Is(mimeXLS), mtype.Is(mimeZip):
		return FormatSpreadsheet, nil
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, name, mtype.String())
}

// Parse dispatches to the parser for the given format.
func Parse(format Format, content []byte) ([]models.RawRow, error) {
	switch format {
	case FormatCSV:
		return ParseCSV(content)
	case FormatSpreadsheet:
		return ParseSpreadsheet(content)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// normalizeHeader trims and lower-cases a header cell.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
