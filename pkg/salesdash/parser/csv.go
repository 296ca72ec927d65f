package parser

import (
	"bytes"
	"strings"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCSV splits comma-delimited text into raw rows.
// The first line is the header. Quoting is not supported: every comma is a
// field separator. Lines whose fields are all empty are dropped.
func ParseCSV(content []byte) ([]models.RawRow, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyInput
	}

	lines := strings.Split(string(content), "\n")
	headers := strings.Split(lines[0], ",")
	for i, h := range headers {
		headers[i] = normalizeHeader(h)
	}

	var rows []models.RawRow
	for _, line := range lines[1:] {
		values := strings.Split(line, ",")
		row := make(models.RawRow, len(headers))
		hasData := false

		for i, header := range headers {
			if i >= len(values) {
				break
			}
			v := strings.TrimSpace(values[i])
			row[header] = v
			if v != "" {
				hasData = true
			}
		}

		if hasData {
			rows = append(rows, row)
		}
	}

	return rows, nil
}
