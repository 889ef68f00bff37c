package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Accepted upload mimetypes.
const (
	MimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeXLS  = "application/vnd.ms-excel"
	MimeCSV  = "text/csv"
)

// ErrEmpty is returned when the worksheet has no data rows.
var ErrEmpty = errors.New("spreadsheet is empty or has no data rows")

// Sheet is a decoded worksheet: the header row plus data rows keyed by
// header text, with missing cells defaulted to "".
type Sheet struct {
	Headers []string
	Rows    []map[string]string
}

// Allowed reports whether the declared mimetype is one of the accepted
// upload formats.
func Allowed(mimetype string) bool {
	switch mimetype {
	case MimeXLSX, MimeXLS, MimeCSV:
		return true
	}
	return false
}

// Parse decodes spreadsheet bytes into a Sheet. CSV is decoded directly;
// anything else goes through excelize.
func Parse(data []byte, mimetype string) (*Sheet, error) {
	if mimetype == MimeCSV {
		return parseCSV(bytes.NewReader(data))
	}
	return parseExcel(bytes.NewReader(data))
}

func parseExcel(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}

	return buildSheet(rows)
}

func parseCSV(r io.Reader) (*Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Row widths are reconciled against the header below
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if perr, ok := err.(*csv.ParseError); ok {
				return nil, fmt.Errorf("parse error at line %d, column %d: %w", perr.Line, perr.Column, perr.Err)
			}
			return nil, fmt.Errorf("read CSV: %w", err)
		}
		rows = append(rows, record)
	}

	return buildSheet(rows)
}

// buildSheet maps raw rows onto the header row, padding short rows with ""
// and dropping fully blank rows.
func buildSheet(rows [][]string) (*Sheet, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	headers := rows[0]
	sheet := &Sheet{Headers: headers}

	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		values := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				values[header] = row[i]
			} else {
				values[header] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, values)
	}

	if len(sheet.Rows) == 0 {
		return nil, ErrEmpty
	}
	return sheet, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
