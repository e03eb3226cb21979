// Package workbook ingests xlsx files into sheets of raw records.
package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/checkpress-dev/checkpress/internal/model"
)

// Open reads every sheet of an xlsx file. The first row of each sheet
// is the header row; later rows become RawRecords keyed by those
// headers. Blank rows are skipped; missing trailing cells are absent.
func Open(path string) ([]model.Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return readSheets(f)
}

// Read ingests an xlsx workbook from a reader.
func Read(r io.Reader) ([]model.Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return readSheets(f)
}

func readSheets(f *excelize.File) ([]model.Sheet, error) {
	var sheets []model.Sheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %s: %w", name, err)
		}
		sheets = append(sheets, buildSheet(name, rows))
	}
	return sheets, nil
}

func buildSheet(name string, rows [][]string) model.Sheet {
	sheet := model.Sheet{Name: name}
	if len(rows) == 0 {
		return sheet
	}

	for _, h := range rows[0] {
		sheet.Headers = append(sheet.Headers, strings.TrimSpace(h))
	}

	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		rec := make(model.RawRecord, len(sheet.Headers))
		for i, header := range sheet.Headers {
			if header == "" || i >= len(row) {
				continue
			}
			rec[header] = row[i]
		}
		sheet.Rows = append(sheet.Rows, rec)
	}
	return sheet
}

func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
