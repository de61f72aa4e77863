package commands

import (
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestSpreadsheetId(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
		{"  https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms  ", "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"},
	}

	for _, test := range tests {
		id, err := spreadsheetId(test.url)
		if err != nil {
			t.Fatalf("Unexpected error returned from spreadsheetId('%s') (%v)", test.url, err)
		}

		if id != test.expected {
			t.Errorf("Incorrect spreadsheet ID - expected:%v, got:%v", test.expected, id)
		}
	}
}

func TestSpreadsheetIdWithInvalidURL(t *testing.T) {
	tests := []string{
		"",
		"1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://docs.google.com/document/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"http://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
	}

	for _, url := range tests {
		if _, err := spreadsheetId(url); err == nil {
			t.Errorf("Expected error return for invalid URL '%s', got %v", url, err)
		}
	}
}

func TestGetSheet(t *testing.T) {
	spreadsheet := sheets.Spreadsheet{
		Sheets: []*sheets.Sheet{
			&sheets.Sheet{Properties: &sheets.SheetProperties{Title: "Sheet1"}},
			&sheets.Sheet{Properties: &sheets.SheetProperties{Title: "Class Data"}},
		},
	}

	tests := []struct {
		area     string
		expected string
	}{
		{"Sheet1!A1:C10", "Sheet1"},
		{"sheet1!A1:C10", "Sheet1"},
		{"Class Data!A2:E", "Class Data"},
	}

	for _, test := range tests {
		sheet, err := getSheet(&spreadsheet, test.area)
		if err != nil {
			t.Fatalf("Unexpected error returned from getSheet('%s') (%v)", test.area, err)
		}

		if sheet.Properties.Title != test.expected {
			t.Errorf("Incorrect worksheet - expected:%v, got:%v", test.expected, sheet.Properties.Title)
		}
	}
}

func TestGetSheetWithUnknownWorksheet(t *testing.T) {
	spreadsheet := sheets.Spreadsheet{
		Sheets: []*sheets.Sheet{
			&sheets.Sheet{Properties: &sheets.SheetProperties{Title: "Sheet1"}},
		},
	}

	if _, err := getSheet(&spreadsheet, "Sheet2!A1:C10"); err == nil {
		t.Errorf("Expected error return for unknown worksheet, got %v", err)
	}

	if _, err := getSheet(&spreadsheet, "qwerty"); err == nil {
		t.Errorf("Expected error return for range without worksheet, got %v", err)
	}
}
