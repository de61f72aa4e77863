package sheet

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/api/sheets/v4"

	"github.com/sheetdrive/sheetdrive/gapi"
)

func TestToTSV(t *testing.T) {
	expected := `Name	Age	City
Alice	30	Cape Town
Bob	28	Durban
`

	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]any{
			[]any{"Name", "Age", "City"},
			[]any{"Alice", "30", "Cape Town"},
			[]any{"Bob", "28", "Durban"},
		},
	}

	err := ToTSV(&f, &data)
	if err != nil {
		t.Fatalf("Unexpected error returned from ToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestToTSVTrimsWhitespace(t *testing.T) {
	expected := `Name	Age
Alice	30
`

	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]any{
			[]any{"  Name ", " Age  "},
			[]any{" Alice", "30 "},
		},
	}

	err := ToTSV(&f, &data)
	if err != nil {
		t.Fatalf("Unexpected error returned from ToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestToTSVPadsRaggedRows(t *testing.T) {
	expected := "Name\tAge\tCity\nAlice\t30\t\nBob\t28\tDurban\n"

	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]any{
			[]any{"Name", "Age", "City"},
			[]any{"Alice", "30"},
			[]any{"Bob", "28", "Durban", "ignored"},
		},
	}

	err := ToTSV(&f, &data)
	if err != nil {
		t.Fatalf("Unexpected error returned from ToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestToTSVWithNonStringCells(t *testing.T) {
	expected := `Name	Age
Alice	30
`

	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]any{
			[]any{"Name", "Age"},
			[]any{"Alice", float64(30)},
		},
	}

	err := ToTSV(&f, &data)
	if err != nil {
		t.Fatalf("Unexpected error returned from ToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestToTSVWithEmptySheet(t *testing.T) {
	var f strings.Builder
	var data = sheets.ValueRange{}

	err := ToTSV(&f, &data)
	if err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestToTSVWithoutHeaders(t *testing.T) {
	var f strings.Builder

	data := sheets.ValueRange{
		Values: [][]any{
			[]any{},
		},
	}

	err := ToTSV(&f, &data)
	if err == nil {
		t.Fatalf("Expected error return for missing headers, got %v", err)
	}
}

func TestFromTSV(t *testing.T) {
	tsv := `Name	Age
Alice	30
Bob	28
`

	expected := sheets.ValueRange{
		Range: "Sheet1!A1:B",
		Values: [][]any{
			[]any{"Name", "Age"},
			[]any{"Alice", "30"},
			[]any{"Bob", "28"},
		},
	}

	data, err := FromTSV(strings.NewReader(tsv), "Sheet1!A1:B3")
	if err != nil {
		t.Fatalf("Unexpected error returned from FromTSV (%v)", err)
	}

	if data.Range != expected.Range {
		t.Errorf("Incorrect range - expected:%v, got:%v", expected.Range, data.Range)
	}

	if !reflect.DeepEqual(data.Values, expected.Values) {
		t.Errorf("Incorrect values\n   expected: %v\n   got:      %v\n", expected.Values, data.Values)
	}
}

func TestFromTSVWithEmptyFile(t *testing.T) {
	_, err := FromTSV(strings.NewReader(""), "Sheet1!A1:B3")
	if err == nil {
		t.Fatalf("Expected error return for empty TSV file, got %v", err)
	}
}

func TestFromTSVWithInvalidRange(t *testing.T) {
	_, err := FromTSV(strings.NewReader("Name\tAge\n"), "qwerty")
	if err == nil {
		t.Fatalf("Expected error return for invalid range, got %v", err)
	}

	var region *gapi.RangeError
	if !errors.As(err, &region) {
		t.Fatalf("Expected RangeError, got %T (%v)", err, err)
	}
}

func TestTSVRoundTrip(t *testing.T) {
	data := sheets.ValueRange{
		Values: [][]any{
			[]any{"Name", "Age", "City"},
			[]any{"Alice", "30", "Cape Town"},
			[]any{"Bob", "28", "Durban"},
		},
	}

	var f strings.Builder
	if err := ToTSV(&f, &data); err != nil {
		t.Fatalf("Unexpected error returned from ToTSV (%v)", err)
	}

	roundtrip, err := FromTSV(strings.NewReader(f.String()), "Sheet1!A1:C4")
	if err != nil {
		t.Fatalf("Unexpected error returned from FromTSV (%v)", err)
	}

	if !reflect.DeepEqual(roundtrip.Values, data.Values) {
		t.Errorf("Incorrect round trip values\n   expected: %v\n   got:      %v\n", data.Values, roundtrip.Values)
	}
}
