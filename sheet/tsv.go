package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// ToTSV writes the cell values returned from a 'values get' to f as tab separated
// records. Cell values are trimmed of leading/trailing whitespace and rows are padded
// (or truncated) to the width of the first row so that the TSV file reads back as a
// rectangular grid.
func ToTSV(f io.Writer, data *sheets.ValueRange) error {
	if len(data.Values) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	width := len(data.Values[0])
	if width == 0 {
		return fmt.Errorf("missing/invalid header row")
	}

	records := [][]string{}
	for _, row := range data.Values {
		record := make([]string, width)
		for i := 0; i < width && i < len(row); i++ {
			record[i] = clean(row[i])
		}

		records = append(records, record)
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	for _, record := range records {
		w.Write(record)
	}

	w.Flush()

	return w.Error()
}

// FromTSV reads a TSV file into a ValueRange anchored at the top-left corner of area,
// ready for a 'values update'. The returned range is open ended so that the row count is
// taken from the file rather than the range expression.
func FromTSV(f io.Reader, area string) (*sheets.ValueRange, error) {
	region, err := ParseRange(area)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(f)
	r.Comma = '\t'

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("TSV file is empty")
	}

	rows := make([][]interface{}, len(records))
	for i, record := range records {
		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = strings.TrimSpace(v)
		}

		rows[i] = row
	}

	return &sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s", region.Worksheet, region.Left, region.Top, region.Right),
		Values: rows,
	}, nil
}

func clean(v interface{}) string {
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}
