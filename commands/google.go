package commands

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/sheetdrive/sheetdrive/gapi"
)

func clear(ctx context.Context, google *sheets.Service, spreadsheet *sheets.Spreadsheet, ranges []string) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	if _, err := google.Spreadsheets.Values.BatchClear(spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return gapi.Wrap(err, fmt.Sprintf("spreadsheet %s", spreadsheet.SpreadsheetId), strings.Join(ranges, ","))
	}

	return nil
}
