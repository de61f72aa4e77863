package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/sheetdrive/sheetdrive/gapi"
	"github.com/sheetdrive/sheetdrive/sheet"
)

var PutCmd = Put{
	command: command{
		credentials: defaultCredentials(),
		debug:       false,
	},

	area:   "",
	file:   "",
	format: "RAW",
	clear:  false,
}

type Put struct {
	command
	url    string
	area   string
	file   string
	format string
	clear  bool
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Uploads a TSV file to a Google Sheets worksheet range"
}

func (cmd *Put) Usage() string {
	return "--credentials <file> --url <url> --range <range> --file <file>"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] put [options] --url <URL> --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Uploads a TSV file to a Google Sheets worksheet range. The range is overwritten unconditionally")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetdrive --debug put --credentials "service-account.json" \`)
	fmt.Println(`                           --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                           --range "Sheet1!A1:C10" \`)
	fmt.Println(`                           --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Put) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("put")

	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")
	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Sheet1!A1:C10'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file")
	flagset.StringVar(&cmd.format, "format", cmd.format, "Value input option - 'RAW' or 'USER_ENTERED'")
	flagset.BoolVar(&cmd.clear, "clear", cmd.clear, "Clears the worksheet range before uploading the file")

	return flagset
}

func (cmd *Put) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	format := strings.ToUpper(strings.TrimSpace(cmd.format))
	if format != "RAW" && format != "USER_ENTERED" {
		return fmt.Errorf("invalid --format '%s' - expected 'RAW' or 'USER_ENTERED'", cmd.format)
	}

	id, err := spreadsheetId(cmd.url)
	if err != nil {
		return err
	}

	if _, err := sheet.ParseRange(cmd.area); err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  range:%s", id, cmd.area)
	}

	// ... authorise
	ctx := context.Background()

	google, err := gapi.NewSheets(ctx, cmd.credentials)
	if err != nil {
		return fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	spreadsheet, err := getSpreadsheet(google, id)
	if err != nil {
		return err
	}

	if _, err := getSheet(spreadsheet, cmd.area); err != nil {
		return err
	}

	// ... parse TSV file
	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	data, err := sheet.FromTSV(f, cmd.area)
	if err != nil {
		return fmt.Errorf("invalid TSV file (%w)", err)
	}

	// ... update worksheet
	if cmd.clear {
		if err := clear(ctx, google, spreadsheet, []string{cmd.area}); err != nil {
			return err
		}
	}

	rq := sheets.BatchUpdateValuesRequest{
		ValueInputOption: format,
		Data:             []*sheets.ValueRange{data},
	}

	if _, err := google.Spreadsheets.Values.BatchUpdate(spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return gapi.Wrap(err, fmt.Sprintf("spreadsheet %s", id), cmd.area)
	}

	infof("Uploaded TSV file %v to %v", cmd.file, cmd.area)

	return nil
}
