package commands

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/sheetdrive/sheetdrive/gapi"
)

const APP = "sheetdrive"
const VERSION = "v0.1.0"

var spreadsheetRegex = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)

// Options are the 'global' command line options, shared by all commands.
type Options struct {
	Debug bool
}

// Command is the interface implemented by the sheetdrive subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

// command is the set of options common to all subcommands.
type command struct {
	credentials string
	debug       bool
}

func (cmd *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the service account key file. Defaults to GOOGLE_APPLICATION_CREDENTIALS")

	return flagset
}

func defaultCredentials() string {
	if file := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")); file != "" {
		return file
	}

	return DEFAULT_CREDENTIALS
}

// spreadsheetId extracts the spreadsheet ID from the spreadsheet URL.
func spreadsheetId(url string) (string, error) {
	match := spreadsheetRegex.FindStringSubmatch(strings.TrimSpace(url))
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func getSpreadsheet(google *sheets.Service, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Do()
	if err != nil {
		return nil, gapi.Wrap(err, fmt.Sprintf("spreadsheet %s", id), "")
	}

	return spreadsheet, nil
}

func getSheet(spreadsheet *sheets.Spreadsheet, area string) (*sheets.Sheet, error) {
	match := regexp.MustCompile(`(.+?)!.*`).FindStringSubmatch(area)
	if len(match) < 2 {
		return nil, fmt.Errorf("unable to identify worksheet for '%s'", area)
	}

	name := match[1]
	for _, sheet := range spreadsheet.Sheets {
		if strings.EqualFold(strings.TrimSpace(sheet.Properties.Title), strings.TrimSpace(name)) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("unable to identify worksheet for '%s'", area)
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})

	fmt.Println()
	fmt.Println("    --debug        Displays internal information for diagnosing errors")
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
