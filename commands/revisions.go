package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sheetdrive/sheetdrive/gapi"
	"github.com/sheetdrive/sheetdrive/gdrive"
)

var RevisionsCmd = Revisions{
	command: command{
		credentials: defaultCredentials(),
		debug:       false,
	},

	fileId: "",
}

type Revisions struct {
	command
	fileId string
}

func (cmd *Revisions) Name() string {
	return "revisions"
}

func (cmd *Revisions) Description() string {
	return "Displays the revision history for a Google Drive file"
}

func (cmd *Revisions) Usage() string {
	return "--credentials <file> --id <file-id>"
}

func (cmd *Revisions) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] revisions [options] --id <file-id>\n", APP)
	fmt.Println()
	fmt.Println("  Displays the revision history for a Google Drive file, latest last")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetdrive revisions --credentials "service-account.json" --id "1GvzJ9pHp7Yyd1cIYlnnB7oaCFVf0Wu2n"`)
	fmt.Println()
}

func (cmd *Revisions) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("revisions")

	flagset.StringVar(&cmd.fileId, "id", cmd.fileId, "Drive file ID")

	return flagset
}

func (cmd *Revisions) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.fileId) == "" {
		return fmt.Errorf("--id is a required option")
	}

	// ... fetch revisions
	ctx := context.Background()

	google, err := gapi.NewDrive(ctx, cmd.credentials)
	if err != nil {
		return fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	revisions, err := gdrive.Revisions(ctx, google, cmd.fileId)
	if err != nil {
		return fmt.Errorf("unable to retrieve file revisions (%v)", err)
	}

	latest, err := gdrive.Latest(revisions)
	if err != nil {
		return fmt.Errorf("unable to identify latest revision for file ID %s (%v)", cmd.fileId, err)
	}

	for _, revision := range revisions {
		fmt.Printf("  %-33s %s\n", revision.ID, revision.Modified.Format("2006-01-02 15:04:05"))
	}

	fmt.Println()
	fmt.Printf("  latest: %s (%s)\n", latest.ID, latest.Modified.Format("2006-01-02 15:04:05"))

	return nil
}
