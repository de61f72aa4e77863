package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sheetdrive/sheetdrive/gapi"
	"github.com/sheetdrive/sheetdrive/gdrive"
)

var InfoCmd = Info{
	command: command{
		credentials: defaultCredentials(),
		debug:       false,
	},

	fileId: "",
}

type Info struct {
	command
	fileId string
}

func (cmd *Info) Name() string {
	return "info"
}

func (cmd *Info) Description() string {
	return "Displays the metadata for a Google Drive file"
}

func (cmd *Info) Usage() string {
	return "--credentials <file> --id <file-id>"
}

func (cmd *Info) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] info [options] --id <file-id>\n", APP)
	fmt.Println()
	fmt.Println("  Displays the ID, name, MIME type, size and parent folders for a Google Drive file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetdrive info --credentials "service-account.json" --id "1GvzJ9pHp7Yyd1cIYlnnB7oaCFVf0Wu2n"`)
	fmt.Println()
}

func (cmd *Info) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("info")

	flagset.StringVar(&cmd.fileId, "id", cmd.fileId, "Drive file ID")

	return flagset
}

func (cmd *Info) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.fileId) == "" {
		return fmt.Errorf("--id is a required option")
	}

	// ... fetch metadata
	ctx := context.Background()

	google, err := gapi.NewDrive(ctx, cmd.credentials)
	if err != nil {
		return fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	file, err := gdrive.Metadata(ctx, google, cmd.fileId)
	if err != nil {
		return fmt.Errorf("unable to retrieve file metadata (%v)", err)
	}

	fmt.Printf("  ID:      %s\n", file.Id)
	fmt.Printf("  Name:    %s\n", file.Name)
	fmt.Printf("  MIME:    %s\n", file.MimeType)
	fmt.Printf("  Size:    %v\n", file.Size)
	fmt.Printf("  Parents: %s\n", strings.Join(file.Parents, ","))

	return nil
}
