package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sheetdrive/sheetdrive/gapi"
	"github.com/sheetdrive/sheetdrive/gdrive"
)

var UploadCmd = Upload{
	command: command{
		credentials: defaultCredentials(),
		debug:       false,
	},

	file:     "",
	name:     "",
	mimetype: "",
	folder:   "",
}

type Upload struct {
	command
	file     string
	name     string
	mimetype string
	folder   string
}

func (cmd *Upload) Name() string {
	return "upload"
}

func (cmd *Upload) Description() string {
	return "Uploads a local file to Google Drive and prints the new file ID"
}

func (cmd *Upload) Usage() string {
	return "--credentials <file> --file <file>"
}

func (cmd *Upload) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] upload [options] --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Uploads a local file to Google Drive and prints the ID assigned to the created file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetdrive upload --credentials "service-account.json" --file "example.txt" --mime "text/plain"`)
	fmt.Println(`    sheetdrive upload --credentials "service-account.json" --file "example.txt" --folder "1GvzJ9pHp7Yyd1cIYlnnB7oaCFVf0Wu2n"`)
	fmt.Println()
}

func (cmd *Upload) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("upload")

	flagset.StringVar(&cmd.file, "file", cmd.file, "Local file to upload")
	flagset.StringVar(&cmd.name, "name", cmd.name, "Drive file name. Defaults to the local file name")
	flagset.StringVar(&cmd.mimetype, "mime", cmd.mimetype, "MIME type for the uploaded file e.g. 'text/plain'")
	flagset.StringVar(&cmd.folder, "folder", cmd.folder, "Drive folder ID for the uploaded file")

	return flagset
}

func (cmd *Upload) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	name := strings.TrimSpace(cmd.name)
	if name == "" {
		name = filepath.Base(cmd.file)
	}

	if cmd.debug {
		debugf("Upload - file:%s  name:%s  mime:%s  folder:%s", cmd.file, name, cmd.mimetype, cmd.folder)
	}

	// ... upload
	ctx := context.Background()

	google, err := gapi.NewDrive(ctx, cmd.credentials)
	if err != nil {
		return fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	f, err := os.Open(cmd.file)
	if err != nil {
		return err
	}

	defer f.Close()

	fileId, err := gdrive.Upload(ctx, google, f, name, cmd.mimetype, cmd.folder)
	if err != nil {
		return fmt.Errorf("unable to upload file (%v)", err)
	}

	infof("Uploaded %s as file ID %s", cmd.file, fileId)

	fmt.Printf("%s\n", fileId)

	return nil
}
