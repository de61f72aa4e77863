package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sheetdrive/sheetdrive/gapi"
	"github.com/sheetdrive/sheetdrive/gdrive"
)

var DownloadCmd = Download{
	command: command{
		credentials: defaultCredentials(),
		debug:       false,
	},

	fileId: "",
	file:   "",
}

type Download struct {
	command
	fileId string
	file   string
}

func (cmd *Download) Name() string {
	return "download"
}

func (cmd *Download) Description() string {
	return "Downloads a Google Drive file to a local file"
}

func (cmd *Download) Usage() string {
	return "--credentials <file> --id <file-id> --file <file>"
}

func (cmd *Download) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] download [options] --id <file-id> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the content of a Google Drive file to a local file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheetdrive download --credentials "service-account.json" \`)
	fmt.Println(`                        --id "1GvzJ9pHp7Yyd1cIYlnnB7oaCFVf0Wu2n" \`)
	fmt.Println(`                        --file "example.txt"`)
	fmt.Println()
}

func (cmd *Download) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("download")

	flagset.StringVar(&cmd.fileId, "id", cmd.fileId, "Drive file ID")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Local file name for the downloaded content")

	return flagset
}

func (cmd *Download) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.fileId) == "" {
		return fmt.Errorf("--id is a required option")
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	if cmd.debug {
		debugf("Download - file ID:%s  file:%s", cmd.fileId, cmd.file)
	}

	// ... download
	ctx := context.Background()

	google, err := gapi.NewDrive(ctx, cmd.credentials)
	if err != nil {
		return fmt.Errorf("unable to create new Drive client (%v)", err)
	}

	tmp, err := os.CreateTemp(os.TempDir(), "drive")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		if err := os.Remove(tmp.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
			warnf("error removing working file %s (%v)", tmp.Name(), err)
		}
	}()

	bytes, err := gdrive.Download(ctx, google, cmd.fileId, tmp)
	if err != nil {
		return fmt.Errorf("unable to download file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Downloaded file ID %s to %s (%v bytes)", cmd.fileId, cmd.file, bytes)

	return nil
}
