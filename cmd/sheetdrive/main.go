package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sheetdrive/sheetdrive/commands"
)

var cli = []commands.Command{
	&commands.GetCmd,
	&commands.PutCmd,
	&commands.UploadCmd,
	&commands.DownloadCmd,
	&commands.InfoCmd,
	&commands.RevisionsCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	if args[0] == "help" {
		help(args[1:])
		return
	}

	cmd, ok := find(args[0])
	if !ok {
		fmt.Printf("\nInvalid command '%s'\n\n", args[0])
		usage()
		os.Exit(1)
	}

	flagset := cmd.FlagSet()
	if err := flagset.Parse(args[1:]); err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func find(name string) (commands.Command, bool) {
	for _, cmd := range cli {
		if cmd.Name() == name {
			return cmd, true
		}
	}

	return nil, false
}

func help(args []string) {
	if len(args) > 0 {
		if cmd, ok := find(args[0]); ok {
			cmd.Help()
			return
		}

		fmt.Printf("\nInvalid command '%s'\n", args[0])
	}

	usage()
}

func usage() {
	fmt.Println()
	fmt.Println("  Usage: sheetdrive [--debug] <command> [options]")
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, cmd := range cli {
		fmt.Printf("    %-10s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()
	fmt.Println("    help <command> displays the command specific options")
	fmt.Println()
}
