/*
Package main implements the tagserve server and CLI application.

tagserve indexes multilingual travel-destination tags and matches destinations
against free-text tag queries. Tag synonyms live in one prefix index per
language, destinations carry tag relevance scores, and queries are ranked with
a composite coverage/quality score.

# Usage

Run as a msgpack IPC server over stdin/stdout:

	tagserve serve

Poke at the index interactively:

	tagserve search -L en -n 10

Move tag data through the flat-file format:

	tagserve export tags.json
	tagserve import more-tags.json

# Configuration

Runtime configuration lives in a TOML file that is created with defaults on
first run:

	[server]
	max_limit = 64
	min_prefix = 0
	max_prefix = 60

	[search]
	default_language = "en"
	default_limit = 20
	min_match_score = 0.3

	[data]
	tags_file = "tags.json"
	seed_defaults = true

With seed_defaults enabled the engine starts with the built-in tag library and
sample destinations; tags_file, when present, is imported on top of it.

# IPC Protocol

serve reads a stream of msgpack-encoded requests from stdin and writes one
response per request to stdout. See pkg/server for the message catalogue:

	{"id": "t1", "cmd": "complete_tags", "p": "bea", "lang": "en", "l": 10}
	{"id": "d1", "cmd": "search_destinations", "q": ["historical"], "min": 0.3}

All logging goes to stderr so the stdout stream carries only responses.
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/voyago/tagserve/internal/cli"
)

const (
	Version = "0.3.0"
	AppName = "tagserve"
	gh      = "https://github.com/voyago/tagserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the subcommands; the logic lives in internal/cli and the engine
// packages.
func main() {
	sigHandler()

	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: "Multilingual destination tag indexing and matching",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Root().PersistentFlags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
				log.SetReportTimestamp(true)
			} else {
				log.SetLevel(log.WarnLevel)
			}
		},
	}
	rootCmd.PersistentFlags().String("config", "", "path to a config.toml (default: user config dir)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(cli.NewServeCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewExportCmd())
	rootCmd.AddCommand(cli.NewImportCmd())
	rootCmd.AddCommand(cli.NewVersionCmd(Version, gh))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
