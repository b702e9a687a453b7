package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/voyago/tagserve/internal/logger"
	"github.com/voyago/tagserve/pkg/label"
	"github.com/voyago/tagserve/pkg/server"
)

// NewServeCmd runs the msgpack IPC server on stdin/stdout.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the tag engine as a msgpack IPC server (stdio)",
		Long: `Reads msgpack-encoded requests from stdin and writes one response per
request to stdout. Intended to be spawned by a host process; logs go to stderr
so the response stream stays clean.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, configPath := loadConfig(cmd)
			manager := setupEngine(cfg)

			showStartupInfo(manager.Stats(), configPath)
			srv := server.NewServer(manager, cfg, os.Stdin, os.Stdout)
			return srv.Start()
		},
	}
}

// showStartupInfo displays some basic info about the init process on stderr.
// It uses its own logger so the banner shows up below the default warn level.
func showStartupInfo(stats label.Stats, configPath string) {
	banner := logger.NewWithConfig("tagserve", log.InfoLevel, false, false, log.TextFormatter)
	banner.Info("init: OK")
	banner.Infof("Process ID: [ %d ]", os.Getpid())
	if configPath != "" {
		banner.Infof("config: ( %s )", configPath)
	}
	banner.Infof("registry: %d tags, %d destinations, %d languages indexed",
		stats.Tags, stats.Destinations, len(stats.Languages))
	banner.Info("status: ready")
}
