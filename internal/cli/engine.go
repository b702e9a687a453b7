// Package cli implements the tagserve subcommands: the IPC server, the
// interactive search shell, and the flat-file transfer operations.
package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/voyago/tagserve/internal/logger"
	"github.com/voyago/tagserve/internal/utils"
	"github.com/voyago/tagserve/pkg/config"
	"github.com/voyago/tagserve/pkg/label"
)

// loadConfig resolves the shared --config flag and loads with priority.
func loadConfig(cmd *cobra.Command) (*config.Config, string) {
	customPath, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, path, err := config.LoadConfigWithPriority(customPath)
	if err != nil {
		log.Warnf("Falling back to built-in config defaults: %v", err)
		return config.DefaultConfig(), ""
	}
	return cfg, path
}

// setupEngine builds a Manager from config: seeds the default tag library
// when enabled, then layers the tags file on top if one exists.
func setupEngine(cfg *config.Config) *label.Manager {
	lg := logger.New("engine")
	manager := label.NewManager()

	if cfg.Data.SeedDefaults {
		label.Seed(manager)
		lg.Debugf("Seeded %d default tags and %d sample destinations",
			len(label.DefaultTags()), len(label.SampleDestinations()))
	}

	if cfg.Data.TagsFile != "" && utils.FileExists(cfg.Data.TagsFile) {
		if err := manager.ImportTags(cfg.Data.TagsFile); err != nil {
			lg.Warnf("Skipping tags file: %v", err)
		} else {
			lg.Debugf("Imported tags from %s", cfg.Data.TagsFile)
		}
	}
	return manager
}

// parseLanguageOrDefault coerces a CLI language flag leniently.
func parseLanguageOrDefault(code string, cfg *config.Config) label.Language {
	if code == "" {
		code = cfg.Search.DefaultLanguage
	}
	lang, err := label.ParseLanguage(code)
	if err != nil {
		log.Warnf("%v, using %q", err, cfg.Search.DefaultLanguage)
		if fallback, ferr := label.ParseLanguage(cfg.Search.DefaultLanguage); ferr == nil {
			return fallback
		}
		return label.DefaultLanguage
	}
	return lang
}
