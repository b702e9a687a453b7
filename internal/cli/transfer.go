package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewExportCmd writes the registry (seed library plus tags file) to a path.
func NewExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export the tag registry to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := loadConfig(cmd)
			manager := setupEngine(cfg)

			if err := manager.ExportTags(args[0]); err != nil {
				return err
			}
			log.Printf("Exported %d tags to %s", manager.TagCount(), args[0])
			return nil
		},
	}
}

// NewImportCmd validates a tag file by importing it into a fresh registry,
// then merges it into the configured tags file when one is set.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Import tags from a JSON file into the configured tags file",
		Long: `Loads the engine from config, imports the given file through the strict
decode path (the first malformed record aborts), and re-exports the merged
registry to the configured tags file so the next run picks it up.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := loadConfig(cmd)
			manager := setupEngine(cfg)

			before := manager.TagCount()
			if err := manager.ImportTags(args[0]); err != nil {
				return err
			}
			log.Printf("Imported %s: registry grew from %d to %d tags", args[0], before, manager.TagCount())

			if cfg.Data.TagsFile == "" {
				log.Warn("No tags_file configured; import was validated but not persisted")
				return nil
			}
			if err := manager.ExportTags(cfg.Data.TagsFile); err != nil {
				return err
			}
			log.Printf("Persisted merged registry to %s", cfg.Data.TagsFile)
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}
