package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/voyago/tagserve/internal/utils"
	"github.com/voyago/tagserve/pkg/label"
)

// NewSearchCmd runs the interactive search shell, mainly for testing and
// debugging the index without a host process attached.
func NewSearchCmd() *cobra.Command {
	var (
		language string
		limit    int
		minScore float64
		noFilter bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Interactive tag and destination search shell",
		Long: `Reads prefixes from stdin and prints matching tags ranked by weight.
Lines starting with /dest are treated as destination queries:

	> bea
	> /dest historical mountain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := loadConfig(cmd)
			manager := setupEngine(cfg)

			if limit < 1 {
				limit = cfg.Search.DefaultLimit
			}
			if minScore < 0 {
				minScore = cfg.Search.MinMatchScore
			}
			lang := parseLanguageOrDefault(language, cfg)

			shell := &searchShell{
				manager:  manager,
				lang:     lang,
				limit:    limit,
				minScore: minScore,
				noFilter: noFilter,
			}
			return shell.Start()
		},
	}

	cmd.Flags().StringVarP(&language, "language", "L", "", "language code for synonyms and names (default from config)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum results per query (default from config)")
	cmd.Flags().Float64Var(&minScore, "min-score", -1, "minimum destination match score (default from config)")
	cmd.Flags().BoolVar(&noFilter, "no-filter", false, "disable query filtering (shows results for raw input)")
	return cmd
}

// searchShell processes user input from stdin, printing ranked matches.
type searchShell struct {
	manager  *label.Manager
	lang     label.Language
	limit    int
	minScore float64
	noFilter bool
}

// Start begins the interface loop. It terminates on stdin EOF or read error.
func (sh *searchShell) Start() error {
	log.Print("tagserve search shell")
	log.Printf("language=%s limit=%d min-score=%.2f", sh.lang, sh.limit, sh.minScore)
	log.Print("type a prefix and press Enter; '/dest q1 q2 ...' searches destinations (Ctrl+C to exit):")

	reader := bufio.NewReader(os.Stdin)
	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if queries, ok := strings.CutPrefix(line, "/dest "); ok {
			sh.handleDestinationQuery(strings.Fields(queries))
			continue
		}
		sh.handlePrefix(line)
	}
}

// handlePrefix runs one prefix lookup and prints the ranked tags.
func (sh *searchShell) handlePrefix(prefix string) {
	if !sh.noFilter && !utils.IsValidQuery(prefix) {
		log.Infof("No results for prefix: '%s'", prefix)
		return
	}

	start := time.Now()
	tags := sh.manager.SearchTagsByPrefix(prefix, sh.lang, sh.limit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(tags) == 0 {
		log.Warnf("No tags found for prefix: '%s'", prefix)
		return
	}

	log.Printf("Found %d tags for prefix '%s':", len(tags), prefix)
	for i, tag := range tags {
		name := fmt.Sprintf("\033[38;5;75m%s\033[0m", tag.Name(sh.lang))
		log.Printf("%2d. %-32s (id: %s, category: %s, weight: %.2f)",
			i+1, name, tag.ID, tag.Category, tag.Weight)
	}
}

// handleDestinationQuery scores the store against the query terms.
func (sh *searchShell) handleDestinationQuery(queries []string) {
	if len(queries) == 0 {
		log.Warn("Usage: /dest <term> [term ...]")
		return
	}

	start := time.Now()
	matches := sh.manager.SearchDestinationsByTags(queries, sh.lang, sh.minScore, sh.limit)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for %d terms", elapsed, len(queries))

	if len(matches) == 0 {
		log.Warnf("No destinations matched %v with min score %.2f", queries, sh.minScore)
		return
	}

	log.Printf("Found %d destinations for %v:", len(matches), queries)
	for i, match := range matches {
		name := fmt.Sprintf("\033[38;5;75m%s\033[0m", match.Destination.Name(sh.lang))
		log.Printf("%2d. %-32s (score: %.3f, id: %s)", i+1, name, match.Score, match.Destination.ID)
	}
}
