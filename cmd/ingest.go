package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/sitescore/internal/config"
	"github.com/dotcommander/sitescore/internal/corpus"
	"github.com/dotcommander/sitescore/internal/discovery"
)

var (
	ingestCollection string
	ingestPatterns   []string
	ingestReplace    bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <path>",
	Short: "Ingest documents into a corpus collection",
	Long: `The ingest command discovers markdown and text files under a path,
parses their YAML frontmatter into document metadata, and stores them in
the named corpus collection. Re-ingesting a document id updates it in
place; document order is preserved across loads.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runIngest(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestCollection, "collection", "n", "", "Collection name (defaults to the directory name)")
	ingestCmd.Flags().StringSliceVarP(&ingestPatterns, "patterns", "p", nil, "Glob patterns for files to ingest")
	ingestCmd.Flags().BoolVar(&ingestReplace, "replace", false, "Delete the collection before ingesting")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(path string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	patterns := ingestPatterns
	if len(patterns) == 0 {
		patterns = discovery.DefaultPatterns
	}

	fd := discovery.NewFileDiscovery(path, patterns)
	c, err := fd.Discover()
	if err != nil {
		return fmt.Errorf("error discovering documents under %s: %w", path, err)
	}
	if c.Len() == 0 {
		return fmt.Errorf("no documents found under %s", path)
	}

	name := ingestCollection
	if name == "" {
		name = c.Name
	}

	store, err := corpus.Open(cfg.CorpusPath)
	if err != nil {
		return fmt.Errorf("error opening corpus %s: %w", cfg.CorpusPath, err)
	}
	defer store.Close()

	if ingestReplace {
		if err := store.DeleteCollection(name); err != nil {
			return fmt.Errorf("error replacing collection %s: %w", name, err)
		}
	}
	if err := store.AddDocuments(name, c.Docs); err != nil {
		return fmt.Errorf("error ingesting into %s: %w", name, err)
	}

	if !cfg.Quiet {
		fmt.Printf("ingested %d documents into %s\n", c.Len(), name)
	}
	return nil
}
