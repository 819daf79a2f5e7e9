package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/sitescore/internal/config"
	"github.com/dotcommander/sitescore/internal/corpus"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List collections in the local corpus",
	Long: `The collections command lists every collection stored in the corpus
database along with its document count.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCollections(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
}

func runCollections() error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	store, err := corpus.Open(cfg.CorpusPath)
	if err != nil {
		return fmt.Errorf("error opening corpus %s: %w", cfg.CorpusPath, err)
	}
	defer store.Close()

	infos, err := store.ListCollections()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("no collections ingested yet")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%-32s %d documents\n", info.Name, info.Documents)
	}
	return nil
}
