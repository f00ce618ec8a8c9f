package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimbus-browser/recall/internal/core/domain"
)

var (
	indexType  string
	indexTitle string
)

var indexCmd = &cobra.Command{
	Use:   "index [url | records.json]",
	Short: "Index browsing records",
	Long: `Indexes a single record given a URL, or a batch of records from a
JSON file ([{"type":"history","url":"...","title":"..."}, ...]).
Batches use one embedding round-trip for all new records.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVarP(&indexType, "type", "t", "history", "record type: history, tab, or bookmark")
	indexCmd.Flags().StringVar(&indexTitle, "title", "", "page title for a single-URL record")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	arg := args[0]

	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return indexFromFile(cmd, arg)
	}

	rec := domain.Record{
		Type:  domain.DocumentType(indexType),
		URL:   arg,
		Title: indexTitle,
	}
	if err := indexService.IndexOne(cmd.Context(), rec); err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	cmd.Printf("Indexed %s (%d documents total)\n", arg, documentStore.Stats().Total)
	return nil
}

func indexFromFile(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read records: %w", err)
	}

	var recs []domain.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return fmt.Errorf("parse records: %w", err)
	}

	if err := indexService.IndexBatch(cmd.Context(), recs); err != nil {
		return fmt.Errorf("index batch failed: %w", err)
	}

	cmd.Printf("Indexed %d records (%d documents total)\n", len(recs), documentStore.Stats().Total)
	return nil
}
