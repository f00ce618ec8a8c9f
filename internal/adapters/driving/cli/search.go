package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimbus-browser/recall/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
	searchType  string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the index with natural language",
	Long: `Embeds the query and ranks indexed documents by cosine similarity.
Query phrasing like "tabs about rust" narrows the search to a single
source type via the intent classifier; --type overrides that.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVarP(&searchType, "type", "t", "", "restrict to a type: history, tab, or bookmark")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if !searchService.Available() {
		return errors.New("semantic search unavailable: no embedding generator configured")
	}

	var (
		results []domain.RankedResult
		err     error
	)
	if searchType != "" {
		types := []domain.DocumentType{domain.DocumentType(searchType)}
		results, err = searchService.Search(cmd.Context(), query, searchLimit, types)
	} else {
		results, err = searchService.SemanticSearch(cmd.Context(), query, searchLimit)
	}
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.RankedResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.RankedResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		title := results[i].Document.Title
		if title == "" {
			title = results[i].Document.URL
		}

		cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, results[i].Score)
		cmd.Printf("      %s | %s\n", results[i].Document.Type, results[i].Document.URL)
		cmd.Printf("      %s\n", results[i].MatchReason)
		cmd.Println()
	}

	return nil
}
