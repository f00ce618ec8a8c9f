package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimbus-browser/recall/internal/core/domain"
)

var rankJSON bool

var rankCmd = &cobra.Command{
	Use:   "rank [query] [candidates.json]",
	Short: "Score candidates with the lexical quick-search ranker",
	Long: `Runs the synchronous quick-search scorer over candidates read from a
JSON file ([{"type":"tab","url":"...","title":"...","lastVisited":"..."}, ...]).
No network, no embeddings: tiered string matching plus a frecency bonus
for history entries.`,
	Args: cobra.ExactArgs(2),
	RunE: runRank,
}

func init() {
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	query := args[0]

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read candidates: %w", err)
	}

	var candidates []domain.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return fmt.Errorf("parse candidates: %w", err)
	}

	ranked := rankService.Rank(query, candidates)

	if rankJSON {
		out, err := json.MarshalIndent(ranked, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	if len(ranked) == 0 {
		cmd.Println("No matches.")
		return nil
	}

	for i, rc := range ranked {
		title := rc.Candidate.Title
		if title == "" {
			title = rc.Candidate.URL
		}
		cmd.Printf("  [%d] %s (%d)\n", i+1, title, rc.Score)
		cmd.Printf("      %s | %s\n", rc.Candidate.Type, rc.Candidate.URL)
	}
	return nil
}
