package cli

import (
	"github.com/spf13/cobra"

	"github.com/nimbus-browser/recall/internal/core/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	Run: func(cmd *cobra.Command, _ []string) {
		stats := documentStore.Stats()
		cmd.Printf("Documents: %d\n", stats.Total)
		for _, t := range []domain.DocumentType{
			domain.DocumentTypeHistory,
			domain.DocumentTypeTab,
			domain.DocumentTypeBookmark,
		} {
			cmd.Printf("  %-9s %d\n", t, stats.ByType[t])
		}
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the index (in memory and on disk)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := documentStore.Clear(); err != nil {
			return err
		}
		cmd.Println("Index cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(clearCmd)
}
