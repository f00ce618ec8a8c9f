// Package cli wires the retrieval engine's services into a cobra
// command tree. The binary is a host-side harness around the engine:
// records in, ranked results out.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/nimbus-browser/recall/internal/adapters/driven/config/file"
	"github.com/nimbus-browser/recall/internal/adapters/driven/embedding/ollama"
	"github.com/nimbus-browser/recall/internal/adapters/driven/embedding/openai"
	storagefile "github.com/nimbus-browser/recall/internal/adapters/driven/storage/file"
	"github.com/nimbus-browser/recall/internal/core/ports/driven"
	"github.com/nimbus-browser/recall/internal/core/services"
	"github.com/nimbus-browser/recall/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services shared by the subcommands, wired in initServices.
var (
	configStore   *configfile.ConfigStore
	documentStore *services.DocumentStore
	indexService  *services.Indexer
	searchService *services.Searcher
	rankService   *services.Ranker
)

var (
	flagVerbose   bool
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "recall",
	Short: "Local hybrid search over browsing history, tabs, and bookmarks",
	Long: `Recall is a device-resident retrieval engine. It indexes browsing
records into a local embedding index for natural-language search, and
ranks raw entries lexically for instantaneous quick-search. No page
content ever leaves the machine except the derived text sent to the
embedding generator.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.recall)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// initServices builds the engine from configuration: snapshot store,
// document store, embedding adapter, and the three services.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	// Already wired (injected by the host or a test harness).
	if documentStore != nil {
		return nil
	}

	var err error
	configStore, err = configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	snapshots, err := storagefile.NewSnapshotStore(configStore.GetString("index.path"))
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}

	var opts []services.StoreOption
	if max := configStore.GetInt("index.max_documents"); max > 0 {
		opts = append(opts, services.WithMaxDocuments(max))
	}
	documentStore = services.NewDocumentStore(snapshots, opts...)
	if err := documentStore.Load(); err != nil {
		return fmt.Errorf("load index: %w", err)
	}

	embedder := buildEmbedder()
	indexService = services.NewIndexer(documentStore, embedder)
	searchService = services.NewSearcher(documentStore, embedder)
	rankService = services.NewRanker()

	logger.Debug("Engine ready: snapshot=%s, model=%s, available=%t",
		snapshots.Path(), embedder.ModelName(), embedder.Available())
	return nil
}

// buildEmbedder selects the embedding adapter from configuration.
// OpenAI when a key is configured, Ollama otherwise.
func buildEmbedder() driven.EmbeddingService {
	provider := configStore.GetString("embedding.provider")
	apiKey := configStore.GetString("embedding.api_key")

	if provider == "ollama" {
		return ollama.NewEmbeddingService(ollama.Config{
			BaseURL: configStore.GetString("embedding.base_url"),
			Model:   configStore.GetString("embedding.model"),
		})
	}

	return openai.NewEmbeddingService(openai.Config{
		APIKey:  apiKey,
		BaseURL: configStore.GetString("embedding.base_url"),
		Model:   configStore.GetString("embedding.model"),
	})
}
