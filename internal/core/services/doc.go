// Package services implements the core application logic of the
// retrieval engine: the document store (the index's single writer),
// the indexer, the similarity searcher, and the lexical quick-search
// ranker. Services depend only on domain types and driven ports;
// adapters are injected at construction.
package services
