package domain

import "time"

// Record is a raw browsing entry handed to the indexer by the host:
// a visited page, an open tab, or a bookmark.
type Record struct {
	// Type classifies the record source.
	Type DocumentType `json:"type"`

	// URL is the page location.
	URL string `json:"url"`

	// Title is the page title as reported by the host.
	Title string `json:"title"`

	// SpaceID is the workspace the record belongs to, if any.
	SpaceID string `json:"spaceId,omitempty"`

	// IsPinned marks pinned tabs.
	IsPinned bool `json:"isPinned,omitempty"`
}

// Candidate is a raw entry scored by the lexical quick-search ranker.
// It is independent of the vector index: the host passes whatever set
// it wants ranked (open tabs, recent history, bookmarks).
type Candidate struct {
	// Type classifies the candidate; history candidates receive a
	// frecency bonus on top of the match score.
	Type DocumentType `json:"type"`

	// URL is the full location, including scheme.
	URL string `json:"url"`

	// Title is the page title.
	Title string `json:"title"`

	// LastVisited is the most recent visit time. Only consulted for
	// history candidates.
	LastVisited time.Time `json:"lastVisited"`
}

// RankedCandidate pairs a candidate with its combined lexical score.
type RankedCandidate struct {
	Candidate Candidate `json:"candidate"`

	// Score is matchScore plus any frecency bonus.
	Score int `json:"score"`
}
