package domain

import "strings"

// RankedResult is a single similarity-search hit.
type RankedResult struct {
	// Document is the matched document.
	Document Document `json:"document"`

	// Score is the cosine similarity against the query embedding.
	Score float64 `json:"score"`

	// MatchReason is a short human-readable explanation of why the
	// document matched.
	MatchReason string `json:"matchReason"`
}

// Similarity score buckets used when the query shares no words with
// the title.
const (
	HighMatchScore    = 0.8
	RelatedMatchScore = 0.6
)

// MatchReason explains a similarity hit. When query words overlap with
// title words the overlap itself is the best explanation; otherwise
// the score is bucketed.
func MatchReason(query, title string, score float64) string {
	if overlap := wordOverlap(query, title); len(overlap) > 0 {
		return "matches " + strings.Join(overlap, ", ")
	}

	switch {
	case score > HighMatchScore:
		return "high similarity"
	case score > RelatedMatchScore:
		return "related content"
	default:
		return "possible match"
	}
}

// wordOverlap returns the query words that also appear in the title,
// case-insensitive, in query order.
func wordOverlap(query, title string) []string {
	titleWords := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(title)) {
		titleWords[w] = true
	}

	var overlap []string
	seen := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if titleWords[w] && !seen[w] {
			overlap = append(overlap, w)
			seen[w] = true
		}
	}
	return overlap
}
