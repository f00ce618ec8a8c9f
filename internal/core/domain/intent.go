package domain

import "strings"

// Intent is a coarse classification of what a natural-language query is
// asking for. A query may carry several intents at once.
type Intent string

// Recognised intents. IntentTopic is the free-form fallback.
const (
	IntentTabs      Intent = "tabs"
	IntentHistory   Intent = "history"
	IntentBookmarks Intent = "bookmarks"
	IntentTopic     Intent = "topic"
)

// Keyword sets for the intent heuristic. Substring membership over the
// lowered query, so "tab" also fires on "tabs".
var (
	tabKeywords      = []string{"tab", "open", "current", "window"}
	historyKeywords  = []string{"visited", "history", "yesterday", "week", "ago", "recently", "last time"}
	bookmarkKeywords = []string{"bookmark", "favorite", "favourite", "saved", "starred"}
)

// ClassifyIntent runs the keyword heuristic over a natural-language
// query. When no keyword set matches, the query is treated as a
// free-form topic.
func ClassifyIntent(query string) []Intent {
	q := strings.ToLower(query)

	var intents []Intent
	if containsAny(q, tabKeywords) {
		intents = append(intents, IntentTabs)
	}
	if containsAny(q, historyKeywords) {
		intents = append(intents, IntentHistory)
	}
	if containsAny(q, bookmarkKeywords) {
		intents = append(intents, IntentBookmarks)
	}

	if len(intents) == 0 {
		return []Intent{IntentTopic}
	}
	return intents
}

// TypeForIntents maps a classified intent set to a single document
// type filter. The filter applies only when exactly one non-topic
// intent was detected; ambiguous or topic-only queries search
// everything.
func TypeForIntents(intents []Intent) (DocumentType, bool) {
	var (
		found DocumentType
		count int
	)
	for _, intent := range intents {
		switch intent {
		case IntentTabs:
			found = DocumentTypeTab
			count++
		case IntentHistory:
			found = DocumentTypeHistory
			count++
		case IntentBookmarks:
			found = DocumentTypeBookmark
			count++
		}
	}

	if count != 1 {
		return "", false
	}
	return found, true
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
