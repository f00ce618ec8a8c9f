package services

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/nimbus-browser/recall/internal/core/domain"
	"github.com/nimbus-browser/recall/internal/core/ports/driving"
)

// Ensure Ranker implements the interface.
var _ driving.RankService = (*Ranker)(nil)

// Match score tiers, evaluated in priority order. The first matching
// tier wins outright; signals are not summed, so a domain substring
// match scores 80 even when the title also matches.
const (
	scoreDomainPrefix    = 90
	scoreDomainSubstring = 80
	scoreDomainFuzzy     = 70
	scorePathSubstring   = 50
	scoreURLFuzzy        = 40
	scoreTitleSubstring  = 30
	scoreTitleFuzzy      = 20
)

// Frecency bonus tiers by days since last visit.
const (
	frecencyToday     = 10
	frecencyYesterday = 8
	frecencyThisWeek  = 5
	frecencyThisMonth = 2
)

// Ranker is the synchronous lexical scorer behind the quick-search
// box. It operates directly on raw candidates, independent of the
// vector index, and never touches the network: it can return empty
// results but never fail.
type Ranker struct {
	now func() time.Time
}

// NewRanker creates a lexical ranker.
func NewRanker() *Ranker {
	return &Ranker{now: time.Now}
}

// Rank scores candidates against the typed query and returns matches
// in descending combined score order. History candidates get a
// frecency bonus on top of the match score; candidates that do not
// match at all are excluded regardless of frecency. Ties keep the
// caller's discovery order.
func (r *Ranker) Rank(query string, candidates []domain.Candidate) []domain.RankedCandidate {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []domain.RankedCandidate{}
	}

	now := r.now()
	ranked := make([]domain.RankedCandidate, 0, len(candidates))
	for _, cand := range candidates {
		host, path := splitURL(cand.URL)
		score := matchScore(query, host, path, strings.ToLower(cand.URL), strings.ToLower(cand.Title))
		if score == 0 {
			continue
		}
		if cand.Type == domain.DocumentTypeHistory {
			score += frecencyBonus(cand.LastVisited, now)
		}
		ranked = append(ranked, domain.RankedCandidate{Candidate: cand, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// FuzzySubsequenceMatch reports whether every character of pattern
// appears in text in order, skipping non-matching characters. A
// subsequence test, not edit distance: "lnk" matches "linkedin.com".
func FuzzySubsequenceMatch(pattern, text string) bool {
	p := []rune(strings.ToLower(pattern))
	if len(p) == 0 {
		return true
	}
	i := 0
	for _, c := range strings.ToLower(text) {
		if c == p[i] {
			i++
			if i == len(p) {
				return true
			}
		}
	}
	return false
}

// matchScore evaluates the fixed tier table top-down and returns the
// first hit. All inputs must already be lower-cased.
func matchScore(query, host, path, fullURL, title string) int {
	switch {
	case strings.HasPrefix(host, query):
		return scoreDomainPrefix
	case strings.Contains(host, query):
		return scoreDomainSubstring
	case FuzzySubsequenceMatch(query, host):
		return scoreDomainFuzzy
	case strings.Contains(path, query):
		return scorePathSubstring
	case FuzzySubsequenceMatch(query, fullURL):
		return scoreURLFuzzy
	case strings.Contains(title, query):
		return scoreTitleSubstring
	case FuzzySubsequenceMatch(query, title):
		return scoreTitleFuzzy
	}
	return 0
}

// frecencyBonus rewards recent visits on a step curve: today 10,
// yesterday 8, this week 5, this month 2, older nothing.
func frecencyBonus(visited, now time.Time) int {
	if visited.IsZero() || visited.After(now) {
		return 0
	}
	days := int(now.Sub(visited).Hours() / 24)
	switch {
	case days == 0:
		return frecencyToday
	case days == 1:
		return frecencyYesterday
	case days <= 6:
		return frecencyThisWeek
	case days <= 30:
		return frecencyThisMonth
	}
	return 0
}

// splitURL extracts the lower-cased host and path for tier matching.
// Unparseable URLs fall back to matching against the raw string as the
// host.
func splitURL(rawURL string) (host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return strings.ToLower(rawURL), ""
	}
	return strings.ToLower(u.Host), strings.ToLower(u.Path)
}
