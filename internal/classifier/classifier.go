package classifier

import (
	"strings"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
)

// Heuristic labels query intent with fixed, case-insensitive phrase lists.
// Classification is deterministic and pure; it exists only to feed the
// creative bypass, never to change ranking or scoring.
type Heuristic struct{}

// NewHeuristic creates a new heuristic query classifier
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Imperative composition verbs that open a creative request
var creativePrefixes = []string{
	"write",
	"compose",
	"imagine",
	"draft",
	"invent",
	"brainstorm",
	"make up",
	"tell me a story",
}

// Composition phrases that may appear anywhere in the query
var creativePhrases = []string{
	"a poem",
	"a speech",
	"a story",
	"a song",
	"a haiku",
	"song lyrics",
	"creative writing",
	"in the style of",
}

// Comparative/analytical openers, reserved for future refinement
var analyticalPrefixes = []string{
	"compare",
	"contrast",
	"analyze",
	"analyse",
	"evaluate the",
	"what are the tradeoffs",
}

// Classify labels the query as FACTUAL, CREATIVE, or ANALYTICAL. FACTUAL is
// the default; ANALYTICAL currently receives no special treatment downstream.
func (h *Heuristic) Classify(text string) decision.QueryClass {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return decision.ClassFactual
	}

	if hasAnyPrefix(normalized, creativePrefixes) || containsAny(normalized, creativePhrases) {
		return decision.ClassCreative
	}
	if hasAnyPrefix(normalized, analyticalPrefixes) {
		return decision.ClassAnalytical
	}
	return decision.ClassFactual
}

// hasAnyPrefix checks if s starts with any of the prefixes
func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// containsAny checks if s contains any of the substrings
func containsAny(s string, substrings []string) bool {
	for _, substr := range substrings {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}
