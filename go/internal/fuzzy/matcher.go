// Package fuzzy provides fuzzy team-name matching used by provider
// adapters for search ranking and by the channel-matching consumers.
package fuzzy

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mcdev12/sportsfed/go/internal/models"
)

// TeamPattern is a searchable pattern for one team.
//
// Distinctive patterns (full names, mascots, abbreviations) are unique
// enough to match on their own. Non-distinctive patterns (bare cities like
// "Boston") can match several teams and need stricter rules.
type TeamPattern struct {
	Pattern     string
	Distinctive bool
	Source      string
}

// MatchResult reports whether a pattern matched and how strongly.
type MatchResult struct {
	Matched bool
	Score   int
	Pattern string
}

var (
	punctRe = regexp.MustCompile(`[^\w\s]`)
	wsRe    = regexp.MustCompile(`\s+`)
)

// Normalize lowercases, strips punctuation (hyphens become spaces) and
// collapses whitespace so patterns compare the way stream text does.
func Normalize(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	normalized = punctRe.ReplaceAllString(normalized, " ")
	normalized = wsRe.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// GeneratePatterns returns all searchable patterns for a team, most
// specific first.
//
// Distinctiveness is derived from provider data instead of a maintained
// mascot list: when the full name ends with the short name, the short name
// is the mascot (distinctive) and the leading city is not; when the full
// name starts with the short name, the trailing mascot is distinctive and
// the location is not.
func GeneratePatterns(team models.Team) []TeamPattern {
	var patterns []TeamPattern
	seen := make(map[string]bool)

	add := func(value string, distinctive bool, source string) {
		normalized := Normalize(value)
		if normalized == "" || len(normalized) < 2 || seen[normalized] {
			return
		}
		seen[normalized] = true
		patterns = append(patterns, TeamPattern{Pattern: normalized, Distinctive: distinctive, Source: source})
	}

	if team.Name != "" {
		add(team.Name, true, "full_name")
	}

	nameNorm := Normalize(team.Name)
	shortNorm := Normalize(team.ShortName)

	switch {
	case team.Name != "" && team.ShortName != "" && strings.HasSuffix(nameNorm, " "+shortNorm):
		city := strings.TrimSpace(team.Name[:len(team.Name)-len(team.ShortName)])
		add(city, false, "derived_city")
		add(team.ShortName, true, "short_name_mascot")
	case team.Name != "" && team.ShortName != "" && strings.HasPrefix(nameNorm, shortNorm+" "):
		mascot := strings.TrimSpace(team.Name[len(team.ShortName):])
		add(team.ShortName, false, "short_name_location")
		add(mascot, true, "derived_mascot")
	case team.ShortName != "":
		add(team.ShortName, true, "short_name")
	}

	add(team.Abbreviation, true, "abbreviation")

	return patterns
}

// Minimum pattern length for substring matching; shorter patterns require
// word boundaries so "chi" cannot match inside "chicago".
const minSubstringLength = 5

// Minimum share of the text a non-distinctive substring must cover.
// "boston" inside "boston bruins" covers 46% and is rejected.
const minCoverageRatio = 0.70

// Matcher matches team patterns against free-form text such as stream
// titles and search queries.
type Matcher struct {
	// RankThreshold is the maximum Levenshtein rank accepted from the
	// fuzzy fallback. Higher admits sloppier matches.
	RankThreshold int
}

func NewMatcher() *Matcher {
	return &Matcher{RankThreshold: 3}
}

// MatchesAny reports whether any pattern matches within text.
func (m *Matcher) MatchesAny(patterns []TeamPattern, text string) MatchResult {
	textNorm := Normalize(text)

	// Full-name substring: "boston celtics" inside the text is definitive.
	for _, tp := range patterns {
		if tp.Distinctive && strings.Contains(tp.Pattern, " ") && strings.Contains(textNorm, tp.Pattern) {
			return MatchResult{Matched: true, Score: 100, Pattern: tp.Pattern}
		}
	}

	// Word-boundary match for distinctive patterns; "hawks" must not match
	// inside "blackhawks".
	for _, tp := range patterns {
		if tp.Distinctive && containsWord(textNorm, tp.Pattern) {
			return MatchResult{Matched: true, Score: 100, Pattern: tp.Pattern}
		}
	}

	// Non-distinctive substrings need to cover most of the text.
	for _, tp := range patterns {
		if tp.Distinctive || len(tp.Pattern) < minSubstringLength {
			continue
		}
		if strings.Contains(textNorm, tp.Pattern) {
			coverage := float64(len(tp.Pattern)) / float64(len(textNorm))
			if coverage >= minCoverageRatio {
				return MatchResult{Matched: true, Score: 100, Pattern: tp.Pattern}
			}
		}
		if strings.Contains(tp.Pattern, " ") && containsWord(textNorm, tp.Pattern) {
			return MatchResult{Matched: true, Score: 100, Pattern: tp.Pattern}
		}
	}

	// Fuzzy fallback for multi-word distinctive patterns, tolerating small
	// spelling drift.
	for _, tp := range patterns {
		if tp.Distinctive && strings.Contains(tp.Pattern, " ") {
			rank := fuzzy.RankMatchNormalizedFold(tp.Pattern, textNorm)
			if rank >= 0 && rank <= m.RankThreshold {
				return MatchResult{Matched: true, Score: 100 - rank, Pattern: tp.Pattern}
			}
		}
	}

	return MatchResult{}
}

// RankedTeam pairs a team with its match score for search results.
type RankedTeam struct {
	Team  models.Team
	Score int
}

// RankTeams filters and orders teams by how well their names match the
// query, best match first. Ties keep the input order so results stay
// deterministic.
func (m *Matcher) RankTeams(query string, teams []models.Team) []models.Team {
	queryNorm := Normalize(query)
	if queryNorm == "" {
		return nil
	}

	var ranked []RankedTeam
	for _, team := range teams {
		score := m.scoreTeam(queryNorm, team)
		if score > 0 {
			ranked = append(ranked, RankedTeam{Team: team, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	results := make([]models.Team, len(ranked))
	for i, r := range ranked {
		results[i] = r.Team
	}
	return results
}

func (m *Matcher) scoreTeam(queryNorm string, team models.Team) int {
	best := 0
	for _, tp := range GeneratePatterns(team) {
		score := 0
		switch {
		case tp.Pattern == queryNorm:
			score = 100
		case strings.Contains(tp.Pattern, queryNorm) || strings.Contains(queryNorm, tp.Pattern):
			score = 90
		default:
			rank := fuzzy.RankMatchNormalizedFold(queryNorm, tp.Pattern)
			if rank >= 0 && rank <= m.RankThreshold*2 {
				score = 80 - rank
			}
		}
		if !tp.Distinctive && score > 0 {
			score -= 10
		}
		if score > best {
			best = score
		}
	}
	return best
}

func containsWord(text, pattern string) bool {
	idx := 0
	for {
		i := strings.Index(text[idx:], pattern)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(pattern)
		startOK := start == 0 || text[start-1] == ' '
		endOK := end == len(text) || text[end] == ' '
		if startOK && endOK {
			return true
		}
		idx = start + 1
		if idx >= len(text) {
			return false
		}
	}
}
