package federation

import (
	"github.com/mcdev12/sportsfed/go/internal/fuzzy"
	"github.com/mcdev12/sportsfed/go/internal/models"
)

// mergeKey identifies the same real-world team across providers. Raw ids
// are provider-scoped and never comparable, so the identity is the
// normalized team name plus league.
func mergeKey(team models.Team) string {
	return fuzzy.Normalize(team.Name) + "|" + team.League
}

// mergeTeams unions team rosters from several providers, higher priority
// first. On conflict the higher-priority provider's fields win field by
// field where present; absent fields are filled from the lower-priority
// record. This is a partial-field merge, never a whole-record override.
func mergeTeams(groups [][]models.Team) []models.Team {
	var merged []models.Team
	index := make(map[string]int)

	for _, group := range groups {
		for _, team := range group {
			key := mergeKey(team)
			at, exists := index[key]
			if !exists {
				index[key] = len(merged)
				merged = append(merged, team)
				continue
			}
			fillMissingFields(&merged[at], team)
		}
	}

	return merged
}

// fillMissingFields copies fields from donor into target only where the
// target has no value.
func fillMissingFields(target *models.Team, donor models.Team) {
	if target.ShortName == "" {
		target.ShortName = donor.ShortName
	}
	if target.Abbreviation == "" {
		target.Abbreviation = donor.Abbreviation
	}
	if target.Sport == "" {
		target.Sport = donor.Sport
	}
	if target.LogoURL == nil {
		target.LogoURL = donor.LogoURL
	}
	if target.Color == nil {
		target.Color = donor.Color
	}
}
