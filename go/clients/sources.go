package clients

// ExternalSource represents different external data providers
type ExternalSource string

const (
	// ExternalSourceESPN represents the ESPN site API
	ExternalSourceESPN ExternalSource = "espn"

	// ExternalSourceSportsDB represents TheSportsDB API
	ExternalSourceSportsDB ExternalSource = "sportsdb"
)

// ExternalSourceConfig holds configuration for external sources
type ExternalSourceConfig struct {
	Source      ExternalSource `json:"source"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Priority    int            `json:"priority"` // Lower priority values are tried first
	Active      bool           `json:"active"`
}

// GetExternalSources returns all configured external sources
func GetExternalSources() map[ExternalSource]ExternalSourceConfig {
	return map[ExternalSource]ExternalSourceConfig{
		ExternalSourceESPN: {
			Source:      ExternalSourceESPN,
			Name:        "ESPN",
			Description: "ESPN public site API",
			Priority:    1,
			Active:      true,
		},
		ExternalSourceSportsDB: {
			Source:      ExternalSourceSportsDB,
			Name:        "TheSportsDB",
			Description: "TheSportsDB community API",
			Priority:    2,
			Active:      true,
		},
	}
}

// ValidateExternalSource checks if the source is valid
func ValidateExternalSource(source ExternalSource) bool {
	sources := GetExternalSources()
	_, exists := sources[source]
	return exists
}

// GetActiveExternalSources returns only active external sources
func GetActiveExternalSources() map[ExternalSource]ExternalSourceConfig {
	all := GetExternalSources()
	active := make(map[ExternalSource]ExternalSourceConfig)

	for source, config := range all {
		if config.Active {
			active[source] = config
		}
	}

	return active
}
