package models

// Team represents a sports team as reported by a single provider.
// ID is only meaningful together with Provider; ids are never assumed
// unique or comparable across providers.
type Team struct {
	ID           string  `json:"id"`
	Provider     string  `json:"provider"`
	Name         string  `json:"name"`
	ShortName    string  `json:"short_name"`
	Abbreviation string  `json:"abbreviation"`
	League       string  `json:"league"`
	Sport        string  `json:"sport"`
	LogoURL      *string `json:"logo_url,omitempty"`
	Color        *string `json:"color,omitempty"` // hex without leading '#', lowercase
}
