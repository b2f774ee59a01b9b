package models

// CategoryRecord is one brand or album entry of a static catalog file.
// Exactly one of Brand or Album is set.
type CategoryRecord struct {
	Brand     string           `json:"brand,omitempty" yaml:"brand,omitempty"`
	Album     string           `json:"album,omitempty" yaml:"album,omitempty"`
	Artist    string           `json:"artist,omitempty" yaml:"artist,omitempty"`
	Tags      []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
	Gradients []GradientRecord `json:"gradients" yaml:"gradients"`
}

type GradientRecord struct {
	Name   string   `json:"name" yaml:"name"`
	Colors []string `json:"colors" yaml:"colors"`
	Tags   []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}
