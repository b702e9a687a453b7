package label

// Tag is a multilingual, categorized label attachable to destinations.
// The id is immutable once registered; re-adding the same id replaces the
// whole record. Synonym lists are ordered: the first entry is the canonical
// display name for that language.
type Tag struct {
	ID          string                `json:"id"`
	Category    Category              `json:"category"`
	Synonyms    map[Language][]string `json:"synonyms,omitempty"`
	Description map[Language]string   `json:"description,omitempty"`
	Weight      float64               `json:"weight"`
	ParentID    string                `json:"parent_id,omitempty"`
}

// Name returns the canonical display name for lang, falling back to the
// default language and finally to the tag id. The prefix index never applies
// this fallback; it is a presentation helper only.
func (t *Tag) Name(lang Language) string {
	if syns := t.Synonyms[lang]; len(syns) > 0 {
		return syns[0]
	}
	if syns := t.Synonyms[DefaultLanguage]; len(syns) > 0 {
		return syns[0]
	}
	return t.ID
}

// AllNames returns every synonym for lang, nil when the tag has none.
func (t *Tag) AllNames(lang Language) []string {
	return t.Synonyms[lang]
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Destination is a place that can be matched against tag queries. Tags maps
// tag id to a relevance score; scores are expected in [0,1] but are not
// enforced, and ids that resolve to no registered tag are ignored by the
// matching engine rather than treated as errors.
type Destination struct {
	ID                  string              `json:"id"`
	Names               map[Language]string `json:"names,omitempty"`
	Coordinates         *Coordinates        `json:"coordinates,omitempty"`
	CountryCode         string              `json:"country_code,omitempty"`
	AdministrativeLevel string              `json:"administrative_level,omitempty"`
	Tags                map[string]float64  `json:"tags,omitempty"`
	Metadata            map[string]any      `json:"metadata,omitempty"`
}

// Name returns the display name for lang, falling back to the default
// language and finally to the destination id.
func (d *Destination) Name(lang Language) string {
	if name := d.Names[lang]; name != "" {
		return name
	}
	if name := d.Names[DefaultLanguage]; name != "" {
		return name
	}
	return d.ID
}
