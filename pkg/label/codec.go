package label

import (
	"encoding/json"
	"fmt"
	"os"
)

// tagRecord is the persisted shape of one tag. Language and category codes
// are kept as plain strings on disk and coerced through the closed enums on
// import.
type tagRecord struct {
	ID          string              `json:"id"`
	Category    string              `json:"category"`
	Synonyms    map[string][]string `json:"synonyms"`
	Description map[string]string   `json:"description"`
	Weight      *float64            `json:"weight"`
	ParentID    *string             `json:"parent_id"`
}

// tagDocument is the top-level export document, keyed by tag id.
type tagDocument struct {
	Tags map[string]tagRecord `json:"tags"`
}

// ExportTags writes every registered tag to path as an indented JSON
// document. Map keys marshal in sorted order, so exporting the same registry
// twice yields identical bytes.
func (m *Manager) ExportTags(path string) error {
	m.mu.RLock()
	doc := tagDocument{Tags: make(map[string]tagRecord, len(m.tags))}
	for id, tag := range m.tags {
		weight := tag.Weight
		rec := tagRecord{
			ID:          tag.ID,
			Category:    string(tag.Category),
			Synonyms:    make(map[string][]string, len(tag.Synonyms)),
			Description: make(map[string]string, len(tag.Description)),
			Weight:      &weight,
		}
		if tag.ParentID != "" {
			parent := tag.ParentID
			rec.ParentID = &parent
		}
		for lang, syns := range tag.Synonyms {
			rec.Synonyms[string(lang)] = append([]string(nil), syns...)
		}
		for lang, desc := range tag.Description {
			rec.Description[string(lang)] = desc
		}
		doc.Tags[id] = rec
	}
	m.mu.RUnlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tag export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing tag export to %s: %w", path, err)
	}
	return nil
}

// ImportTags reads a tag document from path and adds every record through
// AddTag, so the registry's replace semantics apply; existing tags are kept
// unless the file overwrites their ids. The policy is strict: the first
// malformed record (unknown category or language code) aborts the import with
// a DecodeError, leaving only the records decoded before it registered.
// Each record is fully decoded before it is added, so a failure never leaves
// a tag's synonyms indexed without its record.
func (m *Manager) ImportTags(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading tag import from %s: %w", path, err)
	}

	var doc tagDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing tag import from %s: %w", path, err)
	}

	for id, rec := range doc.Tags {
		tag, err := decodeTagRecord(id, rec)
		if err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		m.AddTag(tag)
	}
	return nil
}

// decodeTagRecord coerces one persisted record into a Tag, validating every
// enum code before anything touches the registry.
func decodeTagRecord(id string, rec tagRecord) (*Tag, error) {
	if rec.ID == "" {
		rec.ID = id
	}

	category, err := ParseCategory(rec.Category)
	if err != nil {
		if de, ok := err.(*DecodeError); ok {
			de.TagID = rec.ID
		}
		return nil, err
	}

	tag := &Tag{
		ID:       rec.ID,
		Category: category,
		Weight:   1.0,
	}
	if rec.Weight != nil {
		tag.Weight = *rec.Weight
	}
	if rec.ParentID != nil {
		tag.ParentID = *rec.ParentID
	}

	if len(rec.Synonyms) > 0 {
		tag.Synonyms = make(map[Language][]string, len(rec.Synonyms))
		for code, syns := range rec.Synonyms {
			lang, err := ParseLanguage(code)
			if err != nil {
				if de, ok := err.(*DecodeError); ok {
					de.TagID = rec.ID
				}
				return nil, err
			}
			tag.Synonyms[lang] = append([]string(nil), syns...)
		}
	}
	if len(rec.Description) > 0 {
		tag.Description = make(map[Language]string, len(rec.Description))
		for code, desc := range rec.Description {
			lang, err := ParseLanguage(code)
			if err != nil {
				if de, ok := err.(*DecodeError); ok {
					de.TagID = rec.ID
				}
				return nil, err
			}
			tag.Description[lang] = desc
		}
	}
	return tag, nil
}
