// Package label implements the destination-tag indexing and matching engine:
// a registry of multilingual tags, per-language prefix indexes over their
// synonyms, a category index, a destination store, and the relevance scoring
// used to rank destinations against free-text tag queries.
//
// The engine is in-memory and synchronous. A single Manager is safe for
// concurrent use: one reader/writer lock guards all state, so hosts get
// "one writer or many readers" without any further coordination.
package label

import (
	"sort"
	"strings"
	"sync"
)

// Manager owns the tag registry, its secondary indexes, and the destination
// store. The registry is the single source of truth for tag content; the
// prefix and category indexes hold ids only and are maintained on every
// AddTag.
type Manager struct {
	mu sync.RWMutex

	tags         map[string]*Tag
	destinations map[string]*Destination
	prefixes     *prefixIndex
	categories   map[Category]idSet

	// indexedBy remembers the trie keys and category each tag id currently
	// occupies, so AddTag can retract a previous version on re-add instead of
	// leaving stale entries behind.
	indexedBy map[string][]synonymKey
	inCat     map[string]Category
}

// NewManager returns an empty engine.
func NewManager() *Manager {
	return &Manager{
		tags:         make(map[string]*Tag),
		destinations: make(map[string]*Destination),
		prefixes:     newPrefixIndex(),
		categories:   make(map[Category]idSet),
		indexedBy:    make(map[string][]synonymKey),
		inCat:        make(map[string]Category),
	}
}

// AddTag inserts or replaces a tag by id. Every (language, synonym) pair is
// pushed into that language's prefix index and the id is recorded under the
// tag's category. Replacing an existing id first retracts the old version's
// index entries, so the indexes never accumulate stale synonyms.
func (m *Manager) AddTag(tag *Tag) {
	if tag == nil || tag.ID == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.retractLocked(tag.ID)

	m.tags[tag.ID] = tag

	ids, ok := m.categories[tag.Category]
	if !ok {
		ids = idSet{}
		m.categories[tag.Category] = ids
	}
	ids[tag.ID] = struct{}{}
	m.inCat[tag.ID] = tag.Category

	var keys []synonymKey
	for lang, syns := range tag.Synonyms {
		for _, syn := range syns {
			lowered := strings.ToLower(syn)
			m.prefixes.insert(lang, lowered, tag.ID)
			keys = append(keys, synonymKey{lang: lang, text: lowered})
		}
	}
	m.indexedBy[tag.ID] = keys
}

// retractLocked removes every index entry the current version of id holds.
// Callers must hold the write lock.
func (m *Manager) retractLocked(id string) {
	for _, key := range m.indexedBy[id] {
		m.prefixes.remove(key.lang, key.text, id)
	}
	delete(m.indexedBy, id)

	if cat, ok := m.inCat[id]; ok {
		if ids := m.categories[cat]; ids != nil {
			delete(ids, id)
		}
		delete(m.inCat, id)
	}
}

// Tag returns the registered tag for id, or nil when unknown.
func (m *Manager) Tag(id string) *Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tags[id]
}

// TagCount reports how many tags are registered.
func (m *Manager) TagCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tags)
}

// SearchTagsByPrefix returns up to limit tags with a synonym in lang that
// starts with prefix, case-insensitively, ordered by descending weight with
// ties broken by id. An unknown or unindexed language and an unmatched prefix
// both yield an empty slice; the empty prefix reaches every tag with a
// synonym in lang.
func (m *Manager) SearchTagsByPrefix(prefix string, lang Language, limit int) []*Tag {
	lowered := strings.ToLower(prefix)

	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := m.prefixes.collect(lang, lowered)
	tags := make([]*Tag, 0, len(ids))
	for id := range ids {
		if tag, ok := m.tags[id]; ok {
			tags = append(tags, tag)
		}
	}

	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Weight != tags[j].Weight {
			return tags[i].Weight > tags[j].Weight
		}
		return tags[i].ID < tags[j].ID
	})

	if limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

// TagsByCategory returns every tag registered under category, in unspecified
// order. Unknown categories yield an empty slice.
func (m *Manager) TagsByCategory(category Category) []*Tag {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := m.categories[category]
	tags := make([]*Tag, 0, len(ids))
	for id := range ids {
		if tag, ok := m.tags[id]; ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// IndexedLanguages reports which languages currently have a prefix index.
func (m *Manager) IndexedLanguages() []Language {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.prefixes.languages()
}

// Stats summarizes the engine state for status surfaces.
type Stats struct {
	Tags         int
	Destinations int
	Languages    []Language
}

// Stats returns counts and indexed languages.
func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Stats{
		Tags:         len(m.tags),
		Destinations: len(m.destinations),
		Languages:    m.prefixes.languages(),
	}
}
