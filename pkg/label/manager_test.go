package label

import (
	"testing"
)

func testTag(id string, cat Category, weight float64, synonyms map[Language][]string) *Tag {
	return &Tag{ID: id, Category: cat, Weight: weight, Synonyms: synonyms}
}

func newTestManager() *Manager {
	m := NewManager()
	for _, tag := range DefaultTags() {
		m.AddTag(tag)
	}
	return m
}

func tagIDs(tags []*Tag) []string {
	ids := make([]string, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	return ids
}

func containsID(tags []*Tag, id string) bool {
	for _, t := range tags {
		if t.ID == id {
			return true
		}
	}
	return false
}

func TestSearchTagsByPrefix(t *testing.T) {
	m := newTestManager()

	testCases := []struct {
		prefix      string
		lang        Language
		limit       int
		wantIDs     []string // ids that must be present
		wantEmpty   bool
		description string
	}{
		{"bea", LangEN, 10, []string{"beach"}, false, "ASCII prefix of canonical synonym"},
		{"seas", LangEN, 10, []string{"beach"}, false, "prefix of a secondary synonym"},
		{"BEA", LangEN, 10, []string{"beach"}, false, "case-insensitive prefix"},
		{"海", LangZH, 10, []string{"beach"}, false, "CJK prefix"},
		{"ビ", LangJA, 10, []string{"beach"}, false, "Japanese prefix"},
		{"xyz", LangEN, 10, nil, true, "no synonym starts with prefix"},
		{"bea", LangKO, 10, nil, true, "language with no indexed synonyms"},
		{"bea", Language("xx"), 10, nil, true, "unknown language code is empty, not a crash"},
	}

	for _, tc := range testCases {
		got := m.SearchTagsByPrefix(tc.prefix, tc.lang, tc.limit)
		if tc.wantEmpty {
			if len(got) != 0 {
				t.Errorf("%s: SearchTagsByPrefix(%q, %q) = %v, want empty",
					tc.description, tc.prefix, tc.lang, tagIDs(got))
			}
			continue
		}
		for _, id := range tc.wantIDs {
			if !containsID(got, id) {
				t.Errorf("%s: SearchTagsByPrefix(%q, %q) = %v, missing %q",
					tc.description, tc.prefix, tc.lang, tagIDs(got), id)
			}
		}
	}
}

func TestSearchTagsByPrefixEmptyPrefix(t *testing.T) {
	m := newTestManager()

	// Every default tag has at least one en synonym, so the empty prefix
	// reaches all of them.
	got := m.SearchTagsByPrefix("", LangEN, 100)
	if len(got) != len(DefaultTags()) {
		t.Fatalf("empty prefix returned %d tags, want %d: %v",
			len(got), len(DefaultTags()), tagIDs(got))
	}

	// Truncation still applies.
	got = m.SearchTagsByPrefix("", LangEN, 2)
	if len(got) != 2 {
		t.Fatalf("empty prefix with limit 2 returned %d tags", len(got))
	}
}

func TestSearchTagsByPrefixWeightOrder(t *testing.T) {
	m := NewManager()
	m.AddTag(testTag("low", CategoryScenery, 0.5, map[Language][]string{LangEN: {"alpha"}}))
	m.AddTag(testTag("high", CategoryScenery, 2.0, map[Language][]string{LangEN: {"alphabet"}}))
	m.AddTag(testTag("mid", CategoryScenery, 1.0, map[Language][]string{LangEN: {"alpine"}}))

	got := m.SearchTagsByPrefix("alp", LangEN, 10)
	want := []string{"high", "mid", "low"}
	if len(got) != len(want) {
		t.Fatalf("got %d tags, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %q, want %q (weight-descending order)", i, got[i].ID, id)
		}
	}
}

func TestAddTagReplaceRetractsOldSynonyms(t *testing.T) {
	m := NewManager()
	m.AddTag(testTag("spa", CategoryFacility, 1.0, map[Language][]string{LangEN: {"spa", "wellness"}}))

	if got := m.SearchTagsByPrefix("well", LangEN, 10); !containsID(got, "spa") {
		t.Fatal("expected 'spa' reachable via 'well' before replacement")
	}

	// Re-add with a different synonym set and category.
	m.AddTag(testTag("spa", CategoryActivity, 1.0, map[Language][]string{LangEN: {"spa", "hot spring"}}))

	if got := m.SearchTagsByPrefix("well", LangEN, 10); len(got) != 0 {
		t.Errorf("stale synonym still indexed after replace: %v", tagIDs(got))
	}
	if got := m.SearchTagsByPrefix("hot", LangEN, 10); !containsID(got, "spa") {
		t.Error("new synonym not indexed after replace")
	}
	if got := m.TagsByCategory(CategoryFacility); len(got) != 0 {
		t.Errorf("stale category entry after replace: %v", tagIDs(got))
	}
	if got := m.TagsByCategory(CategoryActivity); !containsID(got, "spa") {
		t.Error("new category entry missing after replace")
	}
}

func TestSharedSynonymSpelling(t *testing.T) {
	m := NewManager()
	m.AddTag(testTag("sea", CategoryScenery, 1.0, map[Language][]string{LangEN: {"coast"}}))
	m.AddTag(testTag("shore", CategoryScenery, 1.0, map[Language][]string{LangEN: {"coast"}}))

	got := m.SearchTagsByPrefix("coast", LangEN, 10)
	if !containsID(got, "sea") || !containsID(got, "shore") {
		t.Fatalf("tags with identical spelling must share the trie entry, got %v", tagIDs(got))
	}

	// Retracting one must not drop the other.
	m.AddTag(testTag("sea", CategoryScenery, 1.0, map[Language][]string{LangEN: {"ocean"}}))
	got = m.SearchTagsByPrefix("coast", LangEN, 10)
	if containsID(got, "sea") || !containsID(got, "shore") {
		t.Fatalf("after replacing 'sea', got %v, want only 'shore'", tagIDs(got))
	}
}

func TestTagsByCategory(t *testing.T) {
	m := newTestManager()

	scenery := m.TagsByCategory(CategoryScenery)
	if len(scenery) != 2 || !containsID(scenery, "beach") || !containsID(scenery, "mountain") {
		t.Errorf("scenery = %v, want beach and mountain", tagIDs(scenery))
	}
	if got := m.TagsByCategory(CategoryTransport); len(got) != 0 {
		t.Errorf("unregistered category should be empty, got %v", tagIDs(got))
	}
}

func TestDestinationStore(t *testing.T) {
	m := NewManager()
	m.AddDestination(&Destination{ID: "d1", CountryCode: "FR", Tags: map[string]float64{"beach": 0.5}})

	if got := m.Destination("d1"); got == nil || got.CountryCode != "FR" {
		t.Fatalf("Destination(d1) = %+v", got)
	}
	if got := m.Destination("missing"); got != nil {
		t.Fatalf("unknown id should be nil, got %+v", got)
	}

	// Upsert is a full overwrite, not a merge.
	m.AddDestination(&Destination{ID: "d1", AdministrativeLevel: "city"})
	got := m.Destination("d1")
	if got.CountryCode != "" || got.AdministrativeLevel != "city" {
		t.Fatalf("overwrite did not replace the record: %+v", got)
	}
}

func TestStats(t *testing.T) {
	m := newTestManager()
	m.AddDestination(&Destination{ID: "d1"})

	stats := m.Stats()
	if stats.Tags != len(DefaultTags()) || stats.Destinations != 1 {
		t.Fatalf("Stats() = %+v", stats)
	}
	if len(stats.Languages) != 3 {
		t.Fatalf("default tags index en/zh/ja, got %v", stats.Languages)
	}
}
