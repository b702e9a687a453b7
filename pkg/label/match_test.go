package label

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatchScoreZeroCases(t *testing.T) {
	m := newTestManager()

	testCases := []struct {
		dest        *Destination
		queries     []string
		description string
	}{
		{&Destination{ID: "d"}, []string{"beach"}, "destination with no tags"},
		{&Destination{ID: "d", Tags: map[string]float64{"beach": 1.0}}, nil, "empty query list"},
		{&Destination{ID: "d", Tags: map[string]float64{"ghost": 1.0}}, []string{"beach"}, "only dangling tag references"},
	}

	for _, tc := range testCases {
		if got := m.MatchScore(tc.dest, tc.queries, LangEN); got != 0.0 {
			t.Errorf("%s: MatchScore = %v, want 0.0", tc.description, got)
		}
	}
}

func TestMatchScoreExactBeatsSubstring(t *testing.T) {
	m := newTestManager()
	dest := &Destination{ID: "d", Tags: map[string]float64{"beach": 0.5}}

	exact := m.MatchScore(dest, []string{"beach"}, LangEN)
	substring := m.MatchScore(dest, []string{"bea"}, LangEN)

	// Exact: coverage 1, average 0.5*2.0 -> 0.4 + 0.6 = 1.0
	if !almostEqual(exact, 1.0) {
		t.Errorf("exact match score = %v, want 1.0", exact)
	}
	// Substring: coverage 1, average 0.5 -> 0.4 + 0.3 = 0.7
	if !almostEqual(substring, 0.7) {
		t.Errorf("substring match score = %v, want 0.7", substring)
	}
	if exact <= substring {
		t.Errorf("exact (%v) must strictly exceed substring (%v)", exact, substring)
	}
}

func TestMatchScoreCompositeFormula(t *testing.T) {
	m := newTestManager()
	dest := &Destination{
		ID:   "d",
		Tags: map[string]float64{"historical": 0.9, "mountain": 0.7},
	}

	// "historical" and "mountain" hit exact synonyms, "family" hits nothing:
	// coverage 2/3, average (1.8+1.4)/3. The exact-match doubling makes each
	// matched term contribute relevance*2.
	got := m.MatchScore(dest, []string{"historical", "mountain", "family"}, LangEN)
	want := 0.4*(2.0/3.0) + 0.6*((0.9*2.0+0.7*2.0)/3.0)
	if !almostEqual(got, want) {
		t.Errorf("MatchScore = %v, want %v", got, want)
	}
}

func TestMatchScoreSubstringScenario(t *testing.T) {
	m := newTestManager()
	dest := &Destination{
		ID:   "d",
		Tags: map[string]float64{"historical": 0.9, "mountain": 0.7},
	}

	// With non-exact terms the relevances pass through undoubled:
	// coverage 2/3, average (0.9+0.7)/3 = 0.5333, score = 0.5867.
	got := m.MatchScore(dest, []string{"histor", "mount", "family"}, LangEN)
	want := 0.4*(2.0/3.0) + 0.6*((0.9+0.7)/3.0)
	if !almostEqual(got, want) {
		t.Errorf("MatchScore = %v, want %v", got, want)
	}
}

func TestMatchScoreNoLanguageFallback(t *testing.T) {
	m := newTestManager()
	dest := &Destination{ID: "d", Tags: map[string]float64{"beach": 1.0}}

	// Korean has no synonyms for any default tag; the scoring must not fall
	// back to another language.
	if got := m.MatchScore(dest, []string{"beach"}, LangKO); got != 0.0 {
		t.Errorf("MatchScore in unindexed language = %v, want 0.0", got)
	}
}

func TestMatchScoreCanExceedOne(t *testing.T) {
	m := newTestManager()
	dest := &Destination{ID: "d", Tags: map[string]float64{"beach": 1.0}}

	// Exact match with relevance 1.0: 0.4*1 + 0.6*2.0 = 1.6.
	got := m.MatchScore(dest, []string{"beach"}, LangEN)
	if !almostEqual(got, 1.6) {
		t.Errorf("MatchScore = %v, want 1.6 (the score is not a probability)", got)
	}
}

func TestSearchDestinationsByTags(t *testing.T) {
	m := newTestManager()
	for _, dest := range SampleDestinations() {
		m.AddDestination(dest)
	}

	results := m.SearchDestinationsByTags([]string{"historical", "mountain"}, LangEN, 0.2, 20)
	if len(results) == 0 {
		t.Fatal("expected matches for historical+mountain")
	}

	// Hangzhou carries both tags; nothing can outscore it here.
	if results[0].Destination.ID != "geoname:1808926" {
		t.Errorf("top result = %s, want Hangzhou", results[0].Destination.ID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not in descending score order at %d", i)
		}
	}

	// min_score filters, limit truncates.
	all := m.SearchDestinationsByTags([]string{"historical"}, LangEN, 0.0, 0)
	strict := m.SearchDestinationsByTags([]string{"historical"}, LangEN, 10.0, 20)
	if len(strict) != 0 {
		t.Errorf("threshold above any possible score kept %d results", len(strict))
	}
	capped := m.SearchDestinationsByTags([]string{"historical"}, LangEN, 0.0, 2)
	if len(all) < 3 || len(capped) != 2 {
		t.Errorf("limit truncation: all=%d capped=%d", len(all), len(capped))
	}
}
