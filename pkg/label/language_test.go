package label

import (
	"strings"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	testCases := []struct {
		code        string
		want        Language
		wantErr     bool
		description string
	}{
		{"en", LangEN, false, "known code"},
		{"ZH", LangZH, false, "uppercase code"},
		{"Ja", LangJA, false, "mixed case code"},
		{"xx", "", true, "unknown code"},
		{"", "", true, "empty code"},
		{"english", "", true, "full language name is not a code"},
	}

	for _, tc := range testCases {
		got, err := ParseLanguage(tc.code)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: ParseLanguage(%q) succeeded, want DecodeError", tc.description, tc.code)
			} else if !strings.Contains(err.Error(), tc.code) && tc.code != "" {
				t.Errorf("%s: error %q does not name the code", tc.description, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%s: ParseLanguage(%q) = %q, %v", tc.description, tc.code, got, err)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories() {
		got, err := ParseCategory(string(cat))
		if err != nil || got != cat {
			t.Errorf("ParseCategory(%q) = %q, %v", cat, got, err)
		}
	}
	if _, err := ParseCategory("volcanic"); err == nil {
		t.Error("unknown category must fail to decode")
	}
}

func TestTagNameFallback(t *testing.T) {
	tag := &Tag{
		ID: "beach",
		Synonyms: map[Language][]string{
			LangEN: {"beach", "seaside"},
			LangZH: {"海滩"},
		},
	}

	testCases := []struct {
		lang        Language
		want        string
		description string
	}{
		{LangZH, "海滩", "first synonym of requested language"},
		{LangEN, "beach", "first synonym is canonical"},
		{LangFR, "beach", "fallback to default language"},
	}
	for _, tc := range testCases {
		if got := tag.Name(tc.lang); got != tc.want {
			t.Errorf("%s: Name(%q) = %q, want %q", tc.description, tc.lang, got, tc.want)
		}
	}

	bare := &Tag{ID: "pier"}
	if got := bare.Name(LangEN); got != "pier" {
		t.Errorf("tag with no synonyms falls back to id, got %q", got)
	}
}

func TestDestinationNameFallback(t *testing.T) {
	dest := &Destination{ID: "geoname:1", Names: map[Language]string{LangZH: "杭州"}}
	if got := dest.Name(LangZH); got != "杭州" {
		t.Errorf("Name(zh) = %q", got)
	}
	if got := dest.Name(LangFR); got != "geoname:1" {
		t.Errorf("missing name and default should fall back to id, got %q", got)
	}
}
