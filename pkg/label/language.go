package label

import (
	"fmt"
	"strings"
)

// Language is an ISO 639-1 code for one of the languages the engine indexes.
// The set is closed: synonyms, descriptions and display names only exist for
// these codes, and anything else is a decode error at the boundary.
type Language string

const (
	LangZH Language = "zh"
	LangEN Language = "en"
	LangJA Language = "ja"
	LangKO Language = "ko"
	LangFR Language = "fr"
	LangES Language = "es"
	LangDE Language = "de"
)

// DefaultLanguage is the fallback used by display-name lookups.
const DefaultLanguage = LangEN

// Languages lists every supported language code.
func Languages() []Language {
	return []Language{LangZH, LangEN, LangJA, LangKO, LangFR, LangES, LangDE}
}

// Category classifies a tag. Like Language it is a closed enumeration.
type Category string

const (
	CategoryScenery   Category = "scenery"
	CategoryActivity  Category = "activity"
	CategoryCulture   Category = "culture"
	CategoryClimate   Category = "climate"
	CategoryCrowd     Category = "crowd"
	CategoryBudget    Category = "budget"
	CategoryTransport Category = "transport"
	CategoryFacility  Category = "facility"
)

// Categories lists every supported tag category.
func Categories() []Category {
	return []Category{
		CategoryScenery, CategoryActivity, CategoryCulture, CategoryClimate,
		CategoryCrowd, CategoryBudget, CategoryTransport, CategoryFacility,
	}
}

var languageSet = func() map[Language]struct{} {
	m := make(map[Language]struct{}, len(Languages()))
	for _, l := range Languages() {
		m[l] = struct{}{}
	}
	return m
}()

var categorySet = func() map[Category]struct{} {
	m := make(map[Category]struct{}, len(Categories()))
	for _, c := range Categories() {
		m[c] = struct{}{}
	}
	return m
}()

// DecodeError reports an unknown language or category code encountered while
// coercing boundary input or importing tag data.
type DecodeError struct {
	Field string // "language" or "category"
	Code  string // the offending code
	TagID string // set when the error occurred inside a tag record
}

func (e *DecodeError) Error() string {
	if e.TagID != "" {
		return fmt.Sprintf("unknown %s code %q in tag %q", e.Field, e.Code, e.TagID)
	}
	return fmt.Sprintf("unknown %s code %q", e.Field, e.Code)
}

// ParseLanguage coerces a raw code into a Language. The comparison is
// case-insensitive; unknown codes yield a DecodeError.
func ParseLanguage(code string) (Language, error) {
	l := Language(strings.ToLower(code))
	if _, ok := languageSet[l]; !ok {
		return "", &DecodeError{Field: "language", Code: code}
	}
	return l, nil
}

// ParseCategory coerces a raw code into a Category. Unknown codes yield a
// DecodeError.
func ParseCategory(code string) (Category, error) {
	c := Category(strings.ToLower(code))
	if _, ok := categorySet[c]; !ok {
		return "", &DecodeError{Field: "category", Code: code}
	}
	return c, nil
}
