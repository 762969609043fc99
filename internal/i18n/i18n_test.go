package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		want   language.Tag
	}{
		{"exact english", "en", language.English},
		{"regional english", "en-US", language.English},
		{"taiwan", "zh-TW", language.TraditionalChinese},
		{"hant", "zh-Hant", language.TraditionalChinese},
		{"unsupported falls back", "fr", language.English},
		{"garbage falls back", "!!", language.English},
		{"empty falls back", "", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.locale))
		})
	}
}

func TestPathPrefix(t *testing.T) {
	assert.Equal(t, "", PathPrefix(language.English))
	assert.Equal(t, "/zh-TW", PathPrefix(language.TraditionalChinese))
}

func TestLookup_Deterministic(t *testing.T) {
	first := Lookup(language.TraditionalChinese, "site.title")
	assert.NotEmpty(t, first)
	assert.Equal(t, first, Lookup(language.TraditionalChinese, "site.title"))
	assert.NotEqual(t, first, Lookup(language.English, "site.title"))
}

func TestLookup_FallsBackToEnglish(t *testing.T) {
	// A key present in English only must still resolve for zh-Hant.
	en["test.only.english"] = "english only"
	defer delete(en, "test.only.english")

	assert.Equal(t, "english only", Lookup(language.TraditionalChinese, "test.only.english"))
}

func TestLookup_UnknownKeyEchoesKey(t *testing.T) {
	assert.Equal(t, "no.such.key", Lookup(language.English, "no.such.key"))
}

func TestEveryKeyTranslated(t *testing.T) {
	for key := range en {
		if _, ok := zhHant[key]; !ok {
			t.Errorf("key %q has no zh-Hant translation", key)
		}
	}
	for key := range zhHant {
		if _, ok := en[key]; !ok {
			t.Errorf("key %q exists in zh-Hant but not in English", key)
		}
	}
}
