// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/pdiddy/citeconv/pkg/types"
)

// Step is one post-processing stage applied to every parsed record. Steps
// run in a fixed order: language, source type, index status.
type Step func(types.Record) types.Record

// DetectLanguage sets the language from the script of the title: more
// Cyrillic than Latin letters means ru, more Latin means en. An empty title
// or a tie keeps the current language.
func DetectLanguage() Step {
	return func(r types.Record) types.Record {
		var cyrillic, latin int
		for _, ch := range r.Title {
			switch {
			case unicode.Is(unicode.Cyrillic, ch):
				cyrillic++
			case unicode.Is(unicode.Latin, ch):
				latin++
			}
		}
		switch {
		case cyrillic > latin:
			r.Language = types.LangRussian
		case latin > cyrillic:
			r.Language = types.LangEnglish
		}
		return r
	}
}

// InferSourceType decides the source type of a record that no matcher typed:
// a journal, volume, or issue means article, a publisher means book, a URL
// means web, and anything else gets def.
func InferSourceType(def types.SourceType) Step {
	if !def.Valid() {
		def = types.SourceBook
	}
	return func(r types.Record) types.Record {
		if r.SourceType.Valid() {
			return r
		}
		switch {
		case r.Journal != "" || r.Volume != "" || r.Issue != "":
			r.SourceType = types.SourceArticle
		case r.Publisher != "":
			r.SourceType = types.SourceBook
		case r.URL != "":
			r.SourceType = types.SourceWeb
		default:
			r.SourceType = def
		}
		return r
	}
}

// MarkIndexStatus flags records whose journal contains an entry of the
// top-tier or citation-index venue lists. Matching ignores case. Records
// without a journal are never flagged.
func MarkIndexStatus(topTier, citationIndex []string) Step {
	fold := cases.Fold()
	prepare := func(venues []string) []string {
		var out []string
		for _, v := range venues {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, fold.String(v))
			}
		}
		return out
	}
	top := prepare(topTier)
	ci := prepare(citationIndex)

	return func(r types.Record) types.Record {
		if r.Journal == "" {
			return r
		}
		journal := cases.Fold().String(r.Journal)
		r.TopTier = containsAny(journal, top)
		r.CitationIndex = containsAny(journal, ci)
		return r
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
