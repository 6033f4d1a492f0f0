// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ParserConfig holds settings for the parsing pipeline.
type ParserConfig struct {
	// DefaultLanguage is assigned before language detection runs and kept
	// when the title is empty or the script counts tie (default "ru").
	DefaultLanguage Language `json:"default_language" yaml:"default_language" mapstructure:"default_language"`

	// DefaultSourceType is used when neither a matcher nor inference decides
	// the type (default "book").
	DefaultSourceType SourceType `json:"default_source_type" yaml:"default_source_type" mapstructure:"default_source_type"`

	// TopTierVenues lists journals of the national top-tier list.
	TopTierVenues []string `json:"top_tier_venues" yaml:"top_tier_venues" mapstructure:"top_tier_venues"`

	// CitationIndexVenues lists journals of the national citation-index list.
	CitationIndexVenues []string `json:"citation_index_venues" yaml:"citation_index_venues" mapstructure:"citation_index_venues"`
}

// BatchConfig holds settings for batch conversion.
type BatchConfig struct {
	// Workers bounds the number of citations converted concurrently.
	// Zero or a negative value converts sequentially.
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// EngineConfig groups all configuration for the engine.
type EngineConfig struct {
	Parser ParserConfig `json:"parser" yaml:"parser" mapstructure:"parser"`
	Batch  BatchConfig  `json:"batch" yaml:"batch" mapstructure:"batch"`

	// VenuesDir optionally names a directory with top-tier.txt and
	// citation-index.txt overriding the venue lists.
	VenuesDir string `json:"venues_dir" yaml:"venues_dir" mapstructure:"venues_dir"`
}

// DefaultTopTierVenues is the built-in national top-tier journal list.
var DefaultTopTierVenues = []string{
	"Вестник МГУ",
	"Известия РАН",
	"Доклады Академии наук",
	"Вопросы философии",
	"Вопросы экономики",
}

// DefaultCitationIndexVenues is the built-in national citation-index list.
var DefaultCitationIndexVenues = []string{
	"Научный журнал",
	"Системный администратор",
	"Прикладная информатика",
	"Вестник СПбГУ",
	"Вестник МГТУ",
}

// DefaultWorkers is the default batch concurrency.
const DefaultWorkers = 4

// DefaultParserConfig returns the parser configuration with built-in defaults.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		DefaultLanguage:     LangRussian,
		DefaultSourceType:   SourceBook,
		TopTierVenues:       append([]string(nil), DefaultTopTierVenues...),
		CitationIndexVenues: append([]string(nil), DefaultCitationIndexVenues...),
	}
}

// DefaultEngineConfig returns the engine configuration with built-in defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Parser: DefaultParserConfig(),
		Batch:  BatchConfig{Workers: DefaultWorkers},
	}
}

// WithDefaults fills zero-valued settings of c from the built-in defaults.
func (c ParserConfig) WithDefaults() ParserConfig {
	if c.DefaultLanguage != LangEnglish {
		c.DefaultLanguage = LangRussian
	}
	if !c.DefaultSourceType.Valid() {
		c.DefaultSourceType = SourceBook
	}
	if c.TopTierVenues == nil {
		c.TopTierVenues = append([]string(nil), DefaultTopTierVenues...)
	}
	if c.CitationIndexVenues == nil {
		c.CitationIndexVenues = append([]string(nil), DefaultCitationIndexVenues...)
	}
	return c
}
