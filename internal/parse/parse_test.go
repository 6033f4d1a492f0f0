// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/citeconv/pkg/types"
)

// --- national style ---

func TestParseNationalBook(t *testing.T) {
	text := "Иванов А.В., Петров В.М. Название книги. М.: Издательство, 2022. 300 с."
	r := Parse(text, types.StyleAuto)

	assert.Equal(t, []string{"Иванов А.В.", "Петров В.М."}, r.Authors)
	assert.Equal(t, "Название книги", r.Title)
	assert.Equal(t, "М", r.City)
	assert.Equal(t, "Издательство", r.Publisher)
	assert.Equal(t, "2022", r.Year)
	assert.Equal(t, "300", r.Pages)
	assert.Equal(t, types.SourceBook, r.SourceType)
	assert.Equal(t, types.LangRussian, r.Language)
	assert.Equal(t, text, r.RawText)
}

func TestParseNationalBookWithEditionAndSubtitle(t *testing.T) {
	text := "Кнут Д.Э. Искусство программирования : основные алгоритмы. 3-е изд. М.: Вильямс, 2019. 720 с."
	r := Parse(text, types.StyleNational)

	assert.Equal(t, []string{"Кнут Д.Э."}, r.Authors)
	assert.Equal(t, "Искусство программирования", r.Title)
	assert.Equal(t, "основные алгоритмы", r.Subtitle)
	assert.Equal(t, "3", r.Edition)
	assert.Equal(t, "М", r.City)
	assert.Equal(t, "Вильямс", r.Publisher)
	assert.Equal(t, "2019", r.Year)
	assert.Equal(t, "720", r.Pages)
	assert.Equal(t, types.SourceBook, r.SourceType)
}

func TestParseNationalArticle(t *testing.T) {
	text := "Сидоров С.И. Новые методы анализа // Вестник науки. 2021. Т. 10. № 2. С. 15-28."
	r := Parse(text, types.StyleAuto)

	assert.Equal(t, []string{"Сидоров С.И."}, r.Authors)
	assert.Equal(t, "Новые методы анализа", r.Title)
	assert.Equal(t, "Вестник науки", r.Journal)
	assert.Equal(t, "2021", r.Year)
	assert.Equal(t, "10", r.Volume)
	assert.Equal(t, "2", r.Issue)
	assert.Equal(t, "15–28", r.Pages)
	assert.Equal(t, types.SourceArticle, r.SourceType)
}

func TestParseNationalCollection(t *testing.T) {
	text := "Иванов И.И. Анализ данных // Материалы междунар. конф. «Информатика» / под ред. А.А. Петрова. М.: Наука, 2019. С. 10-15."
	r := Parse(text, types.StyleNational)

	assert.Equal(t, []string{"Иванов И.И."}, r.Authors)
	assert.Equal(t, "Анализ данных", r.Title)
	assert.Equal(t, "Материалы междунар. конф. «Информатика»", r.Journal)
	assert.Equal(t, "под ред. А.А. Петрова", r.Extra[types.ExtraEditors])
	assert.Equal(t, "М", r.City)
	assert.Equal(t, "Наука", r.Publisher)
	assert.Equal(t, "2019", r.Year)
	assert.Equal(t, "10–15", r.Pages)
	assert.Equal(t, types.SourceConference, r.SourceType)
}

func TestParseNationalWeb(t *testing.T) {
	text := "Документация Go [Электронный ресурс]. 2023. URL: https://go.dev/doc (дата обращения: 01.02.2024)."
	r := Parse(text, types.StyleAuto)

	assert.Empty(t, r.Authors)
	assert.Equal(t, "Документация Go", r.Title)
	assert.Equal(t, "2023", r.Year)
	assert.Equal(t, "https://go.dev/doc", r.URL)
	assert.Equal(t, "01.02.2024", r.AccessDate)
	assert.Equal(t, types.SourceWeb, r.SourceType)
	assert.Equal(t, types.LangRussian, r.Language)
}

func TestParseNationalThesis(t *testing.T) {
	text := "Петров П.П. Методы анализа данных : дис. ... канд. техн. наук. М., 2020. 150 с."
	r := Parse(text, types.StyleAuto)

	assert.Equal(t, []string{"Петров П.П."}, r.Authors)
	assert.Equal(t, "Методы анализа данных", r.Title)
	assert.Equal(t, "канд. техн. наук", r.Extra[types.ExtraDegree])
	assert.Empty(t, r.Extra[types.ExtraAbstract])
	assert.Equal(t, "М", r.City)
	assert.Equal(t, "2020", r.Year)
	assert.Equal(t, "150", r.Pages)
	assert.Equal(t, types.SourceThesis, r.SourceType)
}

func TestParseConjunctionAuthorLists(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		authors []string
		title   string
		typ     types.SourceType
	}{
		{
			name:    "и between article authors",
			text:    "Иванов А.В. и Петров В.М. Статья // Вестник МГУ. 2020. Т. 5, № 3. С. 45-50.",
			authors: []string{"Иванов А.В.", "Петров В.М."},
			title:   "Статья",
			typ:     types.SourceArticle,
		},
		{
			name:    "and between book authors",
			text:    "Smith J. and Doe A. Title of book. London: Press, 2020.",
			authors: []string{"Smith J.", "Doe A."},
			title:   "Title of book",
			typ:     types.SourceBook,
		},
		{
			name:    "ampersand between book authors",
			text:    "Иванов А.В. & Петров В.М. Название книги. М.: Наука, 2020.",
			authors: []string{"Иванов А.В.", "Петров В.М."},
			title:   "Название книги",
			typ:     types.SourceBook,
		},
		{
			name:    "comma then и",
			text:    "Иванов А.В., Петров В.М. и Сидоров С.С. Книга. М.: Наука, 2020.",
			authors: []string{"Иванов А.В.", "Петров В.М.", "Сидоров С.С."},
			title:   "Книга",
			typ:     types.SourceBook,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Parse(tt.text, types.StyleNational)
			require.Len(t, r.Authors, len(tt.authors))
			assert.Equal(t, tt.authors, r.Authors)
			assert.Equal(t, tt.title, r.Title)
			assert.Equal(t, tt.typ, r.SourceType)
		})
	}
}

func TestParseNationalArticleWithPeriodBeforeSlashes(t *testing.T) {
	r := Parse("Сидоров С.И. Новые методы анализа. // Вестник науки. 2021. Т. 10. № 2. С. 15-28.", types.StyleNational)

	assert.Equal(t, []string{"Сидоров С.И."}, r.Authors)
	assert.Equal(t, "Новые методы анализа", r.Title)
	assert.Equal(t, "Вестник науки", r.Journal)
	assert.Equal(t, "10", r.Volume)
	assert.Equal(t, types.SourceArticle, r.SourceType)
}

// --- numeric style ---

func TestParseNumericArticle(t *testing.T) {
	text := `A. B. Johnson and C. D. Wilson, "Security Analysis of IoT Protocols," IEEE Trans. Network Security, vol. 35, no. 2, pp. 112-125, 2022.`
	r := Parse(text, types.StyleAuto)

	assert.Equal(t, []string{"A. B. Johnson", "C. D. Wilson"}, r.Authors)
	assert.Equal(t, "Security Analysis of IoT Protocols", r.Title)
	assert.Equal(t, "IEEE Trans. Network Security", r.Journal)
	assert.Equal(t, "35", r.Volume)
	assert.Equal(t, "2", r.Issue)
	assert.Equal(t, "112–125", r.Pages)
	assert.Equal(t, "2022", r.Year)
	assert.Equal(t, types.SourceArticle, r.SourceType)
	assert.Equal(t, types.LangEnglish, r.Language)
}

func TestParseNumericConference(t *testing.T) {
	text := `[3] J. Smith, "Deep learning for parsing," in Proc. Int. Conf. Machine Learning, Boston, 2020, pp. 45-52.`
	res := New(types.ParserConfig{}, nil).ParseResult(text, types.StyleAuto)
	r := res.Record

	assert.Equal(t, types.StyleNumeric, res.Style)
	assert.Equal(t, "numeric.quoted", res.Matcher)
	assert.Equal(t, []string{"J. Smith"}, r.Authors)
	assert.Equal(t, "Deep learning for parsing", r.Title)
	assert.Equal(t, "Proc. Int. Conf. Machine Learning", r.Journal)
	assert.Equal(t, "Boston", r.City)
	assert.Equal(t, "2020", r.Year)
	assert.Equal(t, "45–52", r.Pages)
	assert.Equal(t, types.SourceConference, r.SourceType)
}

func TestParseNumericBook(t *testing.T) {
	text := `A. Author, "Book Title," New York, NY, USA: Wiley, 2018.`
	r := Parse(text, types.StyleNumeric)

	assert.Equal(t, []string{"A. Author"}, r.Authors)
	assert.Equal(t, "Book Title", r.Title)
	assert.Equal(t, "New York", r.City)
	assert.Equal(t, "NY, USA", r.Extra[types.ExtraCountry])
	assert.Equal(t, "Wiley", r.Publisher)
	assert.Equal(t, "2018", r.Year)
	assert.Equal(t, types.SourceBook, r.SourceType)
}

func TestParseNumericThesis(t *testing.T) {
	text := `J. Doe, "Citation parsing at scale," Ph.D. dissertation, Boston, 2019.`
	r := Parse(text, types.StyleAuto)

	assert.Equal(t, []string{"J. Doe"}, r.Authors)
	assert.Equal(t, "Citation parsing at scale", r.Title)
	assert.Equal(t, "Ph.D.", r.Extra[types.ExtraDegree])
	assert.Equal(t, "Boston", r.City)
	assert.Equal(t, "2019", r.Year)
	assert.Equal(t, types.SourceThesis, r.SourceType)
}

func TestParseNumericWeb(t *testing.T) {
	text := `Go Team, "Effective Go," 2023. [Online]. Available: https://go.dev/doc/effective_go, Accessed on: 01.02.2024.`
	r := Parse(text, types.StyleNumeric)

	assert.Equal(t, []string{"Go Team"}, r.Authors)
	assert.Equal(t, "Effective Go", r.Title)
	assert.Equal(t, "2023", r.Year)
	assert.Equal(t, "https://go.dev/doc/effective_go", r.URL)
	assert.Equal(t, "01.02.2024", r.AccessDate)
	assert.Equal(t, types.SourceWeb, r.SourceType)
}

func TestParseNumericUnquotedArticle(t *testing.T) {
	text := "A. B. Johnson, Security of protocols, Journal of Networks, vol. 12, no. 3, pp. 1-9, 2015."
	res := New(types.ParserConfig{}, nil).ParseResult(text, types.StyleNumeric)

	assert.Equal(t, "numeric.article", res.Matcher)
	assert.Equal(t, "Security of protocols", res.Record.Title)
	assert.Equal(t, "Journal of Networks", res.Record.Journal)
	assert.Equal(t, "12", res.Record.Volume)
	assert.Equal(t, "3", res.Record.Issue)
	assert.Equal(t, "1–9", res.Record.Pages)
	assert.Equal(t, "2015", res.Record.Year)
}

// --- fallback and edge cases ---

func TestParseEmpty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		r := Parse(text, types.StyleAuto)
		assert.Equal(t, text, r.RawText)
		assert.Empty(t, r.Authors)
		assert.Empty(t, r.Title)
		assert.Empty(t, r.Year)
		assert.Equal(t, types.LangRussian, r.Language)
		assert.Equal(t, types.SourceBook, r.SourceType)
	}
}

func TestParseSentenceWithYearOnly(t *testing.T) {
	res := New(types.ParserConfig{}, nil).ParseResult("Just a sentence about 1999", types.StyleAuto)
	r := res.Record

	assert.True(t, res.Fallback)
	assert.Equal(t, fallbackMatcher, res.Matcher)
	assert.Equal(t, "1999", r.Year)
	assert.Empty(t, r.Authors)
	assert.Empty(t, r.Title)
	assert.Empty(t, r.Journal)
	assert.Empty(t, r.Pages)
	assert.Equal(t, types.SourceBook, r.SourceType)
	assert.Equal(t, []string{types.FieldYear}, res.Recognized)
	assert.InDelta(t, 0.2, res.Confidence(), 1e-9)
}

func TestParseNationalArticleWithoutYear(t *testing.T) {
	text := "Кузнецов К.К. Очерк истории // Исторический альманах"
	res := New(types.ParserConfig{}, nil).ParseResult(text, types.StyleNational)

	assert.Equal(t, "national.article", res.Matcher)
	assert.Equal(t, "Исторический альманах", res.Record.Journal)
	assert.Empty(t, res.Record.Year)
	assert.Equal(t, types.SourceArticle, res.Record.SourceType)
}

func TestParseGeneralJournalSeparator(t *testing.T) {
	res := New(types.ParserConfig{}, nil).ParseResult("// Журнал. 2020", types.StyleNational)

	assert.True(t, res.Fallback)
	assert.Equal(t, "Журнал", res.Record.Journal)
	assert.Equal(t, "2020", res.Record.Year)
	assert.Equal(t, types.SourceArticle, res.Record.SourceType)
}

func TestParseMisdetectedStyleFallsBack(t *testing.T) {
	text := "Иванов А.В., Петров В.М. Название книги. М.: Издательство, 2022. 300 с."
	r := Parse(text, types.StyleNumeric)

	assert.Equal(t, text, r.RawText)
	assert.Equal(t, "2022", r.Year)
	assert.True(t, r.SourceType.Valid())
}

func TestParseUnknownStyleDetects(t *testing.T) {
	text := `A. B. Johnson, "Title," Journal, vol. 1, 2020.`
	assert.Equal(t, Parse(text, types.StyleAuto), Parse(text, types.Style("unknown")))
}

func TestParseStripsReferenceNumber(t *testing.T) {
	r := Parse(`[12] A. Author, "Some Title," Journal X, vol. 1, 2020.`, types.StyleAuto)
	assert.Equal(t, []string{"A. Author"}, r.Authors)
}

func TestParseDOIAndURLSweep(t *testing.T) {
	text := "Сидоров С.И. Статья // Журнал. 2021. С. 5. DOI: 10.1109/TNS.2019.1234567."
	r := Parse(text, types.StyleNational)

	assert.Equal(t, "10.1109/TNS.2019.1234567", r.DOI)
	assert.Equal(t, "2021", r.Year)
	assert.Equal(t, "5", r.Pages)
}

func TestParseIndexStatus(t *testing.T) {
	p := New(types.ParserConfig{
		TopTierVenues:       []string{"вестник науки"},
		CitationIndexVenues: []string{"Вестник"},
	}, nil)
	r := p.Parse("Сидоров С.И. Статья // Вестник науки. 2021. С. 5.", types.StyleNational)

	assert.True(t, r.TopTier)
	assert.True(t, r.CitationIndex)

	book := p.Parse("Иванов А.В. Книга. М.: Вестник, 2020.", types.StyleNational)
	assert.False(t, book.TopTier, "records without a journal are never flagged")
	assert.False(t, book.CitationIndex)
}

func TestParseDefaultLanguageFromConfig(t *testing.T) {
	p := New(types.ParserConfig{DefaultLanguage: types.LangEnglish}, nil)
	r := p.Parse("1999", types.StyleAuto)
	assert.Equal(t, types.LangEnglish, r.Language)
}

func TestParseDoesNotMutateInputOrder(t *testing.T) {
	text := "Петров В.М., Иванов А.В. Книга. М.: Наука, 2001."
	r := Parse(text, types.StyleNational)
	require.Len(t, r.Authors, 2)
	assert.Equal(t, "Петров В.М.", r.Authors[0])
	assert.Equal(t, "Иванов А.В.", r.Authors[1])
}

func TestParseWritesNoWarnings(t *testing.T) {
	var buf bytes.Buffer
	p := New(types.DefaultParserConfig(), &buf)
	_ = p.Parse("Иванов А.В. Книга. М.: Наука, 2001.", types.StyleAuto)
	assert.Empty(t, buf.String())
	assert.NotPanics(t, func() { New(types.ParserConfig{}, nil).Parse("x", types.StyleAuto) })
}

func TestParseRecoveredResultKeepsDetectedStyle(t *testing.T) {
	var buf bytes.Buffer
	p := New(types.DefaultParserConfig(), &buf)
	p.steps = append(p.steps, func(types.Record) types.Record { panic("step failed") })

	text := `A. B. Johnson, "Title," IEEE Trans. Network Security, vol. 35, no. 2, pp. 112-125, 2022.`
	res := p.ParseResult(text, types.StyleAuto)

	assert.Equal(t, types.StyleNumeric, res.Style)
	assert.True(t, res.Fallback)
	assert.Equal(t, text, res.Record.RawText)
	assert.Contains(t, buf.String(), "step failed")
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"Иванов А.В., Петров В.М. Название книги. М.: Издательство, 2022. 300 с.",
		`A. B. Johnson and C. D. Wilson, "Security Analysis of IoT Protocols," IEEE Trans. Network Security, vol. 35, no. 2, pp. 112-125, 2022.`,
		"Just a sentence about 1999",
		"// // // https://x",
		`"""`,
		"[1]",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, text string) {
		for _, style := range []types.Style{types.StyleAuto, types.StyleNational, types.StyleNumeric} {
			r := Parse(text, style)
			if r.RawText != text {
				t.Fatalf("raw text not preserved: %q", r.RawText)
			}
			if !r.SourceType.Valid() {
				t.Fatalf("invalid source type %q", r.SourceType)
			}
			if r.Language != types.LangRussian && r.Language != types.LangEnglish {
				t.Fatalf("invalid language %q", r.Language)
			}
			if strings.ContainsAny(r.Pages, "-—") {
				t.Fatalf("page range not canonical: %q", r.Pages)
			}
		}
	})
}
