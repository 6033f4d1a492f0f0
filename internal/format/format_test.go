// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citeconv/pkg/types"
)

func bookRecord() types.Record {
	return types.Record{
		Authors:    []string{"Иванов А.В.", "Петров В.М."},
		Title:      "Название книги",
		City:       "М",
		Publisher:  "Издательство",
		Year:       "2022",
		Pages:      "300",
		Language:   types.LangRussian,
		SourceType: types.SourceBook,
	}
}

func articleRecord() types.Record {
	return types.Record{
		Authors:    []string{"A. B. Johnson", "C. D. Wilson"},
		Title:      "Security Analysis of IoT Protocols",
		Journal:    "IEEE Trans. Network Security",
		Volume:     "35",
		Issue:      "2",
		Pages:      "112–125",
		Year:       "2022",
		Language:   types.LangEnglish,
		SourceType: types.SourceArticle,
	}
}

func TestFormatNational(t *testing.T) {
	tests := []struct {
		name string
		rec  types.Record
		want string
	}{
		{
			name: "book",
			rec:  bookRecord(),
			want: "Иванов А.В., Петров В.М. Название книги. М.: Издательство, 2022. 300 с.",
		},
		{
			name: "article from numeric names",
			rec:  articleRecord(),
			want: "Johnson A. B., Wilson C. D. Security Analysis of IoT Protocols. // IEEE Trans. Network Security. 2022. Т. 35. № 2. С. 112–125.",
		},
		{
			name: "book with edition and subtitle",
			rec: types.Record{
				Authors: []string{"Кнут Д.Э."}, Title: "Искусство программирования", Subtitle: "основные алгоритмы",
				Edition: "3", City: "М", Publisher: "Вильямс", Year: "2019", SourceType: types.SourceBook,
			},
			want: "Кнут Д.Э. Искусство программирования : основные алгоритмы. 3-е изд. М.: Вильямс, 2019.",
		},
		{
			name: "conference with editors",
			rec: types.Record{
				Authors: []string{"Иванов И.И."}, Title: "Анализ данных", Journal: "Материалы конф.",
				City: "М", Publisher: "Наука", Year: "2019", Pages: "10–15", SourceType: types.SourceConference,
				Extra: map[string]string{types.ExtraEditors: "под ред. А.А. Петрова"},
			},
			want: "Иванов И.И. Анализ данных. // Материалы конф. / под ред. А.А. Петрова. М.: Наука, 2019. С. 10–15.",
		},
		{
			name: "thesis",
			rec: types.Record{
				Authors: []string{"Петров П.П."}, Title: "Методы анализа", City: "М", Year: "2020", Pages: "150",
				SourceType: types.SourceThesis, Extra: map[string]string{types.ExtraDegree: "канд. техн. наук"},
			},
			want: "Петров П.П. Методы анализа : дис. ... канд. техн. наук. М., 2020. 150 с.",
		},
		{
			name: "web",
			rec: types.Record{
				Title: "Документация Go", Year: "2023", URL: "https://go.dev/doc", AccessDate: "01.02.2024",
				SourceType: types.SourceWeb,
			},
			want: "Документация Go [Электронный ресурс]. 2023. URL: https://go.dev/doc (дата обращения: 01.02.2024).",
		},
		{
			name: "doi appended",
			rec: types.Record{
				Title: "Статья", Journal: "Журнал", Year: "2021", DOI: "10.1000/xyz", SourceType: types.SourceArticle,
			},
			want: "Статья. // Журнал. 2021. DOI: 10.1000/xyz.",
		},
		{
			name: "missing fields skip punctuation",
			rec:  types.Record{Title: "Только название", SourceType: types.SourceBook},
			want: "Только название.",
		},
		{
			name: "empty record",
			rec:  types.Record{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.rec, types.StyleNational))
		})
	}
}

func TestFormatNumeric(t *testing.T) {
	tests := []struct {
		name string
		rec  types.Record
		want string
	}{
		{
			name: "book from national names",
			rec:  bookRecord(),
			want: `А.В. Иванов, В.М. Петров, "Название книги," М.: Издательство, 2022.`,
		},
		{
			name: "article",
			rec:  articleRecord(),
			want: `A. B. Johnson, C. D. Wilson, "Security Analysis of IoT Protocols," IEEE Trans. Network Security, vol. 35, no. 2, pp. 112–125, 2022.`,
		},
		{
			name: "single page",
			rec:  types.Record{Title: "T", Journal: "J", Pages: "7", Year: "2001", SourceType: types.SourceArticle},
			want: `"T," J, p. 7, 2001.`,
		},
		{
			name: "conference",
			rec: types.Record{
				Authors: []string{"J. Smith"}, Title: "Deep learning for parsing", Journal: "Proc. Int. Conf. Machine Learning",
				City: "Boston", Year: "2020", Pages: "45–52", SourceType: types.SourceConference,
			},
			want: `J. Smith, "Deep learning for parsing," in Proc. Int. Conf. Machine Learning, Boston, 2020, pp. 45–52.`,
		},
		{
			name: "book with edition",
			rec: types.Record{
				Authors: []string{"Кнут Д.Э."}, Title: "Искусство программирования", Edition: "2",
				City: "М", Publisher: "Вильямс", Year: "2019", SourceType: types.SourceBook,
			},
			want: `Д.Э. Кнут, "Искусство программирования," 2nd ed., М.: Вильямс, 2019.`,
		},
		{
			name: "thesis",
			rec: types.Record{
				Authors: []string{"J. Doe"}, Title: "Citation parsing at scale", City: "Boston", Year: "2019",
				SourceType: types.SourceThesis, Extra: map[string]string{types.ExtraDegree: "Ph.D."},
			},
			want: `J. Doe, "Citation parsing at scale," Ph.D. dissertation, Boston, 2019.`,
		},
		{
			name: "thesis city abbreviated",
			rec: types.Record{
				Authors: []string{"Смирнов С.С."}, Title: "Методы анализа", City: "М", Year: "2020",
				SourceType: types.SourceThesis, Extra: map[string]string{types.ExtraDegree: "Ph.D."},
			},
			want: `С.С. Смирнов, "Методы анализа," Ph.D. dissertation, М., 2020.`,
		},
		{
			name: "book page count omitted",
			rec: types.Record{
				Authors: []string{"Иванов А.В."}, Title: "Книга", City: "СПб", Publisher: "Питер",
				Year: "2021", Pages: "300", SourceType: types.SourceBook,
			},
			want: `А.В. Иванов, "Книга," СПб: Питер, 2021.`,
		},
		{
			name: "web",
			rec: types.Record{
				Authors: []string{"Go Team"}, Title: "Effective Go", Year: "2023",
				URL: "https://go.dev/doc/effective_go", AccessDate: "01.02.2024", SourceType: types.SourceWeb,
			},
			want: `Go Team, "Effective Go," 2023. [Online]. Available: https://go.dev/doc/effective_go, Accessed on: 01.02.2024.`,
		},
		{
			name: "doi appended",
			rec:  types.Record{Title: "T", Journal: "J", Year: "2020", DOI: "10.1000/xyz", SourceType: types.SourceArticle},
			want: `"T," J, 2020. doi: 10.1000/xyz.`,
		},
		{
			name: "title only",
			rec:  types.Record{Title: "Lonely", SourceType: types.SourceBook},
			want: `"Lonely."`,
		},
		{
			name: "authors only",
			rec:  types.Record{Authors: []string{"A. Author"}, SourceType: types.SourceBook},
			want: "A. Author",
		},
		{
			name: "empty record",
			rec:  types.Record{},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.rec, types.StyleNumeric))
		})
	}
}

func TestFormatAutoRendersNational(t *testing.T) {
	r := bookRecord()
	assert.Equal(t, Format(r, types.StyleNational), Format(r, types.StyleAuto))
	assert.Equal(t, Format(r, types.StyleNational), Format(r, types.Style("bogus")))
}

func TestFormatDoesNotModifyRecord(t *testing.T) {
	r := articleRecord()
	before := r.Clone()
	_ = Format(r, types.StyleNational)
	_ = Format(r, types.StyleNumeric)
	assert.Equal(t, before, r)
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a  b", "a b"},
		{"a , b", "a, b"},
		{"a,, b", "a, b"},
		{"a,.", "a."},
		{"end..", "end."},
		{"дис. ... канд.", "дис. ... канд."},
		{"  trim  ", "trim"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanup(tt.in), tt.in)
	}
}

func TestOrdinal(t *testing.T) {
	for in, want := range map[string]string{"1": "1st", "2": "2nd", "3": "3rd", "4": "4th", "11": "11th", "12": "12th", "21": "21st", "x": "x"} {
		assert.Equal(t, want, ordinal(in), in)
	}
}

func TestFormatList(t *testing.T) {
	records := []types.Record{
		{Authors: []string{"Петров В.М."}, Title: "Бета", Year: "2001", SourceType: types.SourceBook},
		{Authors: []string{"Иванов А.В."}, Title: "Альфа", Year: "2010", SourceType: types.SourceBook},
		{Authors: []string{"Сидоров С.С."}, Title: "Гамма", Year: "1999", SourceType: types.SourceBook},
	}

	byAuthor := FormatList(records, types.StyleNational, SortAuthor)
	require.Len(t, byAuthor, 3)
	assert.Equal(t, "Иванов А.В. Альфа. 2010.", byAuthor[0])
	assert.Equal(t, "Петров В.М. Бета. 2001.", byAuthor[1])
	assert.Equal(t, "Сидоров С.С. Гамма. 1999.", byAuthor[2])

	byYear := FormatList(records, types.StyleNational, ParseSortKey("год"))
	assert.Equal(t, "Сидоров С.С. Гамма. 1999.", byYear[0])

	unsorted := FormatList(records, types.StyleNational, ParseSortKey("unknown"))
	assert.Equal(t, "Петров В.М. Бета. 2001.", unsorted[0])
	assert.Equal(t, "Петров В.М.", records[0].Authors[0], "input order is kept")
}

func TestNumbered(t *testing.T) {
	entries := []string{"a", "b"}
	assert.Equal(t, []string{"1. a", "2. b"}, Numbered(entries, types.StyleNational))
	assert.Equal(t, []string{"[1] a", "[2] b"}, Numbered(entries, types.StyleNumeric))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortAuthor, ParseSortKey("Author"))
	assert.Equal(t, SortTitle, ParseSortKey("НАЗВАНИЕ"))
	assert.Equal(t, SortNone, ParseSortKey(""))
}

func TestToCSL(t *testing.T) {
	items := ToCSL([]types.Record{bookRecord(), articleRecord()})
	require.Len(t, items, 2)

	book := items[0]
	assert.Equal(t, "ref1", book.ID)
	assert.Equal(t, "book", book.Type)
	assert.Equal(t, CSLName{Family: "Иванов", Given: "А.В."}, book.Author[0])
	assert.Equal(t, "М", book.PublisherPlace)
	require.NotNil(t, book.Issued)
	assert.Equal(t, 2022, book.Issued.DateParts[0][0])

	article := items[1]
	assert.Equal(t, "article-journal", article.Type)
	assert.Equal(t, CSLName{Family: "Johnson", Given: "A. B."}, article.Author[0])
	assert.Equal(t, "IEEE Trans. Network Security", article.ContainerTitle)
	assert.Equal(t, "112–125", article.Page)
}

func TestToCSLGarbledYear(t *testing.T) {
	items := ToCSL([]types.Record{{Title: "T", Year: "20x2"}})
	assert.Nil(t, items[0].Issued)
	assert.Equal(t, "document", items[0].Type)
}

func TestParseAuthorName(t *testing.T) {
	assert.Equal(t, CSLName{Literal: "Аристотель"}, parseAuthorName("Аристотель"))
	assert.Equal(t, CSLName{}, parseAuthorName("  "))
}

func TestFormatCSLYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatCSL([]types.Record{bookRecord()}, &buf))

	var items []CSLItem
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Название книги", items[0].Title)
}

func TestFormatCSLJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatCSLJSON([]types.Record{articleRecord()}, &buf))

	var items []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "IEEE Trans. Network Security", items[0]["container-title"])
	assert.Equal(t, "paper-conference", cslTypes[types.SourceConference])
}
