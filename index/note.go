// Package index keeps a local, in-memory search index over notes the
// client has fetched. The services stay authoritative; the index only
// answers the search command without another round trip.
package index

import (
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/google/uuid"

	"teamdesk"
)

type NoteIndex struct {
	index bleve.Index
}

func Open() (*NoteIndex, error) {
	index, err := bleve.NewMemOnly(noteMapping())
	if err != nil {
		return nil, err
	}

	return &NoteIndex{index: index}, nil
}

func noteMapping() mapping.IndexMapping {
	text := bleve.NewTextFieldMapping()
	text.Analyzer = en.AnalyzerName

	note := bleve.NewDocumentMapping()
	note.AddFieldMappingsAt("title", text)
	note.AddFieldMappingsAt("content", text)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = note
	return m
}

func (s *NoteIndex) Close() error {
	if s.index == nil {
		return nil
	}

	return s.index.Close()
}

func (s *NoteIndex) Index(note teamdesk.Note) error {
	data := map[string]interface{}{
		"title":   note.NoteName,
		"content": note.NoteContent,
	}

	return s.index.Index(note.ID.String(), data)
}

func (s *NoteIndex) IndexAll(notes []teamdesk.Note) error {
	batch := s.index.NewBatch()
	for _, note := range notes {
		data := map[string]interface{}{
			"title":   note.NoteName,
			"content": note.NoteContent,
		}
		if err := batch.Index(note.ID.String(), data); err != nil {
			return err
		}
	}

	return s.index.Batch(batch)
}

func (s *NoteIndex) Delete(id uuid.UUID) error {
	return s.index.Delete(id.String())
}

// Search matches every word of q as a prefix against the title or the
// content. limit <= 0 means no cap.
func (s *NoteIndex) Search(q string, limit int) ([]uuid.UUID, error) {
	request := bleve.NewSearchRequest(andQ(
		query.NewMatchAllQuery(),
		s.searchTitleOrContent(q),
	))
	request.SortBy([]string{"_id"})
	if limit > 0 {
		request.Size = limit
	}

	results, err := s.index.Search(request)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(results.Hits))
	for i, hit := range results.Hits {
		ids[i], err = uuid.Parse(hit.ID)
		if err != nil {
			return nil, err
		}
	}

	return ids, nil
}

func (s *NoteIndex) searchTitleOrContent(queryString string) query.Query {
	words := strings.Fields(queryString)

	ands := make([]query.Query, 0, len(words))
	for _, word := range words {
		ands = append(ands, orQ(
			s.prefixQuery(word, "title"),
			s.prefixQuery(word, "content"),
		))
	}

	return andQ(ands...)
}

func (s *NoteIndex) prefixQuery(queryString, field string) query.Query {
	analyzer := s.index.Mapping().AnalyzerNamed(en.AnalyzerName)
	tokens := analyzer.Analyze([]byte(queryString))
	if len(tokens) == 0 {
		return nil
	}

	conjuncs := make([]query.Query, len(tokens))
	for i, token := range tokens {
		conjuncs[i] = &query.PrefixQuery{
			Prefix:   string(token.Term),
			FieldVal: field,
		}
	}

	return query.NewConjunctionQuery(conjuncs)
}

func andQ(qs ...query.Query) query.Query {
	ands := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ands = append(ands, q)
		}
	}

	if len(ands) == 0 {
		return nil
	}
	return query.NewConjunctionQuery(ands)
}

func orQ(qs ...query.Query) query.Query {
	ors := make([]query.Query, 0, len(qs))
	for _, q := range qs {
		if q != nil {
			ors = append(ors, q)
		}
	}

	if len(ors) == 0 {
		return nil
	}
	return query.NewDisjunctionQuery(ors)
}
