package domain

import (
	"fmt"
	"time"
)

// ArticleContent is the cleaned plain-text rendering of one article page.
// BodyText is bounded (the extractor truncates it) and RawHTML is the
// untouched response body; neither is persisted as-is.
type ArticleContent struct {
	Title    string
	BodyText string
	RawHTML  string
}

// Difficulty levels a quiz question may carry.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// KeyEntities groups the named entities the model extracted from the article.
type KeyEntities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// QuizQuestion is one multiple-choice question. Options always has exactly
// four entries and Answer equals one of them verbatim.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty"`
	Explanation string   `json:"explanation"`
}

// QuizOutput is the structured document the generator must produce. Any
// deviation from this shape is a schema violation.
type QuizOutput struct {
	Title         string         `json:"title"`
	Summary       string         `json:"summary"`
	KeyEntities   KeyEntities    `json:"key_entities"`
	Sections      []string       `json:"sections"`
	Quiz          []QuizQuestion `json:"quiz"`
	RelatedTopics []string       `json:"related_topics"`
}

// QuizPayload is what gets serialized into the store: the quiz output plus
// the source URL. Embedding flattens the quiz fields alongside url.
type QuizPayload struct {
	URL string `json:"url"`
	QuizOutput
}

// QuizRecord is one persisted generation result. Records are immutable once
// written; ID and DateGenerated are assigned by the store.
type QuizRecord struct {
	ID             int64
	URL            string
	Title          string
	DateGenerated  time.Time
	ScrapedContent string
	FullQuizData   string
}

// QuizSummary is the listing projection of a record.
type QuizSummary struct {
	ID            int64
	URL           string
	Title         string
	DateGenerated time.Time
}

// Normalize replaces nil list fields with empty slices so the persisted JSON
// always carries the lists the contract promises. JSON decoding leaves absent
// arrays nil, and the prompt treats an empty category as legitimate.
func (q *QuizOutput) Normalize() {
	if q.KeyEntities.People == nil {
		q.KeyEntities.People = []string{}
	}
	if q.KeyEntities.Organizations == nil {
		q.KeyEntities.Organizations = []string{}
	}
	if q.KeyEntities.Locations == nil {
		q.KeyEntities.Locations = []string{}
	}
	if q.Sections == nil {
		q.Sections = []string{}
	}
	if q.RelatedTopics == nil {
		q.RelatedTopics = []string{}
	}
}

// Validate checks the structural contract: required text fields present,
// exactly four distinct options per question, the answer matching one option
// verbatim, and a known difficulty level. Question and section counts are
// prompt-level guidance, not validated here, but an empty quiz is rejected.
func (q *QuizOutput) Validate() error {
	if q.Title == "" {
		return NewSchemaViolationError("missing field 'title'")
	}
	if q.Summary == "" {
		return NewSchemaViolationError("missing field 'summary'")
	}
	if len(q.Quiz) == 0 {
		return NewSchemaViolationError("field 'quiz' is empty")
	}
	for i, question := range q.Quiz {
		if err := question.validate(); err != nil {
			return NewSchemaViolationError(fmt.Sprintf("quiz[%d]: %v", i, err))
		}
	}
	return nil
}

func (qq *QuizQuestion) validate() error {
	if qq.Question == "" {
		return fmt.Errorf("missing field 'question'")
	}
	if len(qq.Options) != 4 {
		return fmt.Errorf("field 'options' must have exactly 4 entries, got %d", len(qq.Options))
	}
	seen := make(map[string]struct{}, 4)
	for _, opt := range qq.Options {
		if opt == "" {
			return fmt.Errorf("field 'options' contains an empty entry")
		}
		if _, dup := seen[opt]; dup {
			return fmt.Errorf("field 'options' contains duplicate entry %q", opt)
		}
		seen[opt] = struct{}{}
	}
	if _, ok := seen[qq.Answer]; !ok {
		return fmt.Errorf("field 'answer' %q does not match any option", qq.Answer)
	}
	switch qq.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("field 'difficulty' must be easy, medium or hard, got %q", qq.Difficulty)
	}
	return nil
}
