package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wikiquiz/internal/adapter/quizgen"
	"wikiquiz/internal/adapter/scraper"
	"wikiquiz/internal/config"
	"wikiquiz/internal/database"
	"wikiquiz/internal/domain"
	"wikiquiz/internal/repository"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// End-to-end pipeline tests with a real scraper (against a local server), a
// real generator (with a stubbed completion), and a real SQLite store.

type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

const testArticlePage = `<!DOCTYPE html>
<html>
<body>
<h1 class="firstHeading">Test Article</h1>
<div id="mw-content-text"><div class="mw-parser-output">
<p>The first paragraph of the test article describes its subject in some detail, with enough words that the extractor considers this page substantive rather than a stub.</p>
<p>The second paragraph continues the narrative and adds more factual statements about the subject of the article for question generation.</p>
<p>The third paragraph wraps the article up with closing remarks and a short summary of what was covered in the preceding text.</p>
</div></div>
</body>
</html>`

const fiveQuestionQuizJSON = `{
  "title": "Test Article",
  "summary": "A short test article about its own subject.",
  "key_entities": {"people": [], "organizations": [], "locations": []},
  "sections": ["Introduction", "Body", "Conclusion"],
  "quiz": [
    {"question": "Q1?", "options": ["A1", "B1", "C1", "D1"], "answer": "A1", "difficulty": "easy", "explanation": "E1"},
    {"question": "Q2?", "options": ["A2", "B2", "C2", "D2"], "answer": "B2", "difficulty": "easy", "explanation": "E2"},
    {"question": "Q3?", "options": ["A3", "B3", "C3", "D3"], "answer": "C3", "difficulty": "medium", "explanation": "E3"},
    {"question": "Q4?", "options": ["A4", "B4", "C4", "D4"], "answer": "D4", "difficulty": "medium", "explanation": "E4"},
    {"question": "Q5?", "options": ["A5", "B5", "C5", "D5"], "answer": "A5", "difficulty": "hard", "explanation": "E5"}
  ],
  "related_topics": ["Testing"]
}`

func pipelineService(t *testing.T, completion string) (QuizService, string) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testArticlePage))
	}))
	t.Cleanup(srv.Close)

	extractor := scraper.NewWikipediaScraper(config.ScraperConfig{
		ArticleBaseURL: srv.URL + "/wiki/",
		Timeout:        5 * time.Second,
	}, zap.NewNop())

	generator := quizgen.NewWithCompleter(completerFunc(func(context.Context, string) (string, error) {
		return completion, nil
	}), zap.NewNop())

	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunMigrations(db))

	repo := repository.NewQuizDatabaseAdapter(db)
	return NewQuizService(extractor, generator, repo), srv.URL + "/wiki/Test_Article"
}

func TestPipelineGeneratesPersistsAndServesQuiz(t *testing.T) {
	svc, url := pipelineService(t, fiveQuestionQuizJSON)

	generated, err := svc.GenerateQuizFromURL(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, "Test Article", generated.Title)
	assert.Len(t, generated.Quiz, 5)

	fetched, err := svc.GetQuizByID(context.Background(), generated.ID)
	require.NoError(t, err)
	assert.Equal(t, generated.ID, fetched.ID)
	assert.Len(t, fetched.Quiz, 5)
	assert.Equal(t, generated.Quiz, fetched.Quiz)
	assert.Equal(t, url, fetched.URL)

	history, err := svc.GetHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, generated.ID, history[0].ID)
}

func TestPipelinePersistsNothingOnSchemaViolation(t *testing.T) {
	svc, url := pipelineService(t, "```json\n{\"title\":\"T\"}\n```")

	_, err := svc.GenerateQuizFromURL(context.Background(), url)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSchemaViolation, domainErr.Code)

	history, histErr := svc.GetHistory(context.Background())
	require.NoError(t, histErr)
	assert.Empty(t, history, "a failed generation must not leave a record behind")
}
