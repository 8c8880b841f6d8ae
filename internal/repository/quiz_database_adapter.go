package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx over
// SQLite.
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// Save serializes the quiz payload and appends one row. Identity comes from
// the engine's AUTOINCREMENT and the timestamp is assigned here, exactly
// once; callers never supply either.
func (a *QuizDatabaseAdapter) Save(ctx context.Context, url, title, scrapedContent string, output *domain.QuizOutput) (*domain.QuizRecord, error) {
	payload := domain.QuizPayload{URL: url, QuizOutput: *output}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.NewStorageFailureError("serialize quiz payload", err)
	}

	now := time.Now().UTC()

	query := `INSERT INTO quizzes (url, title, date_generated, scraped_content, full_quiz_data)
		VALUES (?, ?, ?, ?, ?)`

	res, err := a.db.ExecContext(ctx, query,
		url,
		title,
		now.UnixNano(),
		toNullString(scrapedContent),
		string(data),
	)
	if err != nil {
		return nil, domain.NewStorageFailureError("insert quiz", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, domain.NewStorageFailureError("read generated quiz id", err)
	}

	return &domain.QuizRecord{
		ID:             id,
		URL:            url,
		Title:          title,
		DateGenerated:  now,
		ScrapedContent: scrapedContent,
		FullQuizData:   string(data),
	}, nil
}

// ListSummaries returns all records newest-first, ties broken by id
// descending for a deterministic order.
func (a *QuizDatabaseAdapter) ListSummaries(ctx context.Context) ([]domain.QuizSummary, error) {
	query := `SELECT id, url, title, date_generated
		FROM quizzes
		ORDER BY date_generated DESC, id DESC`

	var rows []models.Quiz
	if err := a.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, domain.NewStorageFailureError("list quiz summaries", err)
	}

	summaries := make([]domain.QuizSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.QuizSummary{
			ID:            row.ID,
			URL:           row.URL,
			Title:         row.Title,
			DateGenerated: time.Unix(0, row.DateGenerated).UTC(),
		})
	}
	return summaries, nil
}

// GetByID returns the full record for id, or NotFound.
func (a *QuizDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.QuizRecord, error) {
	query := `SELECT id, url, title, date_generated, scraped_content, full_quiz_data
		FROM quizzes
		WHERE id = ?`

	var row models.Quiz
	if err := a.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewQuizNotFoundError(id)
		}
		return nil, domain.NewStorageFailureError("get quiz by id", err)
	}

	return &domain.QuizRecord{
		ID:             row.ID,
		URL:            row.URL,
		Title:          row.Title,
		DateGenerated:  time.Unix(0, row.DateGenerated).UTC(),
		ScrapedContent: row.ScrapedContent.String,
		FullQuizData:   row.FullQuizData,
	}, nil
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
