package models

import "database/sql"

// Quiz is one row of the quizzes table. DateGenerated is stored as UTC
// nanoseconds since epoch so listing order stays exact and engine-agnostic;
// FullQuizData is the serialized quiz payload kept as an opaque JSON text
// column.
type Quiz struct {
	ID             int64          `db:"id"`
	URL            string         `db:"url"`
	Title          string         `db:"title"`
	DateGenerated  int64          `db:"date_generated"`
	ScrapedContent sql.NullString `db:"scraped_content"`
	FullQuizData   string         `db:"full_quiz_data"`
}
