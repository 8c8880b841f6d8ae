package domain

import "context"

// ArticleExtractor fetches an article page and returns its cleaned content.
type ArticleExtractor interface {
	Extract(ctx context.Context, url string) (*ArticleContent, error)
}

// QuizGenerator turns article text into a validated quiz document.
type QuizGenerator interface {
	Generate(ctx context.Context, title, bodyText string) (*QuizOutput, error)
}

// QuizRepository persists generation results and serves them back. Save
// assigns identity and timestamp; records are never updated or deleted.
type QuizRepository interface {
	Save(ctx context.Context, url, title, scrapedContent string, output *QuizOutput) (*QuizRecord, error)
	ListSummaries(ctx context.Context) ([]QuizSummary, error)
	GetByID(ctx context.Context, id int64) (*QuizRecord, error)
}
