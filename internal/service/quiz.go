package service

import (
	"context"
	"encoding/json"
	"time"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/logger"

	"go.uber.org/zap"
)

// QuizService is the request orchestrator: it sequences extraction,
// generation and persistence for new quizzes and serves stored ones back.
type QuizService interface {
	GenerateQuizFromURL(ctx context.Context, url string) (*dto.QuizDetailResponse, error)
	GetHistory(ctx context.Context) ([]dto.QuizHistoryItem, error)
	GetQuizByID(ctx context.Context, id int64) (*dto.QuizDetailResponse, error)
}

type quizService struct {
	extractor domain.ArticleExtractor
	generator domain.QuizGenerator
	repo      domain.QuizRepository
}

func NewQuizService(extractor domain.ArticleExtractor, generator domain.QuizGenerator, repo domain.QuizRepository) QuizService {
	return &quizService{
		extractor: extractor,
		generator: generator,
		repo:      repo,
	}
}

// GenerateQuizFromURL runs the full pipeline. Any stage failing aborts the
// request; nothing is persisted unless generation and validation succeeded.
// There are no retries here — the caller decides whether to try again.
func (s *quizService) GenerateQuizFromURL(ctx context.Context, url string) (*dto.QuizDetailResponse, error) {
	l := logger.Get()
	l.Info("generating quiz from URL", zap.String("url", url))

	article, err := s.extractor.Extract(ctx, url)
	if err != nil {
		return nil, err
	}
	l.Info("scraped article", zap.String("title", article.Title))

	output, err := s.generator.Generate(ctx, article.Title, article.BodyText)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.Save(ctx, url, output.Title, article.BodyText, output)
	if err != nil {
		return nil, err
	}
	l.Info("quiz saved", zap.Int64("id", record.ID))

	return &dto.QuizDetailResponse{
		ID:            record.ID,
		DateGenerated: record.DateGenerated.Format(time.RFC3339Nano),
		URL:           url,
		Title:         output.Title,
		Summary:       output.Summary,
		KeyEntities:   output.KeyEntities,
		Sections:      output.Sections,
		Quiz:          output.Quiz,
		RelatedTopics: output.RelatedTopics,
	}, nil
}

func (s *quizService) GetHistory(ctx context.Context) ([]dto.QuizHistoryItem, error) {
	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.QuizHistoryItem, 0, len(summaries))
	for _, sum := range summaries {
		items = append(items, dto.QuizHistoryItem{
			ID:            sum.ID,
			URL:           sum.URL,
			Title:         sum.Title,
			DateGenerated: sum.DateGenerated.Format(time.RFC3339Nano),
		})
	}
	return items, nil
}

func (s *quizService) GetQuizByID(ctx context.Context, id int64) (*dto.QuizDetailResponse, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var payload domain.QuizPayload
	if err := json.Unmarshal([]byte(record.FullQuizData), &payload); err != nil {
		// Save only writes validated payloads, so this indicates external
		// tampering with the row.
		return nil, domain.NewInternalError("stored quiz data is corrupt", err)
	}

	url := payload.URL
	if url == "" {
		url = record.URL
	}

	return &dto.QuizDetailResponse{
		ID:            record.ID,
		DateGenerated: record.DateGenerated.Format(time.RFC3339Nano),
		URL:           url,
		Title:         payload.Title,
		Summary:       payload.Summary,
		KeyEntities:   payload.KeyEntities,
		Sections:      payload.Sections,
		Quiz:          payload.Quiz,
		RelatedTopics: payload.RelatedTopics,
	}, nil
}
