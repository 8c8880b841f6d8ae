package dto

import "wikiquiz/internal/domain"

// GenerateQuizRequest is the body of POST /generate_quiz.
type GenerateQuizRequest struct {
	URL string `json:"url"`
}

// QuizDetailResponse is the full merged record returned after generation and
// by GET /quiz/:id.
type QuizDetailResponse struct {
	ID            int64                 `json:"id"`
	DateGenerated string                `json:"date_generated"`
	URL           string                `json:"url"`
	Title         string                `json:"title"`
	Summary       string                `json:"summary"`
	KeyEntities   domain.KeyEntities    `json:"key_entities"`
	Sections      []string              `json:"sections"`
	Quiz          []domain.QuizQuestion `json:"quiz"`
	RelatedTopics []string              `json:"related_topics"`
}

// QuizHistoryItem is one entry of GET /history.
type QuizHistoryItem struct {
	ID            int64  `json:"id"`
	URL           string `json:"url"`
	Title         string `json:"title"`
	DateGenerated string `json:"date_generated"`
}

// ServiceDescriptor is the static capability listing served at GET /.
type ServiceDescriptor struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}
