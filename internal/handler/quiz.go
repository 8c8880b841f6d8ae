package handler

import (
	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/service"
	"wikiquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles the quiz HTTP surface. Errors are returned to the
// app-level error handler, which maps them to statuses.
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

func NewQuizHandler(svc service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   svc,
		validator: validator,
	}
}

// Root serves the static service descriptor.
func (h *QuizHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.ServiceDescriptor{
		Message: "AI Wiki Quiz Generator API",
		Endpoints: map[string]string{
			"generate_quiz": "POST /generate_quiz",
			"get_history":   "GET /history",
			"get_quiz":      "GET /quiz/{quiz_id}",
		},
	})
}

// GenerateQuiz runs the extract -> generate -> save pipeline for one URL.
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body must be JSON with a 'url' field")
	}

	if err := h.validator.ValidateGenerateQuizRequest(req.URL); err != nil {
		return err
	}

	resp, err := h.service.GenerateQuizFromURL(c.UserContext(), req.URL)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetHistory lists all generated quizzes, newest first.
func (h *QuizHandler) GetHistory(c *fiber.Ctx) error {
	items, err := h.service.GetHistory(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// GetQuizByID returns one stored quiz in full.
func (h *QuizHandler) GetQuizByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.NewInvalidInputError("quiz id must be an integer")
	}

	resp, err := h.service.GetQuizByID(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
