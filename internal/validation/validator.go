package validation

import (
	"strings"

	"wikiquiz/internal/domain"
)

// Validator provides request-shape validation. The article-pattern check
// itself lives in the extractor, before any network access; this layer only
// rejects requests that are not even plausible URLs.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateQuizRequest checks the generate-quiz request body.
func (v *Validator) ValidateGenerateQuizRequest(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return domain.NewInvalidInputError("field 'url' is required")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return domain.NewInvalidInputError("field 'url' must be an absolute http(s) URL")
	}
	return nil
}
