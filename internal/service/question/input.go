package question

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// CreateQuestionInput holds the parameters for drafting a question.
type CreateQuestionInput struct {
	PaperID    uuid.UUID
	Body       string
	Difficulty domain.Difficulty
	ImageURLs  []string
}

// Validate checks all fields and collects all errors.
func (i CreateQuestionInput) Validate() error {
	var errs []domain.FieldError

	if i.PaperID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "paper_id", Message: "required"})
	}
	errs = append(errs, validateContent(i.Body, i.Difficulty, i.ImageURLs)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDraftInput holds the parameters for editing a question. Nil fields are
// left unchanged.
type UpdateDraftInput struct {
	QuestionID uuid.UUID
	Body       *string
	Difficulty *domain.Difficulty
	ImageURLs  []string // nil = don't change; empty = clear
}

// Validate checks all fields and collects all errors.
func (i UpdateDraftInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if i.Body == nil && i.Difficulty == nil && i.ImageURLs == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Body != nil {
		errs = append(errs, validateBody(*i.Body)...)
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be 1, 2 or 3"})
	}
	if i.ImageURLs != nil {
		errs = append(errs, validateImages(i.ImageURLs)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateContent(body string, d domain.Difficulty, images []string) []domain.FieldError {
	errs := validateBody(body)
	if !d.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be 1, 2 or 3"})
	}
	return append(errs, validateImages(images)...)
}

func validateBody(body string) []domain.FieldError {
	body = strings.TrimSpace(body)
	if body == "" {
		return []domain.FieldError{{Field: "body", Message: "required"}}
	}
	if len(body) > MaxBodyLength {
		return []domain.FieldError{{Field: "body", Message: fmt.Sprintf("max %d characters", MaxBodyLength)}}
	}
	return nil
}

func validateImages(images []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(images) > MaxImages {
		errs = append(errs, domain.FieldError{Field: "image_urls", Message: fmt.Sprintf("max %d images", MaxImages)})
	}
	for idx, raw := range images {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("image_urls[%d]", idx),
				Message: "must be an http(s) URL",
			})
		}
	}
	return errs
}
