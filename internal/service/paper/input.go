package paper

import (
	"net/url"
	"strings"

	"github.com/heartmarshall/qreview-backend/internal/domain"
)

// CreatePaperInput holds the parameters for registering a paper.
type CreatePaperInput struct {
	Title     string
	SourceURL string
	Capacity  int
}

// Validate checks all fields and collects all errors.
func (i CreatePaperInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 300 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}

	if i.SourceURL == "" {
		errs = append(errs, domain.FieldError{Field: "source_url", Message: "required"})
	} else if u, err := url.Parse(i.SourceURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, domain.FieldError{Field: "source_url", Message: "must be an http(s) URL"})
	}

	if i.Capacity < 1 || i.Capacity > 500 {
		errs = append(errs, domain.FieldError{Field: "capacity", Message: "must be between 1 and 500"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
