package post

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the only accepted date format for posts.
const DateLayout = "2006-01-02"

// ValidationError reports a missing or malformed post field. Message is the
// user-facing text returned in the error body.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// strict YYYY-MM-DD with real calendar bounds
	_ = v.RegisterValidation("postdate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(DateLayout, fl.Field().String())
		return err == nil
	})
	return v
}

// Normalize trims surrounding whitespace from every text field.
func (p *Post) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	p.Author = strings.TrimSpace(p.Author)
	p.Date = strings.TrimSpace(p.Date)
}

// Validate checks that all required fields are present and the date is a real
// YYYY-MM-DD calendar date. The post should be normalized first. The first
// failing field is reported; field order is title, content, author, date.
func (p *Post) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &ValidationError{Field: "post", Message: "Invalid post payload"}
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	if field == "date" && fe.Tag() == "postdate" {
		return &ValidationError{Field: field, Message: "Date must be YYYY-MM-DD"}
	}
	return &ValidationError{Field: field, Message: "Valid " + field + " is required"}
}
