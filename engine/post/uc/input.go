package uc

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/reikouwu/House-Liber-Arce/engine/post"
)

const (
	MaxAuthorLength  = 64
	MaxContentLength = 5000
)

// AppendPostInput is the client payload for a new post. Length bounds apply
// to the trimmed values and count runes.
type AppendPostInput struct {
	Author  string   `json:"author"         validate:"min=1,max=64"`
	Content string   `json:"content"        validate:"min=1,max=5000"`
	Tags    []string `json:"tags,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Draft trims and validates the input.
func (in *AppendPostInput) Draft() (*post.Draft, error) {
	if in == nil {
		return nil, &ValidationError{Field: "body", Message: "request body is required"}
	}
	normalized := AppendPostInput{
		Author:  strings.TrimSpace(in.Author),
		Content: strings.TrimSpace(in.Content),
		Tags:    post.NormalizeTags(in.Tags),
	}
	if err := validate.Struct(&normalized); err != nil {
		return nil, toValidationError(err)
	}
	return &post.Draft{
		Author:  normalized.Author,
		Content: normalized.Content,
		Tags:    normalized.Tags,
	}, nil
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate post input: %w", err)
	}
	fe := fieldErrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "min", "max":
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between 1 and %d characters", maxLength(field)),
		}
	default:
		return &ValidationError{Field: field, Message: fmt.Sprintf("failed %q check", fe.Tag())}
	}
}

func maxLength(field string) int {
	if field == "author" {
		return MaxAuthorLength
	}
	return MaxContentLength
}
