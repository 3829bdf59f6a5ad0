package quiz

import (
	"reflect"
	"strings"

	"gopkg.in/go-playground/validator.v9"

	"quiz-app/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterStructValidation(questionStructLevel, models.QuestionPayload{})
}

// questionStructLevel enforces the cross-field rule that exactly one option
// is flagged correct. Zero or several are both rejected, and the error is
// attached to the options field rather than a single option.
func questionStructLevel(sl validator.StructLevel) {
	question := sl.Current().Interface().(models.QuestionPayload)

	correct := 0
	for _, option := range question.Options {
		if option.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		sl.ReportError(question.Options, "options", "Options", "onecorrect", "")
	}
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateQuizPayload checks a create/update body and returns field-level
// errors, nil when the payload is valid. Malformed input never panics.
func ValidateQuizPayload(payload *models.QuizPayload) []FieldError {
	return collectFieldErrors(validate.Struct(payload))
}

// ValidateSubmitPayload checks a scoring submission body.
func ValidateSubmitPayload(payload *models.SubmitPayload) []FieldError {
	return collectFieldErrors(validate.Struct(payload))
}

func collectFieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: messageFor(fe),
		})
	}
	return out
}

// fieldPath strips the root struct name from a validator namespace, leaving
// the json path: "QuizPayload.questions[0].options" -> "questions[0].options".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "onecorrect":
		return "there must be exactly one correct answer"
	case "min", "required":
		switch fe.Field() {
		case "title":
			return "quiz title must be at least 3 characters long"
		case "questions":
			return "quiz must have at least one question"
		case "options":
			return "a question must have at least one option"
		case "text":
			return "option text must not be empty"
		}
	}
	return "invalid value"
}
