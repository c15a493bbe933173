package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/scry-study/internal/domain"
)

// tagOneOfOptions is reported when a quiz question's correct answer is not
// one of its options.
const tagOneOfOptions = "oneof_options"

// Shared validator instance; validator.Validate caches struct metadata and is
// safe for concurrent use.
var validate = newArtifactValidator()

func newArtifactValidator() *validator.Validate {
	v := validator.New()

	// Report JSON field names so messages match what the model emitted.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	v.RegisterStructValidation(validateQuizQuestion, domain.QuizQuestion{})

	return v
}

// validateQuizQuestion requires CorrectAnswer to equal one of Options byte
// for byte. An empty answer is already reported by the required tag.
func validateQuizQuestion(sl validator.StructLevel) {
	q, ok := sl.Current().Interface().(domain.QuizQuestion)
	if !ok || q.CorrectAnswer == "" {
		return
	}
	if !slices.Contains(q.Options, q.CorrectAnswer) {
		sl.ReportError(q.CorrectAnswer, "correctAnswer", "CorrectAnswer", tagOneOfOptions, "")
	}
}

// ParseGuide accepts any non-empty reply as a guide, whitespace-only text
// included. The text is returned unchanged; heading and bullet markers are
// not checked.
func ParseGuide(raw string) (domain.Guide, error) {
	if raw == "" {
		return domain.Guide{}, fmt.Errorf("%w: study guide is empty", ErrMalformedResponse)
	}
	return domain.Guide{Text: raw}, nil
}

// ParseFlashcards decodes raw as a JSON array of flashcards and validates
// every card. A single invalid card rejects the whole set.
func ParseFlashcards(raw string) (domain.FlashcardSet, error) {
	var cards []domain.Flashcard
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &cards); err != nil {
		return domain.FlashcardSet{}, fmt.Errorf("%w for flashcards: %v", ErrMalformedResponse, err)
	}

	set := domain.FlashcardSet{Cards: cards}
	if err := ValidateFlashcards(set); err != nil {
		return domain.FlashcardSet{}, err
	}
	return set, nil
}

// ParseQuiz decodes raw as a JSON array of quiz questions and validates
// every question. A single invalid question rejects the whole quiz.
func ParseQuiz(raw string) (domain.Quiz, error) {
	var questions []domain.QuizQuestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &questions); err != nil {
		return domain.Quiz{}, fmt.Errorf("%w for quiz questions: %v", ErrMalformedResponse, err)
	}

	quiz := domain.Quiz{Questions: questions}
	if err := ValidateQuiz(quiz); err != nil {
		return domain.Quiz{}, err
	}
	return quiz, nil
}

// ValidateFlashcards checks that the set is non-empty and every card has a
// term and a definition. It never modifies set.
func ValidateFlashcards(set domain.FlashcardSet) error {
	if len(set.Cards) == 0 {
		return fmt.Errorf("%w for flashcards: no flashcards in response", ErrMalformedResponse)
	}
	for i, card := range set.Cards {
		if err := validate.Struct(card); err != nil {
			return shapeError("flashcard", i, err)
		}
	}
	return nil
}

// ValidateQuiz checks that the quiz is non-empty and every question has a
// question, exactly four distinct non-empty options, a correct answer equal
// to one of them, and an explanation. It never modifies quiz.
func ValidateQuiz(quiz domain.Quiz) error {
	if len(quiz.Questions) == 0 {
		return fmt.Errorf("%w for quiz questions: no questions in response", ErrMalformedResponse)
	}
	for i, question := range quiz.Questions {
		if err := validate.Struct(question); err != nil {
			return shapeError("quiz question", i, err)
		}
	}
	return nil
}

// ShapeError reports the first element of a batch that broke a shape rule.
// It matches ErrMalformedResponse under errors.Is.
type ShapeError struct {
	// Element names the kind of element, e.g. "flashcard".
	Element string

	// Index is the 1-based position of the element in the batch.
	Index int

	// Detail names the violated rule, e.g. "definition is required".
	Detail string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMalformedResponse, e.Violation())
}

// Violation describes the offending element without the sentinel text.
func (e *ShapeError) Violation() string {
	return fmt.Sprintf("%s %d: %s", e.Element, e.Index, e.Detail)
}

// Unwrap returns ErrMalformedResponse.
func (e *ShapeError) Unwrap() error {
	return ErrMalformedResponse
}

// shapeError builds a *ShapeError for element index (0-based) from the first
// validation failure in err.
func shapeError(element string, index int, err error) error {
	detail := err.Error()
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		detail = describeFieldError(fieldErrs[0])
	}
	return &ShapeError{Element: element, Index: index + 1, Detail: detail}
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "len":
		return fmt.Sprintf("%s must contain exactly %s entries, got %d",
			field, fe.Param(), reflect.ValueOf(fe.Value()).Len())
	case "unique":
		return field + " must be distinct"
	case tagOneOfOptions:
		return fmt.Sprintf("%s %q does not match any of the options", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed the %q rule", field, fe.Tag())
	}
}
