package generation

import "github.com/phrazzld/scry-study/internal/domain"

// pipeline binds a study mode to its prompt template, optional response
// schema and decoder.
type pipeline struct {
	template string
	schema   func() *Schema
	decode   func(raw string) (domain.Artifact, error)
}

// pipelines is the mode dispatch table. Modes not listed here are
// unsupported; there is no fallback entry.
var pipelines = map[domain.StudyMode]pipeline{
	domain.StudyModeGuide: {
		template: "guide.tmpl",
		decode:   decodeWith(ParseGuide),
	},
	domain.StudyModeFlashcards: {
		template: "flashcards.tmpl",
		schema:   flashcardSchema,
		decode:   decodeWith(ParseFlashcards),
	},
	domain.StudyModeQuiz: {
		template: "quiz.tmpl",
		schema:   quizSchema,
		decode:   decodeWith(ParseQuiz),
	},
}

// decodeWith lifts a typed parser into a pipeline decoder that yields a nil
// artifact on failure.
func decodeWith[T domain.Artifact](parse func(string) (T, error)) func(string) (domain.Artifact, error) {
	return func(raw string) (domain.Artifact, error) {
		artifact, err := parse(raw)
		if err != nil {
			return nil, err
		}
		return artifact, nil
	}
}
