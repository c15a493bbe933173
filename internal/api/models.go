package api

import (
	"time"

	"github.com/phrazzld/scry-study/internal/domain"
)

// GenerateStudyRequest is the payload for POST /api/study. The credential
// travels in the CredentialHeader, never in the body.
type GenerateStudyRequest struct {
	Topic string `json:"topic"`
	Mode  string `json:"mode"`
}

// StudyResponse is the successful response for POST /api/study. Exactly one
// of Guide, Flashcards and Questions is set, matching Mode.
type StudyResponse struct {
	ID          string                `json:"id"`
	Mode        domain.StudyMode      `json:"mode"`
	Topic       string                `json:"topic"`
	GeneratedAt time.Time             `json:"generated_at"`
	Guide       *string               `json:"guide,omitempty"`
	Flashcards  []domain.Flashcard    `json:"flashcards,omitempty"`
	Questions   []domain.QuizQuestion `json:"questions,omitempty"`
}

// ModesResponse lists the supported study modes in display order.
type ModesResponse struct {
	Modes []domain.ModeInfo `json:"modes"`
}

// TopicsResponse lists the suggested topics.
type TopicsResponse struct {
	Topics []string `json:"topics"`
}

// ScoreQuizRequest is the payload for POST /api/quiz/score. Answers are
// index-aligned with Questions; unanswered questions may be omitted from
// the end.
type ScoreQuizRequest struct {
	Questions []domain.QuizQuestion `json:"questions" validate:"required,min=1"`
	Answers   []string              `json:"answers"   validate:"required"`
}

// QuestionResult reports the outcome for one scored question.
type QuestionResult struct {
	Answer        string `json:"answer"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// ScoreQuizResponse is the successful response for POST /api/quiz/score.
type ScoreQuizResponse struct {
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Results []QuestionResult `json:"results"`
}
