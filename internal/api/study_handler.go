package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/scry-study/internal/api/shared"
	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/generation"
	"github.com/phrazzld/scry-study/internal/redact"
)

// StudyGenerator produces study material; generation.Service implements it.
type StudyGenerator interface {
	Generate(ctx context.Context, credential, topic string, mode domain.StudyMode) (*generation.Result, error)
}

// StudyHandler handles study-material HTTP requests.
type StudyHandler struct {
	generator StudyGenerator
	topics    []string
	logger    *slog.Logger
}

// NewStudyHandler creates a new StudyHandler.
//
// Parameters:
//   - generator: The study-material generator
//   - topics: Suggested topics served by ListTopics
//   - logger: A structured logger for operation logging
//
// Returns:
//   - A properly initialized StudyHandler
func NewStudyHandler(generator StudyGenerator, topics []string, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{
		generator: generator,
		topics:    append([]string(nil), topics...),
		logger:    logger.With(slog.String("component", "study_handler")),
	}
}

// Generate handles POST /api/study requests.
func (h *StudyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateStudyRequest
	if err := decodeRequest(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	credential := credentialFromRequest(r)
	result, err := h.generator.Generate(r.Context(), credential, req.Topic, domain.StudyMode(req.Mode))
	if err != nil {
		HandleAPIError(w, r, scrubCredential(err, credential))
		return
	}

	resp, err := studyResponseFromResult(result)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "unexpected artifact type",
			"trace_id", shared.GetTraceID(r.Context()),
			"error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// ListModes handles GET /api/modes requests.
func (h *StudyHandler) ListModes(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, ModesResponse{Modes: domain.StudyModes()})
}

// ListTopics handles GET /api/topics requests.
func (h *StudyHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics := h.topics
	if topics == nil {
		topics = []string{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, TopicsResponse{Topics: topics})
}

// ScoreQuiz handles POST /api/quiz/score requests. The submitted questions
// must pass the same shape rules as generated ones.
func (h *StudyHandler) ScoreQuiz(w http.ResponseWriter, r *http.Request) {
	var req ScoreQuizRequest
	if err := decodeRequest(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	quiz := domain.Quiz{Questions: req.Questions}
	if err := generation.ValidateQuiz(quiz); err != nil {
		detail := err.Error()
		var shapeErr *generation.ShapeError
		if errors.As(err, &shapeErr) {
			detail = shapeErr.Violation()
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity,
			"Invalid quiz: "+detail, fmt.Errorf("%w: %w", errInvalidQuiz, err))
		return
	}
	if len(req.Answers) > len(req.Questions) {
		HandleAPIError(w, r, errAnswerCount)
		return
	}

	results := make([]QuestionResult, len(quiz.Questions))
	for i, q := range quiz.Questions {
		var answer string
		if i < len(req.Answers) {
			answer = req.Answers[i]
		}
		results[i] = QuestionResult{
			Answer:        answer,
			Correct:       q.IsCorrect(answer),
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ScoreQuizResponse{
		Score:   quiz.Score(req.Answers),
		Total:   len(quiz.Questions),
		Results: results,
	})
}

// scrubCredential removes the caller's credential from a classified
// message in case the provider echoed it back.
func scrubCredential(err error, credential string) error {
	var classified *generation.ClassifiedError
	if credential == "" || !errors.As(err, &classified) {
		return err
	}
	scrubbed := *classified
	scrubbed.Message = redact.Secret(classified.Message, credential)
	return &scrubbed
}

// studyResponseFromResult converts a generation result to its DTO.
func studyResponseFromResult(result *generation.Result) (StudyResponse, error) {
	resp := StudyResponse{
		ID:          result.ID.String(),
		Mode:        result.Mode,
		Topic:       result.Topic,
		GeneratedAt: result.GeneratedAt,
	}

	switch artifact := result.Artifact.(type) {
	case domain.Guide:
		text := artifact.Text
		resp.Guide = &text
	case domain.FlashcardSet:
		resp.Flashcards = artifact.Cards
	case domain.Quiz:
		resp.Questions = artifact.Questions
	default:
		return StudyResponse{}, fmt.Errorf("unsupported artifact %T", result.Artifact)
	}

	return resp, nil
}
