package generation

import (
	"context"
	"testing"

	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var nonEmptyText = rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ,.'-]{0,40}`)

func flashcardGen() *rapid.Generator[domain.Flashcard] {
	return rapid.Custom(func(t *rapid.T) domain.Flashcard {
		return domain.Flashcard{
			Term:       nonEmptyText.Draw(t, "term"),
			Definition: nonEmptyText.Draw(t, "definition"),
		}
	})
}

func quizQuestionGen() *rapid.Generator[domain.QuizQuestion] {
	return rapid.Custom(func(t *rapid.T) domain.QuizQuestion {
		options := rapid.SliceOfNDistinct(nonEmptyText, 4, 4, rapid.ID[string]).Draw(t, "options")
		correct := rapid.IntRange(0, 3).Draw(t, "correct")
		return domain.QuizQuestion{
			Question:      nonEmptyText.Draw(t, "question"),
			Options:       options,
			CorrectAnswer: options[correct],
			Explanation:   nonEmptyText.Draw(t, "explanation"),
		}
	})
}

func TestValidateFlashcardsIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cards := rapid.SliceOfN(flashcardGen(), 1, 15).Draw(t, "cards")
		set := domain.FlashcardSet{Cards: cards}
		before := append([]domain.Flashcard(nil), cards...)

		if err := ValidateFlashcards(set); err != nil {
			t.Fatalf("valid set rejected: %v", err)
		}
		if err := ValidateFlashcards(set); err != nil {
			t.Fatalf("second validation failed: %v", err)
		}
		for i := range before {
			if before[i] != set.Cards[i] {
				t.Fatalf("card %d changed during validation", i)
			}
		}
	})
}

func TestValidateQuizIdempotentProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		questions := rapid.SliceOfN(quizQuestionGen(), 1, 7).Draw(t, "questions")
		quiz := domain.Quiz{Questions: questions}

		if err := ValidateQuiz(quiz); err != nil {
			t.Fatalf("valid quiz rejected: %v", err)
		}
		if err := ValidateQuiz(quiz); err != nil {
			t.Fatalf("second validation failed: %v", err)
		}
	})
}

func TestQuizRejectsForeignCorrectAnswerProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q := quizQuestionGen().Draw(t, "question")
		answer := nonEmptyText.Filter(func(s string) bool {
			for _, o := range q.Options {
				if o == s {
					return false
				}
			}
			return true
		}).Draw(t, "answer")
		q.CorrectAnswer = answer

		err := ValidateQuiz(domain.Quiz{Questions: []domain.QuizQuestion{q}})
		if err == nil {
			t.Fatalf("answer %q outside options %v was accepted", answer, q.Options)
		}
		if Classify(err).Kind != KindMalformedResponse {
			t.Fatalf("expected malformed response, got %v", err)
		}
	})
}

func TestMissingCredentialNeverCallsClientProperty(t *testing.T) {
	client := &fakeClient{SendFn: respondWith("unused")}
	svc, err := NewService(client, newTestLogger())
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		topic := rapid.String().Draw(t, "topic")
		mode := domain.StudyMode(rapid.SampledFrom([]string{"guide", "flashcards", "quiz", "", "essay"}).Draw(t, "mode"))

		_, err := svc.Generate(context.Background(), "", topic, mode)
		if Classify(err).Kind != KindMissingCredential {
			t.Fatalf("expected missing credential, got %v", err)
		}
	})

	require.Zero(t, client.calls())
}
