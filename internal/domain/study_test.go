package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStudyMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    StudyMode
		wantErr bool
	}{
		{name: "guide", input: "guide", want: StudyModeGuide},
		{name: "flashcards", input: "flashcards", want: StudyModeFlashcards},
		{name: "quiz", input: "quiz", want: StudyModeQuiz},
		{name: "empty", input: "", wantErr: true},
		{name: "wrong case", input: "Quiz", wantErr: true},
		{name: "padded", input: " guide", wantErr: true},
		{name: "unknown", input: "essay", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStudyMode(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownStudyMode))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStudyModesCatalogue(t *testing.T) {
	t.Parallel()

	modes := StudyModes()
	require.Len(t, modes, 3)
	assert.Equal(t, StudyModeGuide, modes[0].Mode)
	assert.Equal(t, "Quiz Me", modes[2].Label)

	for _, m := range modes {
		assert.True(t, m.Mode.Valid(), "catalogue mode %q should be valid", m.Mode)
	}

	// Mutating the copy must not leak into the catalogue.
	modes[0].Label = "changed"
	assert.Equal(t, "Study Guide", StudyModes()[0].Label)
}

func TestValidateTopic(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateTopic("Cell Injury"))
	assert.ErrorIs(t, ValidateTopic(""), ErrEmptyTopic)
	assert.ErrorIs(t, ValidateTopic(" \t\n"), ErrEmptyTopic)
}

func TestArtifactModes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StudyModeGuide, Guide{}.Mode())
	assert.Equal(t, StudyModeFlashcards, FlashcardSet{}.Mode())
	assert.Equal(t, StudyModeQuiz, Quiz{}.Mode())
}

func TestQuizScore(t *testing.T) {
	t.Parallel()

	quiz := Quiz{Questions: []QuizQuestion{
		{
			Question:      "Irreversible cell death with inflammation?",
			Options:       []string{"Necrosis", "Apoptosis", "Metaplasia", "Dysplasia"},
			CorrectAnswer: "Necrosis",
			Explanation:   "Necrosis provokes an inflammatory response.",
		},
		{
			Question:      "Programmed cell death?",
			Options:       []string{"Necrosis", "Apoptosis", "Metaplasia", "Dysplasia"},
			CorrectAnswer: "Apoptosis",
			Explanation:   "Apoptosis is regulated and non-inflammatory.",
		},
	}}

	tests := []struct {
		name    string
		answers []string
		want    int
	}{
		{name: "all correct", answers: []string{"Necrosis", "Apoptosis"}, want: 2},
		{name: "case mismatch is wrong", answers: []string{"necrosis", "Apoptosis"}, want: 1},
		{name: "missing answers", answers: []string{"Necrosis"}, want: 1},
		{name: "extra answers ignored", answers: []string{"Necrosis", "Apoptosis", "Necrosis"}, want: 2},
		{name: "no answers", answers: nil, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, quiz.Score(tc.answers))
		})
	}
}
