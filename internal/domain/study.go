package domain

import (
	"fmt"
	"strings"
)

// StudyMode selects which kind of study material is generated.
type StudyMode string

// Supported study modes.
const (
	StudyModeGuide      StudyMode = "guide"
	StudyModeFlashcards StudyMode = "flashcards"
	StudyModeQuiz       StudyMode = "quiz"
)

// ModeInfo describes a study mode for display in a mode picker.
type ModeInfo struct {
	Mode        StudyMode `json:"mode"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
}

var modeCatalogue = []ModeInfo{
	{
		Mode:        StudyModeGuide,
		Label:       "Study Guide",
		Description: "A structured prose guide with headings and bullet points.",
	},
	{
		Mode:        StudyModeFlashcards,
		Label:       "Flashcards",
		Description: "10-15 key terms with concise definitions.",
	},
	{
		Mode:        StudyModeQuiz,
		Label:       "Quiz Me",
		Description: "5-7 multiple-choice questions with explanations.",
	},
}

// StudyModes returns the supported study modes in display order.
// The returned slice is a copy and may be modified by the caller.
func StudyModes() []ModeInfo {
	modes := make([]ModeInfo, len(modeCatalogue))
	copy(modes, modeCatalogue)
	return modes
}

// ParseStudyMode converts s into a StudyMode. Matching is exact: "Quiz" or
// " quiz" are rejected with ErrUnknownStudyMode.
func ParseStudyMode(s string) (StudyMode, error) {
	mode := StudyMode(s)
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStudyMode, s)
	}
	return mode, nil
}

// Valid reports whether m is one of the supported study modes.
func (m StudyMode) Valid() bool {
	switch m {
	case StudyModeGuide, StudyModeFlashcards, StudyModeQuiz:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (m StudyMode) String() string {
	return string(m)
}

// ValidateTopic checks that topic names a subject. The topic itself is
// never rewritten; only blank input is rejected.
func ValidateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return ErrEmptyTopic
	}
	return nil
}
