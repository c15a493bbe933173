package domain

// Artifact is the typed result of a successful generation request.
// Exactly one of Guide, FlashcardSet or Quiz implements it per mode.
type Artifact interface {
	// Mode returns the study mode that produced the artifact.
	Mode() StudyMode
}

// Guide is free-form study prose. Headings are written as **Heading** and
// list items as "* Point"; the text is passed through exactly as generated.
type Guide struct {
	Text string `json:"text"`
}

// Mode implements Artifact.
func (Guide) Mode() StudyMode { return StudyModeGuide }

// Flashcard is a single term/definition pair.
type Flashcard struct {
	Term       string `json:"term" validate:"required"`
	Definition string `json:"definition" validate:"required"`
}

// FlashcardSet is an ordered deck of flashcards. Order is display order.
type FlashcardSet struct {
	Cards []Flashcard `json:"cards"`
}

// Mode implements Artifact.
func (FlashcardSet) Mode() StudyMode { return StudyModeFlashcards }

// QuizQuestion is a multiple-choice question. CorrectAnswer must equal one
// of the four Options exactly.
type QuizQuestion struct {
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"len=4,unique,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
	Explanation   string   `json:"explanation" validate:"required"`
}

// IsCorrect reports whether answer matches the correct answer exactly.
func (q QuizQuestion) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}

// Quiz is an ordered list of multiple-choice questions.
type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// Mode implements Artifact.
func (Quiz) Mode() StudyMode { return StudyModeQuiz }

// Score counts the answers that match their question's correct answer.
// answers is index-aligned with Questions; missing or extra answers
// score nothing.
func (q Quiz) Score(answers []string) int {
	score := 0
	for i, question := range q.Questions {
		if i >= len(answers) {
			break
		}
		if question.IsCorrect(answers[i]) {
			score++
		}
	}
	return score
}
