package models

// Request payloads for quiz create and update. Both operations share one
// shape: identifiers travel in the route, never in the body.

type OptionPayload struct {
	Text      string `json:"text" validate:"required,min=1"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionPayload struct {
	Text    string          `json:"text"`
	Options []OptionPayload `json:"options" validate:"min=1,dive"`
}

type QuizPayload struct {
	Title       string            `json:"title" validate:"min=3"`
	Description string            `json:"description"`
	Questions   []QuestionPayload `json:"questions" validate:"min=1,dive"`
}

// QuizSummary is the dashboard projection: quiz fields plus a question
// count, no question bodies.
type QuizSummary struct {
	ID            uint   `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
}

type AnswerPayload struct {
	QuestionID uint `json:"questionId" validate:"required"`
	Answer     uint `json:"answer" validate:"required"`
}

type SubmitPayload struct {
	QuizID  uint            `json:"quizId" validate:"required"`
	Answers []AnswerPayload `json:"answers" validate:"dive"`
}

// ToQuiz materializes a validated payload as entity rows. Position columns
// record submitted order so reads can restore it.
func (p *QuizPayload) ToQuiz(creatorID uint) *Quiz {
	quiz := &Quiz{
		Title:       p.Title,
		Description: p.Description,
		CreatorID:   creatorID,
		Questions:   make([]Question, len(p.Questions)),
	}
	for i, q := range p.Questions {
		question := Question{
			Text:     q.Text,
			Position: i,
			Options:  make([]Option, len(q.Options)),
		}
		for j, o := range q.Options {
			question.Options[j] = Option{
				Text:      o.Text,
				IsCorrect: o.IsCorrect,
				Position:  j,
			}
		}
		quiz.Questions[i] = question
	}
	return quiz
}
