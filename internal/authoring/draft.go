// Package authoring holds the in-progress state of a quiz being created or
// edited: an ordered list of question drafts, each with its own ordered
// option drafts and a single-select correctness flag. The draft lives only
// in memory; submitting hands it to validation and the repository.
package authoring

import (
	"errors"

	"quiz-app/internal/models"
)

var (
	ErrLastQuestion = errors.New("a quiz must keep at least one question")
	ErrLastOption   = errors.New("a question must keep at least one option")
	ErrOutOfRange   = errors.New("index out of range")
)

type OptionDraft struct {
	Text      string
	IsCorrect bool
}

type QuestionDraft struct {
	Text    string
	Options []OptionDraft
}

type Draft struct {
	Title       string
	Description string
	Questions   []QuestionDraft
}

// NewDraft starts an empty quiz with one blank question holding one blank
// option, matching the initial authoring form.
func NewDraft() *Draft {
	return &Draft{
		Questions: []QuestionDraft{newQuestionDraft()},
	}
}

// DraftFromQuiz seeds the editor from a stored quiz.
func DraftFromQuiz(quiz *models.Quiz) *Draft {
	d := &Draft{
		Title:       quiz.Title,
		Description: quiz.Description,
		Questions:   make([]QuestionDraft, len(quiz.Questions)),
	}
	for i, q := range quiz.Questions {
		question := QuestionDraft{
			Text:    q.Text,
			Options: make([]OptionDraft, len(q.Options)),
		}
		for j, o := range q.Options {
			question.Options[j] = OptionDraft{Text: o.Text, IsCorrect: o.IsCorrect}
		}
		d.Questions[i] = question
	}
	return d
}

func newQuestionDraft() QuestionDraft {
	return QuestionDraft{
		Options: []OptionDraft{{}},
	}
}

func (d *Draft) AddQuestion() {
	d.Questions = append(d.Questions, newQuestionDraft())
}

// RemoveQuestion drops the question at index. The final remaining question
// cannot be removed; confirmation of the removal is the caller's concern.
func (d *Draft) RemoveQuestion(index int) error {
	if index < 0 || index >= len(d.Questions) {
		return ErrOutOfRange
	}
	if len(d.Questions) == 1 {
		return ErrLastQuestion
	}
	d.Questions = append(d.Questions[:index], d.Questions[index+1:]...)
	return nil
}

func (d *Draft) AddOption(questionIndex int) error {
	if questionIndex < 0 || questionIndex >= len(d.Questions) {
		return ErrOutOfRange
	}
	q := &d.Questions[questionIndex]
	q.Options = append(q.Options, OptionDraft{})
	return nil
}

func (d *Draft) RemoveOption(questionIndex, optionIndex int) error {
	if questionIndex < 0 || questionIndex >= len(d.Questions) {
		return ErrOutOfRange
	}
	q := &d.Questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return ErrOutOfRange
	}
	if len(q.Options) == 1 {
		return ErrLastOption
	}
	q.Options = append(q.Options[:optionIndex], q.Options[optionIndex+1:]...)
	return nil
}

// MarkCorrect flags one option as the correct answer and clears the flag
// on every sibling, keeping the question single-select.
func (d *Draft) MarkCorrect(questionIndex, optionIndex int) error {
	if questionIndex < 0 || questionIndex >= len(d.Questions) {
		return ErrOutOfRange
	}
	q := &d.Questions[questionIndex]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return ErrOutOfRange
	}
	for i := range q.Options {
		q.Options[i].IsCorrect = i == optionIndex
	}
	return nil
}

// Payload converts the draft into the request body submitted to the
// create/update endpoints.
func (d *Draft) Payload() *models.QuizPayload {
	payload := &models.QuizPayload{
		Title:       d.Title,
		Description: d.Description,
		Questions:   make([]models.QuestionPayload, len(d.Questions)),
	}
	for i, q := range d.Questions {
		question := models.QuestionPayload{
			Text:    q.Text,
			Options: make([]models.OptionPayload, len(q.Options)),
		}
		for j, o := range q.Options {
			question.Options[j] = models.OptionPayload{Text: o.Text, IsCorrect: o.IsCorrect}
		}
		payload.Questions[i] = question
	}
	return payload
}
