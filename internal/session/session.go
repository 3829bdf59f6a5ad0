// Package session drives one taker's walk through a quiz: question by
// question while in progress, a review step before submitting, then the
// graded result. State is held in memory only; abandoning the session is
// the only cancellation path and persists nothing.
package session

import (
	"errors"

	"github.com/google/uuid"

	"quiz-app/internal/models"
	"quiz-app/internal/scoring"
)

type Phase int

const (
	PhaseInProgress Phase = iota
	PhaseReviewing
	PhaseSubmitted
)

var (
	ErrNoQuestions = errors.New("quiz has no questions")
	ErrNoSelection = errors.New("an option must be selected before moving on")
	ErrNoPrevious  = errors.New("already at the first question")
	ErrWrongPhase  = errors.New("transition not allowed in current phase")
)

// ScoreFunc is the scoring boundary the session submits to.
type ScoreFunc func(quiz *models.Quiz, answers []scoring.Answer) (scoring.Result, error)

type Session struct {
	ID string

	quiz    *models.Quiz
	score   ScoreFunc
	phase   Phase
	index   int
	answers []scoring.Answer
	result  scoring.Result
}

func New(quiz *models.Quiz, score ScoreFunc) (*Session, error) {
	if len(quiz.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{
		ID:    uuid.NewString(),
		quiz:  quiz,
		score: score,
	}, nil
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Index() int   { return s.index }

func (s *Session) CurrentQuestion() *models.Question {
	return &s.quiz.Questions[s.index]
}

// Answers returns a copy of the recorded answers so far.
func (s *Session) Answers() []scoring.Answer {
	out := make([]scoring.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Next records the selection for the current question, overwriting any
// earlier answer to it, and advances. Reaching past the last question
// moves the session to the review step.
func (s *Session) Next(optionID uint) error {
	if s.phase != PhaseInProgress {
		return ErrWrongPhase
	}
	if optionID == 0 {
		return ErrNoSelection
	}

	s.record(s.CurrentQuestion().ID, optionID)

	if s.index == len(s.quiz.Questions)-1 {
		s.phase = PhaseReviewing
		return nil
	}
	s.index++
	return nil
}

// Previous steps back one question and returns the selection previously
// recorded for it, so the caller can restore it.
func (s *Session) Previous() (uint, error) {
	if s.phase != PhaseInProgress {
		return 0, ErrWrongPhase
	}
	if s.index == 0 {
		return 0, ErrNoPrevious
	}

	s.index--
	return s.selectionFor(s.CurrentQuestion().ID), nil
}

// Resume cancels the review step and returns to the last question.
func (s *Session) Resume() error {
	if s.phase != PhaseReviewing {
		return ErrWrongPhase
	}
	s.phase = PhaseInProgress
	return nil
}

// Submit sends the accumulated answers to the scoring boundary. On failure
// the session stays in review with its answers intact so the submission
// can be retried.
func (s *Session) Submit() (scoring.Result, error) {
	if s.phase != PhaseReviewing {
		return scoring.Result{}, ErrWrongPhase
	}

	result, err := s.score(s.quiz, s.answers)
	if err != nil {
		return scoring.Result{}, err
	}

	s.result = result
	s.phase = PhaseSubmitted
	return result, nil
}

// Result reports the grade once the session has been submitted.
func (s *Session) Result() (scoring.Result, bool) {
	if s.phase != PhaseSubmitted {
		return scoring.Result{}, false
	}
	return s.result, true
}

// Restart wipes the submitted attempt and starts over at the first
// question with no recorded answers.
func (s *Session) Restart() error {
	if s.phase != PhaseSubmitted {
		return ErrWrongPhase
	}
	s.phase = PhaseInProgress
	s.index = 0
	s.answers = nil
	s.result = scoring.Result{}
	return nil
}

func (s *Session) record(questionID, optionID uint) {
	for i := range s.answers {
		if s.answers[i].QuestionID == questionID {
			s.answers[i].OptionID = optionID
			return
		}
	}
	s.answers = append(s.answers, scoring.Answer{QuestionID: questionID, OptionID: optionID})
}

func (s *Session) selectionFor(questionID uint) uint {
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			return a.OptionID
		}
	}
	return 0
}
