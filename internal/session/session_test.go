package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"quiz-app/internal/models"
	"quiz-app/internal/scoring"
)

func threeQuestionQuiz() *models.Quiz {
	return &models.Quiz{
		ID:    1,
		Title: "Go basics",
		Questions: []models.Question{
			{ID: 1, Options: []models.Option{{ID: 11, IsCorrect: true}, {ID: 12}}},
			{ID: 2, Options: []models.Option{{ID: 21}, {ID: 22, IsCorrect: true}}},
			{ID: 3, Options: []models.Option{{ID: 31, IsCorrect: true}, {ID: 32}}},
		},
	}
}

func localScore(quiz *models.Quiz, answers []scoring.Answer) (scoring.Result, error) {
	return scoring.Score(quiz, answers), nil
}

func TestNewSessionRequiresQuestions(t *testing.T) {
	_, err := New(&models.Quiz{}, localScore)
	require.ErrorIs(t, err, ErrNoQuestions)
}

func TestNewSessionHasID(t *testing.T) {
	s, err := New(threeQuestionQuiz(), localScore)
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	require.Equal(t, PhaseInProgress, s.Phase())
	require.Equal(t, 0, s.Index())
}

func TestNextRequiresSelection(t *testing.T) {
	s, _ := New(threeQuestionQuiz(), localScore)

	require.ErrorIs(t, s.Next(0), ErrNoSelection)
	require.Equal(t, 0, s.Index())
}

func TestNextAdvancesAndRecords(t *testing.T) {
	s, _ := New(threeQuestionQuiz(), localScore)

	require.NoError(t, s.Next(11))
	require.Equal(t, 1, s.Index())
	require.Equal(t, []scoring.Answer{{QuestionID: 1, OptionID: 11}}, s.Answers())
}

func TestLastQuestionMovesToReview(t *testing.T) {
	s, _ := New(threeQuestionQuiz(), localScore)

	require.NoError(t, s.Next(11))
	require.NoError(t, s.Next(22))
	require.NoError(t, s.Next(31))

	require.Equal(t, PhaseReviewing, s.Phase())
	require.Len(t, s.Answers(), 3)
}

func TestPreviousRestoresSelection(t *testing.T) {
	s, _ := New(threeQuestionQuiz(), localScore)
	require.NoError(t, s.Next(12))

	selected, err := s.Previous()
	require.NoError(t, err)
	require.Equal(t, 0, s.Index())
	require.Equal(t, uint(12), selected)
}

func TestPreviousAtFirstQuestion(t *testing.T) {
	s, _ := New(threeQuestionQuiz(), localScore)

	_, err := s.Previous()
	require.ErrorIs(t, err, ErrNoPrevious)
}

func TestRevisitOverwritesAnswer(t *testing.T) {
	s, _ := New(threeQuestionQuiz(), localScore)
	require.NoError(t, s.Next(12))

	_, err := s.Previous()
	require.NoError(t, err)
	require.NoError(t, s.Next(11))

	require.Equal(t, []scoring.Answer{{QuestionID: 1, OptionID: 11}}, s.Answers())
}

func TestSubmitOnlyFromReview(t *testing.T) {
	s, _ := New(threeQuestionQuiz(), localScore)

	_, err := s.Submit()
	require.ErrorIs(t, err, ErrWrongPhase)
}

func TestResumeCancelsReview(t *testing.T) {
	s, _ := New(threeQuestionQuiz(), localScore)
	require.NoError(t, s.Next(11))
	require.NoError(t, s.Next(22))
	require.NoError(t, s.Next(31))

	require.NoError(t, s.Resume())
	require.Equal(t, PhaseInProgress, s.Phase())
	require.Equal(t, 2, s.Index())
}

func TestSubmitComputesResult(t *testing.T) {
	s, _ := New(threeQuestionQuiz(), localScore)
	require.NoError(t, s.Next(11))
	require.NoError(t, s.Next(22))
	require.NoError(t, s.Next(32)) // wrong

	result, err := s.Submit()
	require.NoError(t, err)
	require.Equal(t, PhaseSubmitted, s.Phase())
	require.Equal(t, 2, result.CorrectAnswers)
	require.Equal(t, 3, result.TotalQuestions)
	require.Equal(t, 66.7, result.Score)
	require.Equal(t, "D", result.Grade)

	stored, ok := s.Result()
	require.True(t, ok)
	require.Equal(t, result, stored)
}

func TestSubmitFailureKeepsAnswersForRetry(t *testing.T) {
	calls := 0
	flaky := func(quiz *models.Quiz, answers []scoring.Answer) (scoring.Result, error) {
		calls++
		if calls == 1 {
			return scoring.Result{}, errors.New("scoring backend down")
		}
		return scoring.Score(quiz, answers), nil
	}

	s, _ := New(threeQuestionQuiz(), flaky)
	require.NoError(t, s.Next(11))
	require.NoError(t, s.Next(22))
	require.NoError(t, s.Next(31))

	_, err := s.Submit()
	require.Error(t, err)
	require.Equal(t, PhaseReviewing, s.Phase())
	require.Len(t, s.Answers(), 3)

	result, err := s.Submit()
	require.NoError(t, err)
	require.Equal(t, 3, result.CorrectAnswers)
	require.Equal(t, "A", result.Grade)
}

func TestRestartResetsSession(t *testing.T) {
	s, _ := New(threeQuestionQuiz(), localScore)
	require.NoError(t, s.Next(11))
	require.NoError(t, s.Next(22))
	require.NoError(t, s.Next(31))
	_, err := s.Submit()
	require.NoError(t, err)

	require.NoError(t, s.Restart())
	require.Equal(t, PhaseInProgress, s.Phase())
	require.Equal(t, 0, s.Index())
	require.Empty(t, s.Answers())

	_, ok := s.Result()
	require.False(t, ok)
}

func TestRestartOnlyAfterSubmit(t *testing.T) {
	s, _ := New(threeQuestionQuiz(), localScore)
	require.ErrorIs(t, s.Restart(), ErrWrongPhase)
}
