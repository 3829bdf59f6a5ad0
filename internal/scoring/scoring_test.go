package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"quiz-app/internal/models"
)

// buildQuiz makes n questions with ids 1..n, each with two options where
// the first (id = questionID*10+1) is correct.
func buildQuiz(n int) *models.Quiz {
	quiz := &models.Quiz{ID: 1, Title: "Go basics"}
	for i := 1; i <= n; i++ {
		qid := uint(i)
		quiz.Questions = append(quiz.Questions, models.Question{
			ID:     qid,
			QuizID: 1,
			Text:   "question",
			Options: []models.Option{
				{ID: qid*10 + 1, QuestionID: qid, Text: "right", IsCorrect: true},
				{ID: qid*10 + 2, QuestionID: qid, Text: "wrong"},
			},
		})
	}
	return quiz
}

func correctAnswer(questionID uint) Answer {
	return Answer{QuestionID: questionID, OptionID: questionID*10 + 1}
}

func TestScoreAllCorrect(t *testing.T) {
	quiz := buildQuiz(4)
	answers := []Answer{correctAnswer(1), correctAnswer(2), correctAnswer(3), correctAnswer(4)}

	result := Score(quiz, answers)

	require.Equal(t, 4, result.CorrectAnswers)
	require.Equal(t, 4, result.TotalQuestions)
	require.Equal(t, 100.0, result.Score)
	require.Equal(t, "A", result.Grade)
}

func TestScoreOmittedAnswerCountsInDenominator(t *testing.T) {
	quiz := buildQuiz(10)
	var answers []Answer
	for i := 1; i <= 9; i++ {
		answers = append(answers, correctAnswer(uint(i)))
	}

	result := Score(quiz, answers)

	require.Equal(t, 9, result.CorrectAnswers)
	require.Equal(t, 10, result.TotalQuestions)
	require.Equal(t, 90.0, result.Score)
	require.Equal(t, "A", result.Grade)
}

func TestScoreHalfCorrectIsFailingGrade(t *testing.T) {
	quiz := buildQuiz(4)
	answers := []Answer{
		correctAnswer(1),
		correctAnswer(2),
		{QuestionID: 3, OptionID: 32},
		{QuestionID: 4, OptionID: 42},
	}

	result := Score(quiz, answers)

	require.Equal(t, 2, result.CorrectAnswers)
	require.Equal(t, 50.0, result.Score)
	require.Equal(t, "F", result.Grade)
}

func TestScoreIgnoresUnknownQuestionIDs(t *testing.T) {
	quiz := buildQuiz(2)
	answers := []Answer{
		correctAnswer(1),
		{QuestionID: 99, OptionID: 991}, // not in the quiz
	}

	result := Score(quiz, answers)

	require.Equal(t, 1, result.CorrectAnswers)
	require.Equal(t, 2, result.TotalQuestions)
	require.Equal(t, 50.0, result.Score)
}

func TestScoreZeroQuestions(t *testing.T) {
	quiz := &models.Quiz{ID: 1, Title: "empty"}

	result := Score(quiz, []Answer{{QuestionID: 1, OptionID: 11}})

	require.Equal(t, 0, result.CorrectAnswers)
	require.Equal(t, 0, result.TotalQuestions)
	require.Equal(t, 0.0, result.Score)
	require.Equal(t, "F", result.Grade)
}

func TestScoreRoundsToOneDecimal(t *testing.T) {
	quiz := buildQuiz(3)
	answers := []Answer{correctAnswer(1)}

	result := Score(quiz, answers)

	require.Equal(t, 33.3, result.Score)
	require.Equal(t, "F", result.Grade)
}

func TestScoreGradeBoundsInclusive(t *testing.T) {
	cases := []struct {
		correct int
		total   int
		grade   string
	}{
		{9, 10, "A"},
		{8, 10, "B"},
		{7, 10, "C"},
		{6, 10, "D"},
		{5, 10, "F"},
	}

	for _, tc := range cases {
		quiz := buildQuiz(tc.total)
		var answers []Answer
		for i := 1; i <= tc.correct; i++ {
			answers = append(answers, correctAnswer(uint(i)))
		}
		result := Score(quiz, answers)
		require.Equal(t, tc.grade, result.Grade, "%d/%d", tc.correct, tc.total)
	}
}

func TestScoreIsDeterministicAndPure(t *testing.T) {
	quiz := buildQuiz(5)
	answers := []Answer{correctAnswer(2), correctAnswer(4), {QuestionID: 5, OptionID: 52}}

	first := Score(quiz, answers)
	second := Score(quiz, answers)

	require.Equal(t, first, second)
	require.Len(t, quiz.Questions, 5)
	require.True(t, quiz.Questions[0].Options[0].IsCorrect)
}
