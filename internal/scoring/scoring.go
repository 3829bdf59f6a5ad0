// Package scoring grades a set of submitted answers against a quiz's
// canonical question and option set. It is pure: nothing is mutated or
// persisted, and identical inputs always produce identical results.
package scoring

import (
	"math"

	"quiz-app/internal/models"
)

// Answer is a taker's choice for one question. It exists only for the
// duration of scoring and is never stored.
type Answer struct {
	QuestionID uint `json:"questionId"`
	OptionID   uint `json:"answer"`
}

type Result struct {
	CorrectAnswers int     `json:"correctAnswers"`
	TotalQuestions int     `json:"totalQuestions"`
	Score          float64 `json:"score"`
	Grade          string  `json:"grade"`
}

// Score computes the result for one submission. Answers referencing
// question ids not present in the quiz are ignored; unanswered questions
// still count toward the denominator. A quiz with no questions yields the
// zero result with grade F rather than dividing by zero.
func Score(quiz *models.Quiz, answers []Answer) Result {
	total := len(quiz.Questions)
	if total == 0 {
		return Result{Grade: "F"}
	}

	correct := 0
	for _, answer := range answers {
		question := findQuestion(quiz, answer.QuestionID)
		if question == nil {
			continue
		}
		if opt := question.CorrectOption(); opt != nil && opt.ID == answer.OptionID {
			correct++
		}
	}

	percentage := math.Round(float64(correct)/float64(total)*1000) / 10

	return Result{
		CorrectAnswers: correct,
		TotalQuestions: total,
		Score:          percentage,
		Grade:          gradeFor(percentage),
	}
}

func findQuestion(quiz *models.Quiz, id uint) *models.Question {
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == id {
			return &quiz.Questions[i]
		}
	}
	return nil
}

// gradeFor maps a percentage to a letter grade, inclusive lower bounds.
func gradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}
