package quiz

import (
	"log"

	"quiz-app/internal/models"
	"quiz-app/internal/scoring"
	"quiz-app/pkg/cache"
)

type Service struct {
	repo  *Repository
	cache *cache.RedisCache
}

func NewService(repo *Repository, cache *cache.RedisCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) CreateQuiz(creatorID uint, payload *models.QuizPayload) (*models.Quiz, error) {
	quiz := payload.ToQuiz(creatorID)

	if err := s.repo.CreateQuiz(quiz); err != nil {
		return nil, err
	}

	if err := s.cache.SetQuiz(quiz); err != nil {
		log.Printf("Error caching quiz %d: %v", quiz.ID, err)
	}
	return quiz, nil
}

func (s *Service) GetQuiz(quizID uint) (*models.Quiz, error) {
	// Try to get from cache first
	quiz, err := s.cache.GetQuiz(quizID)
	if err == nil {
		return quiz, nil
	}

	quiz, err = s.repo.GetQuizByID(quizID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetQuiz(quiz); err != nil {
		log.Printf("Error caching quiz %d: %v", quizID, err)
	}
	return quiz, nil
}

// UpdateQuiz applies full-replace semantics and returns the stored result.
func (s *Service) UpdateQuiz(quizID uint, payload *models.QuizPayload) (*models.Quiz, error) {
	replacement := payload.ToQuiz(0)

	if err := s.repo.ReplaceQuiz(quizID, replacement); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateQuiz(quizID); err != nil {
		log.Printf("Error invalidating cached quiz %d: %v", quizID, err)
	}

	return s.repo.GetQuizByID(quizID)
}

func (s *Service) DeleteQuiz(quizID uint) error {
	if err := s.repo.DeleteQuiz(quizID); err != nil {
		return err
	}

	if err := s.cache.InvalidateQuiz(quizID); err != nil {
		log.Printf("Error invalidating cached quiz %d: %v", quizID, err)
	}
	return nil
}

func (s *Service) GetQuizzesByCreator(creatorID uint) ([]models.QuizSummary, error) {
	return s.repo.GetQuizSummariesByCreator(creatorID)
}

// SubmitAnswers loads the quiz and grades the submission. Nothing about
// the submission is persisted; resubmitting yields the same result.
func (s *Service) SubmitAnswers(payload *models.SubmitPayload) (scoring.Result, error) {
	quiz, err := s.GetQuiz(payload.QuizID)
	if err != nil {
		return scoring.Result{}, err
	}

	answers := make([]scoring.Answer, len(payload.Answers))
	for i, a := range payload.Answers {
		answers[i] = scoring.Answer{
			QuestionID: a.QuestionID,
			OptionID:   a.Answer,
		}
	}

	return scoring.Score(quiz, answers), nil
}
