package quiz

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"quiz-app/internal/models"
)

var ErrQuizNotFound = errors.New("quiz not found")

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateQuiz inserts the quiz row and its questions and options in one
// transaction, preserving submitted order through the position columns.
func (r *Repository) CreateQuiz(quiz *models.Quiz) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return insertQuizTree(tx, quiz)
	})
	if err != nil {
		log.Printf("Error creating quiz: %v", err)
		return err
	}
	log.Printf("Created quiz with ID: %d", quiz.ID)
	return nil
}

func insertQuizTree(tx *gorm.DB, quiz *models.Quiz) error {
	questions := quiz.Questions
	quiz.Questions = nil
	if err := tx.Create(quiz).Error; err != nil {
		return err
	}

	for i := range questions {
		question := &questions[i]
		question.QuizID = quiz.ID

		options := question.Options
		question.Options = nil
		if err := tx.Create(question).Error; err != nil {
			return err
		}

		for j := range options {
			options[j].QuestionID = question.ID
		}
		if len(options) > 0 {
			if err := tx.Create(&options).Error; err != nil {
				return err
			}
		}
		question.Options = options
	}

	quiz.Questions = questions
	return nil
}

// GetQuizByID fetches a quiz with questions and options eagerly loaded in
// stored order.
func (r *Repository) GetQuizByID(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.position ASC")
		}).
		First(&quiz, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		log.Printf("Error getting quiz %d: %v", quizID, err)
		return nil, err
	}
	return &quiz, nil
}

// ReplaceQuiz applies full-replace update semantics: verify the quiz
// exists, drop its question/option set, update the quiz row, re-insert the
// new set. The whole sequence runs in one transaction so a failure never
// leaves a quiz without questions.
func (r *Repository) ReplaceQuiz(quizID uint, replacement *models.Quiz) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Quiz
		if err := tx.First(&existing, quizID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuizNotFound
			}
			return err
		}

		if err := tx.Where("question_id IN (?)",
			tx.Model(&models.Question{}).Select("id").Where("quiz_id = ?", quizID),
		).Delete(&models.Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"title":       replacement.Title,
			"description": replacement.Description,
		}).Error; err != nil {
			return err
		}

		questions := replacement.Questions
		for i := range questions {
			question := &questions[i]
			question.QuizID = quizID

			options := question.Options
			question.Options = nil
			if err := tx.Create(question).Error; err != nil {
				return err
			}

			for j := range options {
				options[j].QuestionID = question.ID
			}
			if len(options) > 0 {
				if err := tx.Create(&options).Error; err != nil {
					return err
				}
			}
			question.Options = options
		}

		replacement.ID = quizID
		replacement.CreatorID = existing.CreatorID
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrQuizNotFound) {
			log.Printf("Error replacing quiz %d: %v", quizID, err)
		}
		return err
	}
	log.Printf("Replaced quiz with ID: %d", quizID)
	return nil
}

// DeleteQuiz removes the quiz row; questions and options go with it via
// the foreign-key cascade configured at migration.
func (r *Repository) DeleteQuiz(quizID uint) error {
	result := r.db.Delete(&models.Quiz{}, quizID)
	if result.Error != nil {
		log.Printf("Error deleting quiz %d: %v", quizID, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuizNotFound
	}
	return nil
}

// GetQuizSummariesByCreator returns the creator's quizzes with a question
// count only, for the dashboard listing.
func (r *Repository) GetQuizSummariesByCreator(creatorID uint) ([]models.QuizSummary, error) {
	var summaries []models.QuizSummary

	err := r.db.Raw(`
        SELECT q.id, q.title, q.description, COUNT(qu.id) AS question_count
        FROM quizzes q
        LEFT JOIN questions qu ON qu.quiz_id = q.id
        WHERE q.creator_id = ?
        GROUP BY q.id, q.title, q.description
        ORDER BY q.id
    `, creatorID).Scan(&summaries).Error
	if err != nil {
		log.Printf("Error getting quizzes for creator %d: %v", creatorID, err)
		return nil, err
	}

	return summaries, nil
}
