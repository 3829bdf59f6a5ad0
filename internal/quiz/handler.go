package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"quiz-app/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(uint)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload models.QuizPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrs := ValidateQuizPayload(&payload); fieldErrs != nil {
		writeValidationError(w, fieldErrs)
		return
	}

	quiz, err := h.service.CreateQuiz(userID, &payload)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error when create quiz")
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(quiz)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := quizIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid quiz id")
		return
	}

	quiz, err := h.service.GetQuiz(quizID)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			writeError(w, http.StatusNotFound, "Quiz not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error when get quiz")
		return
	}

	json.NewEncoder(w).Encode(quiz)
}

func (h *Handler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := quizIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid quiz id")
		return
	}

	var payload models.QuizPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrs := ValidateQuizPayload(&payload); fieldErrs != nil {
		writeValidationError(w, fieldErrs)
		return
	}

	quiz, err := h.service.UpdateQuiz(quizID, &payload)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			writeError(w, http.StatusNotFound, "Quiz not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error when update quiz")
		return
	}

	json.NewEncoder(w).Encode(quiz)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := quizIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid quiz id")
		return
	}

	if err := h.service.DeleteQuiz(quizID); err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			writeError(w, http.StatusNotFound, "Quiz not found")
			return
		}
		writeError(w, http.StatusBadRequest, "Failed when delete quiz")
		return
	}

	json.NewEncoder(w).Encode(map[string]uint{"id": quizID})
}

func (h *Handler) GetMyQuizzes(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(uint)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summaries, err := h.service.GetQuizzesByCreator(userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error when get quizzes")
		return
	}

	json.NewEncoder(w).Encode(summaries)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var payload models.SubmitPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrs := ValidateSubmitPayload(&payload); fieldErrs != nil {
		writeValidationError(w, fieldErrs)
		return
	}

	result, err := h.service.SubmitAnswers(&payload)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			writeError(w, http.StatusNotFound, "Quiz not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error when score submission")
		return
	}

	json.NewEncoder(w).Encode(result)
}

func quizIDFromRequest(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{"message": message},
	})
}

func writeValidationError(w http.ResponseWriter, fieldErrs []FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":  map[string]string{"message": "Bad Request"},
		"errors": fieldErrs,
	})
}
