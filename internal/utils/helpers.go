package utils

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/BOSTONE069/procurement-service/internal/models"
)

// SendErrorResponse отправляет ошибку в формате JSON.
func SendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := models.ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
	}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Println(err)
	}
}

// SendJSON отправляет произвольный ответ в формате JSON.
func SendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println(err)
	}
}

// SendRejection отправляет единый ответ об отклонённой операции.
// Тело одинаково для всех причин отклонения.
func SendRejection(w http.ResponseWriter) {
	SendJSON(w, http.StatusBadRequest, models.OperationResponse{Success: false})
}

// CallerIdentity извлекает идентичность вызывающего из параметра username.
func CallerIdentity(r *http.Request) models.Identity {
	return models.Identity(strings.TrimSpace(r.URL.Query().Get("username")))
}
