package models

import "errors"

// ErrRejected - единая ошибка для всех отклонённых операций.
// Причины отклонения (дубликат, пустое поле, неверный статус, чужой тендер)
// намеренно неразличимы для вызывающего.
var ErrRejected = errors.New("rejected")

// ErrorResponse описывает ошибку с кодом и сообщением.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Message    string `json:"reason"`
}

// NewErrorResponse создает новую ошибку с кодом и сообщением.
func NewErrorResponse(statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    message}
}

// Реализация метода Error() для удовлетворения интерфейса error.
func (e *ErrorResponse) Error() string {
	return e.Message
}

// OperationResponse - результат изменяющей операции.
type OperationResponse struct {
	Success bool     `json:"success"`
	Winner  Identity `json:"winner,omitempty"`
}
