package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	msgInternalError = "Lỗi server"
	maxBodyBytes     = 1 << 20
)

// ErrorResponse единый формат ответа с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse ответ без данных
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondMessage отправляет {success: true, message}
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, MessageResponse{Success: true, Message: message})
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Success: false, Message: message})
}

// RespondErrorWithDetail отправляет ответ с ошибкой и деталями в поле error
func RespondErrorWithDetail(w http.ResponseWriter, status int, message, detail string) {
	RespondJSON(w, status, ErrorResponse{Success: false, Message: message, Error: detail})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError отправляет 500. Детали ошибки клиенту не передаются.
func RespondInternalError(w http.ResponseWriter, message ...string) {
	msg := msgInternalError
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	RespondError(w, http.StatusInternalServerError, msg)
}

// DecodeJSON декодирует тело запроса, тело ограничено 1 МБ
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("decode json: %w", err)
	}

	return nil
}
