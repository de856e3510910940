package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse: tüm hata yanıtlarının gövdesi.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse: gövdesi yalnızca bilgi mesajı olan başarılı yanıtlar.
type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return
	}
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	JSON(w, status, ErrorResponse{Error: errMsg})
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageResponse{Message: msg})
}
