package rest

import (
	"encoding/json"
	"net/http"

	"github.com/groovestream/users/internal/server/models"
)

type msgResponse struct {
	Msg string `json:"msg"`
}

type userResponse struct {
	Msg   string       `json:"msg"`
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type meResponse struct {
	User *models.User `json:"user"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
