package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Success: false, Error: message})
}
