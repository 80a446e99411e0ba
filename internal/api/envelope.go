package api

import (
	"io"
	"log"
	"net/http"

	json "github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

// envelope is the response shape every endpoint returns.
type envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeEnvelope(w, status, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeEnvelope(w, status, envelope{Success: false, Error: &message})
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	b, err := json.Marshal(env)
	if err != nil {
		log.Printf("encode response: %v", err)
		http.Error(w, `{"success":false,"data":null,"error":"encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func decodeBody(r *http.Request, v any) error {
	b, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
