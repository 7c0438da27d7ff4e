package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encode JSON response")
	}
}

// respondDetail writes the standard failure envelope: a detail message plus
// the status code mirrored into the body.
func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]interface{}{
		"detail":      detail,
		"status_code": status,
	})
}

// respondFields writes a validation failure as a per-field detail mapping
// at the top level of the body.
func respondFields(w http.ResponseWriter, status int, fields map[string][]string) {
	body := make(map[string]interface{}, len(fields)+1)
	for field, messages := range fields {
		body[field] = messages
	}
	body["status_code"] = status
	respondJSON(w, status, body)
}

// respondRaw hands back an upstream payload verbatim, outside the standard
// envelope.
func respondRaw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		log.Error().Err(err).Msg("write raw response")
	}
}
