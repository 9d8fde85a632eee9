package web

import (
	"errors"
	"net/http"

	"github.com/example/branch-scheduler/internal/branches"
	"github.com/example/branch-scheduler/internal/db"
	"github.com/example/branch-scheduler/internal/internaltypes"
	json "github.com/goccy/go-json"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errResponse{Error: msg})
}

// writeDomainError maps service errors onto status codes. Validation outcomes
// are values carried in normal responses; only lifecycle misuse and missing
// records land here.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound), errors.Is(err, internaltypes.ErrNotFound):
		writeError(w, http.StatusNotFound, "branch not found")
	case errors.Is(err, branches.ErrNoDraft):
		writeError(w, http.StatusConflict, "no draft open")
	case errors.Is(err, branches.ErrNotConfirmed):
		writeError(w, http.StatusConflict, "confirmation required")
	case errors.Is(err, branches.ErrInvalidSchedule):
		writeError(w, http.StatusUnprocessableEntity, "schedule is not valid")
	case errors.Is(err, branches.ErrInvalidDuration):
		writeError(w, http.StatusUnprocessableEntity, "reservation duration is not valid")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) readJSON(r *http.Request, dst any) error {
	defer func() { _ = r.Body.Close() }()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return s.validate.Struct(dst)
}
