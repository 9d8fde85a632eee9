package web

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/example/branch-scheduler/internal/branches"
	"github.com/example/branch-scheduler/internal/schedule"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type branchDTO struct {
	ID                  string                   `json:"id"`
	Name                string                   `json:"name"`
	ReservationDuration int                      `json:"reservation_duration"`
	Schedule            schedule.WeeklySchedule  `json:"schedule"`
	Draft               *schedule.WeeklySchedule `json:"draft,omitempty"`
	Enabled             bool                     `json:"enabled"`
	UpdatedAt           time.Time                `json:"updated_at"`
}

func toBranchDTO(b branches.Branch) branchDTO {
	return branchDTO{
		ID:                  b.ID.String(),
		Name:                b.Name,
		ReservationDuration: b.ReservationDuration,
		Schedule:            b.Schedule,
		Draft:               b.Draft,
		Enabled:             b.Enabled,
		UpdatedAt:           b.UpdatedAt,
	}
}

type draftStateDTO struct {
	Schedule schedule.WeeklySchedule `json:"schedule"`
	Valid    bool                    `json:"valid"`
	Errors   map[string][]string     `json:"errors"`
}

func toDraftStateDTO(st branches.DraftState) draftStateDTO {
	out := draftStateDTO{Schedule: st.Schedule, Valid: st.Valid, Errors: map[string][]string{}}
	for day, codes := range st.Errors {
		out.Errors[string(day)] = codes
	}
	return out
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := s.readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "username and password required")
		return
	}
	id, err := s.Auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if err := s.Auth.SetSession(w, r, id); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request) {
	s.Auth.ClearSession(w)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleBranchList(w http.ResponseWriter, r *http.Request) {
	bs, err := s.Repo.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]branchDTO, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBranchDTO(b))
	}
	writeJSON(w, http.StatusOK, out)
}

type createBranchRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

func (s *Server) handleBranchCreate(w http.ResponseWriter, r *http.Request) {
	var req createBranchRequest
	if err := s.readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}
	b := branches.New(req.Name)
	if err := s.Repo.Create(r.Context(), b); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBranchDTO(b))
}

func (s *Server) handleBranchGet(w http.ResponseWriter, r *http.Request) {
	id, ok := s.branchID(w, r)
	if !ok {
		return
	}
	b, err := s.Repo.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBranchDTO(b))
}

type setDurationRequest struct {
	// Duration arrives as whatever the settings field held: number, string
	// or null. The sanitizer sorts it out.
	Duration any `json:"duration"`
}

func (s *Server) handleSetDuration(w http.ResponseWriter, r *http.Request) {
	id, ok := s.branchID(w, r)
	if !ok {
		return
	}
	var req setDurationRequest
	if err := s.readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	minutes, err := s.Branches.SetDuration(r.Context(), id, req.Duration)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"reservation_duration": minutes})
}

type setEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

func (s *Server) handleSetEnabled(w http.ResponseWriter, r *http.Request) {
	id, ok := s.branchID(w, r)
	if !ok {
		return
	}
	var req setEnabledRequest
	if err := s.readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := s.Repo.SetEnabled(r.Context(), id, req.Enabled); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDraftOpen(w http.ResponseWriter, r *http.Request) {
	id, ok := s.branchID(w, r)
	if !ok {
		return
	}
	st, err := s.Branches.OpenDraft(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDraftStateDTO(st))
}

func (s *Server) handleDraftDiscard(w http.ResponseWriter, r *http.Request) {
	id, ok := s.branchID(w, r)
	if !ok {
		return
	}
	if err := s.Branches.Discard(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDraftPublish(w http.ResponseWriter, r *http.Request) {
	id, ok := s.branchID(w, r)
	if !ok {
		return
	}
	b, err := s.Branches.Publish(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBranchDTO(b))
}

func (s *Server) handleDraftValidity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.branchID(w, r)
	if !ok {
		return
	}
	st, err := s.Branches.Validity(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftStateDTO(st))
}

type applyToAllRequest struct {
	SourceDay string `json:"source_day" validate:"required"`
	Confirmed bool   `json:"confirmed"`
}

func (s *Server) handleDraftApplyToAll(w http.ResponseWriter, r *http.Request) {
	id, ok := s.branchID(w, r)
	if !ok {
		return
	}
	var req applyToAllRequest
	if err := s.readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "source_day required")
		return
	}
	day, err := schedule.ParseWeekday(req.SourceDay)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown source_day")
		return
	}
	confirm := func(context.Context) (bool, error) { return req.Confirmed, nil }
	st, err := s.Branches.ApplyToAllDays(r.Context(), id, day, confirm)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftStateDTO(st))
}

func (s *Server) handleSlotAdd(w http.ResponseWriter, r *http.Request) {
	id, day, ok := s.branchDay(w, r)
	if !ok {
		return
	}
	st, err := s.Branches.AddSlot(r.Context(), id, day)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftStateDTO(st))
}

type updateSlotRequest struct {
	Field string `json:"field" validate:"required,oneof=start end"`
	Value string `json:"value"`
}

func (s *Server) handleSlotUpdate(w http.ResponseWriter, r *http.Request) {
	id, day, ok := s.branchDay(w, r)
	if !ok {
		return
	}
	index, ok := s.slotIndex(w, r)
	if !ok {
		return
	}
	var req updateSlotRequest
	if err := s.readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "field must be start or end")
		return
	}
	st, err := s.Branches.UpdateSlot(r.Context(), id, day, index, schedule.Field(req.Field), req.Value)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftStateDTO(st))
}

func (s *Server) handleSlotRemove(w http.ResponseWriter, r *http.Request) {
	id, day, ok := s.branchDay(w, r)
	if !ok {
		return
	}
	index, ok := s.slotIndex(w, r)
	if !ok {
		return
	}
	st, err := s.Branches.RemoveSlot(r.Context(), id, day, index)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDraftStateDTO(st))
}

func (s *Server) branchID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid branch id")
		return uuid.UUID{}, false
	}
	return id, true
}

func (s *Server) branchDay(w http.ResponseWriter, r *http.Request) (uuid.UUID, schedule.Weekday, bool) {
	id, ok := s.branchID(w, r)
	if !ok {
		return uuid.UUID{}, "", false
	}
	day, err := schedule.ParseWeekday(chi.URLParam(r, "day"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown weekday")
		return uuid.UUID{}, "", false
	}
	return id, day, true
}

func (s *Server) slotIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		writeError(w, http.StatusBadRequest, "invalid slot index")
		return 0, false
	}
	return index, true
}
