package branches

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/branch-scheduler/internal/schedule"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNoDraft means an edit arrived for a branch with no open settings
	// session.
	ErrNoDraft = errors.New("no draft open")
	// ErrNotConfirmed means a destructive edit was attempted without the
	// caller's confirmation.
	ErrNotConfirmed = errors.New("not confirmed")
	// ErrInvalidSchedule blocks publishing a draft that fails validation.
	ErrInvalidSchedule = errors.New("schedule is not valid")
	// ErrInvalidDuration blocks publishing with an out-of-bounds duration.
	ErrInvalidDuration = errors.New("reservation duration is not valid")
)

// Service orchestrates the draft editing lifecycle: open a draft, mutate it
// through the pure editor functions, observe validity after every step,
// publish or discard. All mutations persist the new draft value; the previous
// one is never modified in place.
type Service struct {
	repo   Repository
	bounds schedule.DurationBounds
	log    *zap.Logger
}

func NewService(repo Repository, bounds schedule.DurationBounds, log *zap.Logger) *Service {
	return &Service{repo: repo, bounds: bounds, log: log}
}

// DraftState is what every mutation reports back: the updated draft plus the
// recomputed whole-week validity.
type DraftState struct {
	Schedule schedule.WeeklySchedule
	Valid    bool
	Errors   map[schedule.Weekday][]string
}

func draftState(ws schedule.WeeklySchedule, v schedule.Validator) DraftState {
	ok, results := v.ValidateWeek(ws)
	st := DraftState{Schedule: ws, Valid: ok, Errors: map[schedule.Weekday][]string{}}
	for day, r := range results {
		if !r.OK {
			st.Errors[day] = r.Codes()
		}
	}
	return st
}

// OpenDraft starts a settings session by copying the published schedule into
// the draft. Reopening resets any prior draft.
func (s *Service) OpenDraft(ctx context.Context, id uuid.UUID) (DraftState, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DraftState{}, err
	}
	draft := b.Schedule.Clone()
	if err := s.repo.SaveDraft(ctx, id, draft); err != nil {
		return DraftState{}, err
	}
	s.log.Debug("draft opened", zap.String("branch", id.String()))
	return draftState(draft, schedule.DefaultValidator), nil
}

func (s *Service) draft(ctx context.Context, id uuid.UUID) (schedule.WeeklySchedule, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Draft == nil {
		return nil, ErrNoDraft
	}
	return *b.Draft, nil
}

func (s *Service) saveDraft(ctx context.Context, id uuid.UUID, ws schedule.WeeklySchedule) (DraftState, error) {
	if err := s.repo.SaveDraft(ctx, id, ws); err != nil {
		return DraftState{}, err
	}
	return draftState(ws, schedule.DefaultValidator), nil
}

// AddSlot appends the default slot to day. At capacity the draft is returned
// unchanged rather than failing; validity already carries the story.
func (s *Service) AddSlot(ctx context.Context, id uuid.UUID, day schedule.Weekday) (DraftState, error) {
	ws, err := s.draft(ctx, id)
	if err != nil {
		return DraftState{}, err
	}
	return s.saveDraft(ctx, id, schedule.AddSlot(ws, day))
}

func (s *Service) RemoveSlot(ctx context.Context, id uuid.UUID, day schedule.Weekday, index int) (DraftState, error) {
	ws, err := s.draft(ctx, id)
	if err != nil {
		return DraftState{}, err
	}
	return s.saveDraft(ctx, id, schedule.RemoveSlot(ws, day, index))
}

func (s *Service) UpdateSlot(ctx context.Context, id uuid.UUID, day schedule.Weekday, index int, field schedule.Field, value string) (DraftState, error) {
	ws, err := s.draft(ctx, id)
	if err != nil {
		return DraftState{}, err
	}
	return s.saveDraft(ctx, id, schedule.UpdateSlot(ws, day, index, field, value))
}

// ApplyToAllDays broadcasts the source day over the whole week, gated by the
// caller-supplied confirmation. A refused confirmation leaves the draft
// untouched and returns ErrNotConfirmed.
func (s *Service) ApplyToAllDays(ctx context.Context, id uuid.UUID, source schedule.Weekday, confirm schedule.ConfirmFunc) (DraftState, error) {
	ws, err := s.draft(ctx, id)
	if err != nil {
		return DraftState{}, err
	}
	ed := schedule.Editor{Confirm: confirm}
	next, applied, err := ed.ApplyToAllDays(ctx, ws, source)
	if err != nil {
		return DraftState{}, err
	}
	if !applied {
		return draftState(ws, schedule.DefaultValidator), ErrNotConfirmed
	}
	s.log.Info("broadcast applied", zap.String("branch", id.String()), zap.String("source", string(source)))
	return s.saveDraft(ctx, id, next)
}

// Validity recomputes the per-day validation of the current draft.
func (s *Service) Validity(ctx context.Context, id uuid.UUID) (DraftState, error) {
	ws, err := s.draft(ctx, id)
	if err != nil {
		return DraftState{}, err
	}
	return draftState(ws, schedule.DefaultValidator), nil
}

// Publish normalizes the draft, validates it with the publish-path validator
// and the duration gate, and replaces the branch's published schedule.
func (s *Service) Publish(ctx context.Context, id uuid.UUID) (Branch, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Branch{}, err
	}
	if b.Draft == nil {
		return Branch{}, ErrNoDraft
	}
	if !schedule.IsValidDuration(b.ReservationDuration, s.bounds) {
		return Branch{}, fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidDuration, b.ReservationDuration, s.bounds.Min, s.bounds.Max)
	}

	normalized := schedule.NormalizeWeek(*b.Draft)
	if ok, _ := schedule.PublishValidator.ValidateWeek(normalized); !ok {
		return Branch{}, ErrInvalidSchedule
	}
	if err := s.repo.Publish(ctx, id, normalized); err != nil {
		return Branch{}, err
	}
	s.log.Info("schedule published", zap.String("branch", id.String()))
	b.Schedule = normalized
	b.Draft = nil
	b.DraftUpdatedAt = nil
	return b, nil
}

// Discard ends a settings session without saving.
func (s *Service) Discard(ctx context.Context, id uuid.UUID) error {
	return s.repo.DiscardDraft(ctx, id)
}

// SetDuration sanitizes a raw duration value from the settings form and
// stores it. Values that sanitize to nothing are rejected.
func (s *Service) SetDuration(ctx context.Context, id uuid.UUID, raw any) (int, error) {
	minutes, ok := schedule.SanitizeDuration(raw, s.bounds)
	if !ok {
		return 0, ErrInvalidDuration
	}
	if err := s.repo.SetDuration(ctx, id, minutes); err != nil {
		return 0, err
	}
	return minutes, nil
}
