package branches

import (
	"time"

	"github.com/example/branch-scheduler/internal/schedule"
	"github.com/google/uuid"
)

// Branch is one restaurant location and its reservation settings. Schedule is
// the published weekly schedule, always valid. Draft holds the schedule being
// edited while a settings session is open; it may contain half-typed slot
// values and is nil when no session is open.
type Branch struct {
	ID                  uuid.UUID
	Name                string
	ReservationDuration int
	Schedule            schedule.WeeklySchedule
	Draft               *schedule.WeeklySchedule
	DraftUpdatedAt      *time.Time
	Enabled             bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func New(name string) Branch {
	now := time.Now().UTC()
	return Branch{
		ID:                  uuid.New(),
		Name:                name,
		ReservationDuration: 60,
		Schedule:            schedule.NewWeeklySchedule(),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
