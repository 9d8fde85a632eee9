package branches

import (
	"context"
	"time"

	"github.com/example/branch-scheduler/internal/db"
	"github.com/example/branch-scheduler/internal/schedule"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Repository is what the service layer needs from storage. The pgx
// implementation below is the real one; tests use an in-memory fake.
type Repository interface {
	Create(ctx context.Context, b Branch) error
	GetByID(ctx context.Context, id uuid.UUID) (Branch, error)
	List(ctx context.Context) ([]Branch, error)
	SaveDraft(ctx context.Context, id uuid.UUID, draft schedule.WeeklySchedule) error
	DiscardDraft(ctx context.Context, id uuid.UUID) error
	Publish(ctx context.Context, id uuid.UUID, ws schedule.WeeklySchedule) error
	SetDuration(ctx context.Context, id uuid.UUID, minutes int) error
	SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error
	StaleDrafts(ctx context.Context, olderThan time.Time) ([]uuid.UUID, error)
}

type Repo struct{ db *db.DB }

func NewRepo(d *db.DB) *Repo { return &Repo{db: d} }

const branchCols = `id, name, reservation_duration, schedule, draft, draft_updated_at, enabled, created_at, updated_at`

func (r *Repo) Create(ctx context.Context, b Branch) error {
	sched, err := json.Marshal(b.Schedule)
	if err != nil {
		return err
	}
	return r.db.Exec(ctx, `
INSERT INTO branches(id, name, reservation_duration, schedule, enabled, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		b.ID, b.Name, b.ReservationDuration, sched, b.Enabled, b.CreatedAt, b.UpdatedAt,
	)
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Branch, error) {
	row := r.db.QueryRow(ctx, `SELECT `+branchCols+` FROM branches WHERE id=$1`, id)
	b, err := scanBranch(row)
	if err != nil {
		return Branch{}, db.WrapNotFound(err)
	}
	return b, nil
}

func (r *Repo) List(ctx context.Context) ([]Branch, error) {
	rows, err := r.db.Query(ctx, `SELECT `+branchCols+` FROM branches ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBranch(row db.Row) (Branch, error) {
	var b Branch
	var sched, draft []byte
	if err := row.Scan(&b.ID, &b.Name, &b.ReservationDuration, &sched, &draft, &b.DraftUpdatedAt, &b.Enabled, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return Branch{}, err
	}
	if err := json.Unmarshal(sched, &b.Schedule); err != nil {
		return Branch{}, err
	}
	if draft != nil {
		var d schedule.WeeklySchedule
		if err := json.Unmarshal(draft, &d); err != nil {
			return Branch{}, err
		}
		b.Draft = &d
	}
	return b, nil
}

func (r *Repo) SaveDraft(ctx context.Context, id uuid.UUID, draft schedule.WeeklySchedule) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return r.exec1(ctx, `UPDATE branches SET draft=$2, draft_updated_at=now(), updated_at=now() WHERE id=$1`, id, raw)
}

func (r *Repo) DiscardDraft(ctx context.Context, id uuid.UUID) error {
	return r.exec1(ctx, `UPDATE branches SET draft=NULL, draft_updated_at=NULL, updated_at=now() WHERE id=$1`, id)
}

func (r *Repo) Publish(ctx context.Context, id uuid.UUID, ws schedule.WeeklySchedule) error {
	raw, err := json.Marshal(ws)
	if err != nil {
		return err
	}
	return r.exec1(ctx, `
UPDATE branches SET schedule=$2, draft=NULL, draft_updated_at=NULL, updated_at=now() WHERE id=$1`, id, raw)
}

func (r *Repo) SetDuration(ctx context.Context, id uuid.UUID, minutes int) error {
	return r.exec1(ctx, `UPDATE branches SET reservation_duration=$2, updated_at=now() WHERE id=$1`, id, minutes)
}

func (r *Repo) SetEnabled(ctx context.Context, id uuid.UUID, enabled bool) error {
	return r.exec1(ctx, `UPDATE branches SET enabled=$2, updated_at=now() WHERE id=$1`, id, enabled)
}

func (r *Repo) StaleDrafts(ctx context.Context, olderThan time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM branches WHERE draft IS NOT NULL AND draft_updated_at < $1`, olderThan)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// exec1 runs an update that must hit an existing branch; a zero-row update
// means the id does not exist.
func (r *Repo) exec1(ctx context.Context, sql string, id uuid.UUID, args ...any) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM branches WHERE id=$1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return db.ErrNotFound
	}
	return r.db.Exec(ctx, sql, append([]any{id}, args...)...)
}
