package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidPreference  = errors.New("invalid preference key")
	preferenceKeyPattern  = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{0,63}$`)
	maxExportHistoryLimit = int64(500)
)

const schema = `
create table if not exists report_exports (
	id uuid primary key,
	operator_id text not null,
	outlet_id text not null default '',
	category text not null,
	format text not null,
	filename text not null,
	object_url text,
	row_count integer not null default 0,
	created_at timestamptz not null default now()
);
create index if not exists report_exports_created_at_idx on report_exports (created_at desc);
create table if not exists backoffice_preferences (
	operator_id text not null,
	key text not null,
	value jsonb not null,
	updated_at timestamptz not null default now(),
	primary key (operator_id, key)
);
`

type ExportRecord struct {
	ID         uuid.UUID `json:"id"`
	OperatorID string    `json:"operatorId"`
	OutletID   string    `json:"outletId"`
	Category   string    `json:"category"`
	Format     string    `json:"format"`
	Filename   string    `json:"filename"`
	ObjectURL  *string   `json:"objectUrl"`
	RowCount   int       `json:"rowCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Preference struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Store persists the export audit log and operator preferences in Postgres.
type Store struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// RecordExport inserts rec, assigning an id and timestamp when missing.
func (s *Store) RecordExport(ctx context.Context, rec ExportRecord) (ExportRecord, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(ctx, `
		insert into report_exports (id, operator_id, outlet_id, category, format, filename, object_url, row_count, created_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, rec.ID, rec.OperatorID, rec.OutletID, rec.Category, rec.Format, rec.Filename, rec.ObjectURL, rec.RowCount, rec.CreatedAt)
	if err != nil {
		return ExportRecord{}, fmt.Errorf("record export: %w", err)
	}
	return rec, nil
}

// ListExports returns the newest exports first.
func (s *Store) ListExports(ctx context.Context, limit int64) ([]ExportRecord, error) {
	rows, err := s.db.Query(ctx, `
		select id, operator_id, outlet_id, category, format, filename, object_url, row_count, created_at
		from report_exports
		order by created_at desc
		limit $1
	`, ClampLimit(limit, 50))
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	out := []ExportRecord{}
	for rows.Next() {
		var (
			rec       ExportRecord
			objectURL pgtype.Text
		)
		if err := rows.Scan(&rec.ID, &rec.OperatorID, &rec.OutletID, &rec.Category, &rec.Format, &rec.Filename, &objectURL, &rec.RowCount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		if objectURL.Valid {
			v := objectURL.String
			rec.ObjectURL = &v
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) GetPreference(ctx context.Context, operatorID, key string) (Preference, error) {
	if err := ValidatePreferenceKey(key); err != nil {
		return Preference{}, err
	}
	pref := Preference{Key: key}
	var value []byte
	err := s.db.QueryRow(ctx, `
		select value, updated_at from backoffice_preferences where operator_id = $1 and key = $2
	`, operatorID, key).Scan(&value, &pref.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Preference{}, ErrNotFound
	}
	if err != nil {
		return Preference{}, fmt.Errorf("get preference: %w", err)
	}
	pref.Value = value
	return pref, nil
}

func (s *Store) SetPreference(ctx context.Context, operatorID, key string, value json.RawMessage) (Preference, error) {
	if err := ValidatePreferenceKey(key); err != nil {
		return Preference{}, err
	}
	if !json.Valid(value) {
		return Preference{}, fmt.Errorf("%w: value must be JSON", ErrInvalidPreference)
	}
	pref := Preference{Key: key, Value: value}
	err := s.db.QueryRow(ctx, `
		insert into backoffice_preferences (operator_id, key, value, updated_at)
		values ($1, $2, $3, now())
		on conflict (operator_id, key)
		do update set value = excluded.value, updated_at = now()
		returning updated_at
	`, operatorID, key, []byte(value)).Scan(&pref.UpdatedAt)
	if err != nil {
		return Preference{}, fmt.Errorf("set preference: %w", err)
	}
	return pref, nil
}

func ValidatePreferenceKey(key string) error {
	if !preferenceKeyPattern.MatchString(strings.TrimSpace(key)) || key != strings.TrimSpace(key) {
		return fmt.Errorf("%w: %q", ErrInvalidPreference, key)
	}
	return nil
}

// ClampLimit keeps list limits within (0, 500], using fallback for non-positive values.
func ClampLimit(limit, fallback int64) int64 {
	if limit <= 0 {
		limit = fallback
	}
	if limit > maxExportHistoryLimit {
		limit = maxExportHistoryLimit
	}
	return limit
}
