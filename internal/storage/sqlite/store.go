package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/playforge/bangate/internal/model"
	"github.com/playforge/bangate/internal/storage"
	"github.com/playforge/bangate/internal/storage/sqlite/migrations"
)

const timeFormat = time.RFC3339Nano

// Store provides a SQLite-backed implementation of the storage interface.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

var _ storage.Store = (*Store)(nil)

const entryColumns = "id, license_key, player_id, player_name, system_username_hash, system_hardware_hash, created_at"

// FindCandidates issues a single OR-query across the non-nil identity
// fields. Column names are enumerated here; only values are bound, so
// user-supplied data never reaches the query text.
func (s *Store) FindCandidates(ctx context.Context, id model.NormalizedIdentity) ([]model.BlacklistEntry, error) {
	var conds []string
	var args []any

	addCond := func(column string, value *string) {
		if value == nil {
			return
		}
		conds = append(conds, fmt.Sprintf("LOWER(%s) = ?", column))
		args = append(args, *value)
	}

	addCond("license_key", id.LicenseKey)
	if id.PlayerID != "" {
		addCond("player_id", &id.PlayerID)
	}
	if id.PlayerName != "" {
		addCond("player_name", &id.PlayerName)
	}
	addCond("system_username_hash", id.SystemUsernameHash)
	addCond("system_hardware_hash", id.SystemHardwareHash)

	if len(conds) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf("SELECT %s FROM blacklist WHERE %s", entryColumns, strings.Join(conds, " OR "))
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query blacklist: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanEntries(rows)
}

func (s *Store) AddEntry(ctx context.Context, entry *model.BlacklistEntry) error {
	if entry.IsEmpty() {
		return model.ErrEmptyEntry
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO blacklist ("+entryColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		entry.ID,
		nullable(entry.LicenseKey),
		nullable(entry.PlayerID),
		nullable(entry.PlayerName),
		nullable(entry.SystemUsernameHash),
		nullable(entry.SystemHardwareHash),
		entry.CreatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert blacklist entry: %w", err)
	}
	return nil
}

func (s *Store) ListEntries(ctx context.Context) ([]model.BlacklistEntry, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM blacklist ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list blacklist entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanEntries(rows)
}

func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	res, err := s.sqlDB.ExecContext(ctx, "DELETE FROM blacklist WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete blacklist entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete blacklist entry: %w", err)
	}
	if affected == 0 {
		return model.ErrEntryNotFound
	}
	return nil
}

// InsertAudit appends the raw submission to the audit log. Identity values
// go in exactly as received: no normalization on this path.
func (s *Store) InsertAudit(ctx context.Context, rec *model.AuditRecord) error {
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO audit_log (timestamp, license_key, player_id, player_name, system_username_hash, system_hardware_hash)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Timestamp.Format(timeFormat),
		nullable(rec.Identity.LicenseKey),
		rec.Identity.PlayerID,
		rec.Identity.PlayerName,
		nullable(rec.Identity.SystemUsernameHash),
		nullable(rec.Identity.SystemHardwareHash),
	)
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

func (s *Store) ListAudit(ctx context.Context, limit int) ([]model.AuditRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, timestamp, license_key, player_id, player_name, system_username_hash, system_hardware_hash
		 FROM audit_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.AuditRecord
	for rows.Next() {
		var (
			rec          model.AuditRecord
			ts           string
			licenseKey   sql.NullString
			usernameHash sql.NullString
			hardwareHash sql.NullString
		)
		if err := rows.Scan(&rec.ID, &ts, &licenseKey, &rec.Identity.PlayerID, &rec.Identity.PlayerName, &usernameHash, &hardwareHash); err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}
		parsed, err := time.Parse(timeFormat, ts)
		if err != nil {
			return nil, fmt.Errorf("parse audit timestamp: %w", err)
		}
		rec.Timestamp = parsed
		rec.Identity.LicenseKey = fromNull(licenseKey)
		rec.Identity.SystemUsernameHash = fromNull(usernameHash)
		rec.Identity.SystemHardwareHash = fromNull(hardwareHash)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanEntries(rows *sql.Rows) ([]model.BlacklistEntry, error) {
	var entries []model.BlacklistEntry
	for rows.Next() {
		var (
			entry        model.BlacklistEntry
			licenseKey   sql.NullString
			playerID     sql.NullString
			playerName   sql.NullString
			usernameHash sql.NullString
			hardwareHash sql.NullString
			createdAt    string
		)
		if err := rows.Scan(&entry.ID, &licenseKey, &playerID, &playerName, &usernameHash, &hardwareHash, &createdAt); err != nil {
			return nil, fmt.Errorf("scan blacklist entry: %w", err)
		}
		parsed, err := time.Parse(timeFormat, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse entry created_at: %w", err)
		}
		entry.CreatedAt = parsed
		entry.LicenseKey = fromNull(licenseKey)
		entry.PlayerID = fromNull(playerID)
		entry.PlayerName = fromNull(playerName)
		entry.SystemUsernameHash = fromNull(usernameHash)
		entry.SystemHardwareHash = fromNull(hardwareHash)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func nullable(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func fromNull(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
