// Package sqlite implements the motor library on SQLite. Engines are
// stored as native TOML documents alongside indexed columns derived
// from the curve, so listings never need to parse the document.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/rocketdoc-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/domain"
	"github.com/custodia-labs/rocketdoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rocketdoc-cli/internal/nativedoc"
)

var _ driven.MotorStore = (*MotorStore)(nil)

// MotorStore is the SQLite-backed motor library.
type MotorStore struct {
	db   *sql.DB
	path string
}

// NewMotorStore opens (or creates) the motor library at the given data
// directory. An empty dataDir defaults to ~/.rocketdoc/data.
func NewMotorStore(dataDir string) (*MotorStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".rocketdoc", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "motors.db")

	// WAL mode for better concurrency.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &MotorStore{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *MotorStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *MotorStore) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *MotorStore) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}
	return nil
}

// Save inserts a motor. The indexed columns are derived from the engine
// here so they can never drift from the stored document.
func (s *MotorStore) Save(ctx context.Context, motor driven.StoredMotor) error {
	if motor.ID == "" {
		motor.ID = uuid.NewString()
	}
	if motor.CreatedAt.IsZero() {
		motor.CreatedAt = time.Now().UTC()
	}

	document, err := nativedoc.EncodeEngine(motor.Engine)
	if err != nil {
		return fmt.Errorf("encoding motor document: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO motors (id, designation, manufacturer, diameter, length,
			total_impulse, impulse_class, document, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, motor.ID, motor.Engine.Designation, motor.Engine.Manufacturer,
		motor.Engine.Diameter, motor.Engine.Length,
		motor.Engine.TotalImpulse(), motor.Engine.ImpulseClass(),
		string(document), motor.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("motor %q: %w", motor.Engine.Designation, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("saving motor: %w", err)
	}
	return nil
}

// Get retrieves a motor by designation.
func (s *MotorStore) Get(ctx context.Context, designation string) (*driven.StoredMotor, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, designation, manufacturer, diameter, length,
			total_impulse, impulse_class, document, created_at
		FROM motors WHERE designation = ?
	`, designation)

	motor, err := scanMotor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("motor %q: %w", designation, domain.ErrNotFound)
		}
		return nil, err
	}
	return motor, nil
}

// List returns all motors ordered by designation.
func (s *MotorStore) List(ctx context.Context) ([]driven.StoredMotor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, designation, manufacturer, diameter, length,
			total_impulse, impulse_class, document, created_at
		FROM motors ORDER BY designation
	`)
	if err != nil {
		return nil, fmt.Errorf("listing motors: %w", err)
	}
	defer rows.Close()

	var motors []driven.StoredMotor
	for rows.Next() {
		motor, err := scanMotor(rows)
		if err != nil {
			return nil, err
		}
		motors = append(motors, *motor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing motors: %w", err)
	}
	return motors, nil
}

// Delete removes a motor by designation.
func (s *MotorStore) Delete(ctx context.Context, designation string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM motors WHERE designation = ?", designation)
	if err != nil {
		return fmt.Errorf("deleting motor: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting motor: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("motor %q: %w", designation, domain.ErrNotFound)
	}
	return nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMotor(row scanner) (*driven.StoredMotor, error) {
	var motor driven.StoredMotor
	var document string
	var createdAt sql.NullTime
	if err := row.Scan(&motor.ID, &motor.Designation, &motor.Manufacturer,
		&motor.Diameter, &motor.Length, &motor.TotalImpulse,
		&motor.ImpulseClass, &document, &createdAt); err != nil {
		return nil, err
	}
	if createdAt.Valid {
		motor.CreatedAt = createdAt.Time
	}

	_, engine, _, err := nativedoc.Decode([]byte(document))
	if err != nil {
		return nil, fmt.Errorf("decoding motor %q document: %w", motor.Designation, err)
	}
	if engine == nil {
		return nil, fmt.Errorf("motor %q document holds no engine: %w", motor.Designation, domain.ErrParse)
	}
	motor.Engine = *engine
	return &motor, nil
}

// isUniqueViolation matches the driver's constraint error message; the
// modernc driver exposes no typed error for it.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
