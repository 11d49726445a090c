package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jgoulah/elecalc/internal/input"
	"github.com/jgoulah/elecalc/pkg/models"
	_ "modernc.org/sqlite"
)

// ErrScenarioNotFound is returned when no scenario has the requested name
var ErrScenarioNotFound = errors.New("scenario not found")

// DB wraps the database connection
type DB struct {
	conn *sql.DB
	now  func() time.Time
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn, now: func() time.Time { return time.Now().UTC() }}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scenarios (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		bedrooms INTEGER NOT NULL,
		tariff_rate REAL NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS scenario_days (
		scenario_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		air_conditioner INTEGER NOT NULL DEFAULT 0,
		refrigerator INTEGER NOT NULL DEFAULT 0,
		washing_machine INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (scenario_id, day)
	);
	CREATE INDEX IF NOT EXISTS idx_scenarios_name ON scenarios(name);
	`

	_, err := db.conn.Exec(schema)
	return err
}

// SaveScenario inserts a scenario or replaces the one with the same name.
// An existing scenario keeps its ID and creation time. s is updated with
// the stored ID and timestamps.
func (db *DB) SaveScenario(ctx context.Context, s *models.Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	now := db.now().Format(time.RFC3339)

	query := `
	INSERT INTO scenarios (id, name, bedrooms, tariff_rate, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		bedrooms = excluded.bedrooms,
		tariff_rate = excluded.tariff_rate,
		updated_at = excluded.updated_at
	`
	if _, err := tx.ExecContext(ctx, query, uuid.NewString(), s.Name, s.Bedrooms, s.TariffRate, now, now); err != nil {
		return fmt.Errorf("saving scenario: %w", err)
	}

	var id, createdAt, updatedAt string
	row := tx.QueryRowContext(ctx, `SELECT id, created_at, updated_at FROM scenarios WHERE name = ?`, s.Name)
	if err := row.Scan(&id, &createdAt, &updatedAt); err != nil {
		return fmt.Errorf("reading scenario id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM scenario_days WHERE scenario_id = ?`, id); err != nil {
		return fmt.Errorf("clearing scenario days: %w", err)
	}

	for _, day := range models.Weekdays() {
		u := s.Week[day]
		_, err := tx.ExecContext(ctx, `
		INSERT INTO scenario_days (scenario_id, day, air_conditioner, refrigerator, washing_machine)
		VALUES (?, ?, ?, ?, ?)
		`, id, int(day), u.AirConditioner, u.Refrigerator, u.WashingMachine)
		if err != nil {
			return fmt.Errorf("saving %s usage: %w", day, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing scenario: %w", err)
	}

	s.ID = id
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}

// GetScenario retrieves a scenario by name
func (db *DB) GetScenario(ctx context.Context, name string) (*models.Scenario, error) {
	query := `
	SELECT id, name, bedrooms, tariff_rate, created_at, updated_at
	FROM scenarios
	WHERE name = ?
	`

	s, err := scanScenario(db.conn.QueryRowContext(ctx, query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrScenarioNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying scenario: %w", err)
	}

	if err := db.loadWeek(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ListScenarios retrieves all scenarios, ordered by name
func (db *DB) ListScenarios(ctx context.Context) ([]models.Scenario, error) {
	query := `
	SELECT id, name, bedrooms, tariff_rate, created_at, updated_at
	FROM scenarios
	ORDER BY name
	`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying scenarios: %w", err)
	}
	defer rows.Close()

	var results []models.Scenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows.Close()
	for i := range results {
		if err := db.loadWeek(ctx, &results[i]); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// DeleteScenario removes a scenario and its daily usage
func (db *DB) DeleteScenario(ctx context.Context, name string) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM scenarios WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrScenarioNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("querying scenario: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM scenario_days WHERE scenario_id = ?`, id); err != nil {
		return fmt.Errorf("deleting scenario days: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting scenario: %w", err)
	}

	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScenario(row scanner) (*models.Scenario, error) {
	var s models.Scenario
	var createdAt, updatedAt string

	if err := row.Scan(&s.ID, &s.Name, &s.Bedrooms, &s.TariffRate, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &s, nil
}

func (db *DB) loadWeek(ctx context.Context, s *models.Scenario) error {
	query := `
	SELECT day, air_conditioner, refrigerator, washing_machine
	FROM scenario_days
	WHERE scenario_id = ?
	ORDER BY day
	`

	rows, err := db.conn.QueryContext(ctx, query, s.ID)
	if err != nil {
		return fmt.Errorf("querying scenario days: %w", err)
	}
	defer rows.Close()

	days := make([]models.ApplianceUsage, 0, models.DaysPerWeek)
	for rows.Next() {
		var day int
		var u models.ApplianceUsage
		if err := rows.Scan(&day, &u.AirConditioner, &u.Refrigerator, &u.WashingMachine); err != nil {
			return fmt.Errorf("scanning day: %w", err)
		}
		if day != len(days) {
			return fmt.Errorf("scenario %s: missing usage for %s", s.Name, models.Weekday(len(days)))
		}
		days = append(days, u)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	week, err := input.FromSlice(days)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	s.Week = week
	return nil
}
