// Package store provides a SQLite-backed store for named what-if
// scenarios: a plan snapshot plus its headline results.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/prajeet74/fire-calculator/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store provides SQLite-backed scenario persistence.
type Store struct {
	db *sql.DB
}

// Scenario is one saved plan snapshot with its headline results.
type Scenario struct {
	Name                 string
	CreatedAt            time.Time
	Plan                 model.Plan
	TotalAnnualCost      float64
	WeightedInflationPct float64
	RetirementFireNumber float64
	FireYearOffset       *int
	FireAge              *int
}

// Open opens or creates the scenario database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening scenario db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a scenario, replacing any existing one with the same name.
func (s *Store) Save(sc Scenario) error {
	planTOML, err := toml.Marshal(sc.Plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	createdAt := sc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var fireOffset, fireAge sql.NullInt64
	if sc.FireYearOffset != nil {
		fireOffset = sql.NullInt64{Int64: int64(*sc.FireYearOffset), Valid: true}
	}
	if sc.FireAge != nil {
		fireAge = sql.NullInt64{Int64: int64(*sc.FireAge), Valid: true}
	}

	_, err = s.db.Exec(`INSERT OR REPLACE INTO scenarios
		(name, created_at, plan_toml, total_annual_cost, weighted_inflation_pct,
		 retirement_fire_number, fire_year_offset, fire_age)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sc.Name, createdAt.UTC().Format(time.RFC3339), string(planTOML),
		sc.TotalAnnualCost, sc.WeightedInflationPct, sc.RetirementFireNumber,
		fireOffset, fireAge,
	)
	return err
}

// List returns all scenarios ordered by creation time, plans included.
func (s *Store) List() ([]Scenario, error) {
	rows, err := s.db.Query(`SELECT
		name, created_at, plan_toml, total_annual_cost, weighted_inflation_pct,
		retirement_fire_number, fire_year_offset, fire_age
		FROM scenarios ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scenarios []Scenario
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, rows.Err()
}

// Get returns the scenario with the given name.
func (s *Store) Get(name string) (Scenario, error) {
	row := s.db.QueryRow(`SELECT
		name, created_at, plan_toml, total_annual_cost, weighted_inflation_pct,
		retirement_fire_number, fire_year_offset, fire_age
		FROM scenarios WHERE name = ?`, name)

	sc, err := scanScenario(row)
	if err == sql.ErrNoRows {
		return Scenario{}, fmt.Errorf("scenario %q not found", name)
	}
	return sc, err
}

// Delete removes a scenario by name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("scenario %q not found", name)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (Scenario, error) {
	var sc Scenario
	var createdStr, planTOML string
	var fireOffset, fireAge sql.NullInt64

	err := row.Scan(&sc.Name, &createdStr, &planTOML, &sc.TotalAnnualCost,
		&sc.WeightedInflationPct, &sc.RetirementFireNumber, &fireOffset, &fireAge)
	if err != nil {
		return Scenario{}, err
	}

	sc.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	if fireOffset.Valid {
		v := int(fireOffset.Int64)
		sc.FireYearOffset = &v
	}
	if fireAge.Valid {
		v := int(fireAge.Int64)
		sc.FireAge = &v
	}

	if err := toml.Unmarshal([]byte(planTOML), &sc.Plan); err != nil {
		return Scenario{}, fmt.Errorf("decoding plan for %q: %w", sc.Name, err)
	}

	return sc, nil
}
