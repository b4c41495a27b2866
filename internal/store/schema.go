package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS scenarios (
    name                   TEXT PRIMARY KEY,
    created_at             TEXT NOT NULL,
    plan_toml              TEXT NOT NULL,
    total_annual_cost      REAL NOT NULL,
    weighted_inflation_pct REAL NOT NULL,
    retirement_fire_number REAL NOT NULL,
    fire_year_offset       INTEGER,
    fire_age               INTEGER
);

CREATE INDEX IF NOT EXISTS idx_scenarios_created ON scenarios(created_at);
`
