package journal

// SQLiteSchema creates the runs table. Money columns hold exact decimal strings.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	query TEXT NOT NULL,
	years INTEGER NOT NULL,
	verdict TEXT NOT NULL,
	crossover_year TEXT,
	final_buy_net_worth TEXT NOT NULL,
	final_rent_net_worth TEXT NOT NULL,
	records TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// PostgresSchema creates the runs table on PostgreSQL
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id VARCHAR(26) PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	query TEXT NOT NULL,
	years INTEGER NOT NULL,
	verdict VARCHAR(8) NOT NULL,
	crossover_year NUMERIC(8, 4),
	final_buy_net_worth NUMERIC(20, 2) NOT NULL,
	final_rent_net_worth NUMERIC(20, 2) NOT NULL,
	records JSONB NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`
