package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rpgo/rent-vs-buy/internal/domain"
	money "github.com/rpgo/rent-vs-buy/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps runs in a local SQLite file
type SQLiteStore struct {
	db     *sql.DB
	logger logrus.FieldLogger
}

// NewSQLiteStore opens (creating if needed) the database at path and ensures the schema exists
func NewSQLiteStore(ctx context.Context, path string, opts ...Option) (*SQLiteStore, error) {
	o := buildOptions(opts)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite journal %s: %w", path, err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, SQLiteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, logger: o.logger.WithField("journal", "sqlite")}, nil
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run Run) error {
	records, err := json.Marshal(run.Records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	var crossover sql.NullString
	if run.CrossoverYear != nil {
		crossover = sql.NullString{String: run.CrossoverYear.String(), Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, name, created_at, query, years, verdict, crossover_year, final_buy_net_worth, final_rent_net_worth, records)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Name, run.CreatedAt.UTC(), run.Query, run.Years, run.Verdict,
		crossover, run.FinalBuyNetWorth.String(), run.FinalRentNetWorth.String(), string(records),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	s.logger.WithFields(logrus.Fields{"id": run.ID, "name": run.Name}).Debug("run saved")
	return nil
}

func (s *SQLiteStore) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, query, years, verdict, crossover_year, final_buy_net_worth, final_rent_net_worth, records
		FROM runs
		WHERE id = ?`, id)

	var (
		run       Run
		crossover sql.NullString
		buy, rent string
		records   string
	)
	err := row.Scan(&run.ID, &run.Name, &run.CreatedAt, &run.Query, &run.Years, &run.Verdict,
		&crossover, &buy, &rent, &records)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, fmt.Errorf("%w: %q", ErrRunNotFound, id)
		}
		return Run{}, fmt.Errorf("query run %s: %w", id, err)
	}

	if err := fillMoney(&run.FinalBuyNetWorth, &run.FinalRentNetWorth, &run.CrossoverYear, buy, rent, crossover); err != nil {
		return Run{}, fmt.Errorf("decode run %s: %w", id, err)
	}
	var recs []domain.YearlyRecord
	if err := json.Unmarshal([]byte(records), &recs); err != nil {
		return Run{}, fmt.Errorf("decode records of run %s: %w", id, err)
	}
	run.Records = recs
	run.CreatedAt = run.CreatedAt.UTC()

	return run, nil
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at, years, verdict, crossover_year, final_buy_net_worth, final_rent_net_worth
		FROM runs
		ORDER BY id DESC
		LIMIT ?`, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			rs        RunSummary
			createdAt time.Time
			crossover sql.NullString
			buy, rent string
		)
		if err := rows.Scan(&rs.ID, &rs.Name, &createdAt, &rs.Years, &rs.Verdict, &crossover, &buy, &rent); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if err := fillMoney(&rs.FinalBuyNetWorth, &rs.FinalRentNetWorth, &rs.CrossoverYear, buy, rent, crossover); err != nil {
			return nil, fmt.Errorf("decode run %s: %w", rs.ID, err)
		}
		rs.CreatedAt = createdAt.UTC()
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func fillMoney(buyOut, rentOut *decimal.Decimal, crossoverOut **decimal.Decimal, buy, rent string, crossover sql.NullString) error {
	buyMoney, err := money.NewMoneyFromString(buy)
	if err != nil {
		return fmt.Errorf("final buy net worth: %w", err)
	}
	rentMoney, err := money.NewMoneyFromString(rent)
	if err != nil {
		return fmt.Errorf("final rent net worth: %w", err)
	}
	*buyOut, *rentOut = buyMoney.Decimal, rentMoney.Decimal
	if crossover.Valid {
		year, err := decimal.NewFromString(crossover.String)
		if err != nil {
			return err
		}
		*crossoverOut = &year
	}
	return nil
}
