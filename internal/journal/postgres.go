package journal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rpgo/rent-vs-buy/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PostgresStore keeps runs in PostgreSQL through a pgx connection pool
type PostgresStore struct {
	Pool   *pgxpool.Pool
	logger logrus.FieldLogger
}

// NewPostgresStore connects to dsn and ensures the schema exists
func NewPostgresStore(ctx context.Context, dsn string, opts ...Option) (*PostgresStore, error) {
	o := buildOptions(opts)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres journal: %w", err)
	}
	if _, err := pool.Exec(ctx, PostgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create postgres schema: %w", err)
	}

	return &PostgresStore{Pool: pool, logger: o.logger.WithField("journal", "postgres")}, nil
}

func (p *PostgresStore) SaveRun(ctx context.Context, run Run) error {
	records, err := json.Marshal(run.Records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	var crossover *float64
	if run.CrossoverYear != nil {
		v := run.CrossoverYear.InexactFloat64()
		crossover = &v
	}

	_, err = p.Pool.Exec(ctx, `
		INSERT INTO runs
		(id, name, created_at, query, years, verdict, crossover_year, final_buy_net_worth, final_rent_net_worth, records)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		run.ID, run.Name, run.CreatedAt.UTC(), run.Query, run.Years, run.Verdict,
		crossover, run.FinalBuyNetWorth.InexactFloat64(), run.FinalRentNetWorth.InexactFloat64(), records,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	p.logger.WithFields(logrus.Fields{"id": run.ID, "name": run.Name}).Debug("run saved")
	return nil
}

func (p *PostgresStore) GetRun(ctx context.Context, id string) (Run, error) {
	var (
		run       Run
		crossover *float64
		buy, rent float64
		records   []byte
	)
	err := p.Pool.QueryRow(ctx, `
		SELECT id, name, created_at, query, years, verdict, crossover_year, final_buy_net_worth, final_rent_net_worth, records
		FROM runs
		WHERE id = $1`, id).Scan(
		&run.ID, &run.Name, &run.CreatedAt, &run.Query, &run.Years, &run.Verdict,
		&crossover, &buy, &rent, &records,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Run{}, fmt.Errorf("%w: %q", ErrRunNotFound, id)
		}
		return Run{}, fmt.Errorf("query run %s: %w", id, err)
	}

	run.FinalBuyNetWorth = decimal.NewFromFloat(buy)
	run.FinalRentNetWorth = decimal.NewFromFloat(rent)
	run.CrossoverYear = floatPtrToDecimal(crossover)
	run.CreatedAt = run.CreatedAt.UTC()

	var recs []domain.YearlyRecord
	if err := json.Unmarshal(records, &recs); err != nil {
		return Run{}, fmt.Errorf("decode records of run %s: %w", id, err)
	}
	run.Records = recs

	return run, nil
}

func (p *PostgresStore) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	rows, err := p.Pool.Query(ctx, `
		SELECT id, name, created_at, years, verdict, crossover_year, final_buy_net_worth, final_rent_net_worth
		FROM runs
		ORDER BY id DESC
		LIMIT $1`, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			rs        RunSummary
			crossover *float64
			buy, rent float64
		)
		if err := rows.Scan(&rs.ID, &rs.Name, &rs.CreatedAt, &rs.Years, &rs.Verdict, &crossover, &buy, &rent); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rs.FinalBuyNetWorth = decimal.NewFromFloat(buy)
		rs.FinalRentNetWorth = decimal.NewFromFloat(rent)
		rs.CrossoverYear = floatPtrToDecimal(crossover)
		rs.CreatedAt = rs.CreatedAt.UTC()
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *PostgresStore) Close() error {
	p.Pool.Close()
	return nil
}

func floatPtrToDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
