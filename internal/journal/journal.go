// Package journal persists simulation runs so they can be listed and replayed later.
package journal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rpgo/rent-vs-buy/internal/domain"
	"github.com/rpgo/rent-vs-buy/pkg/id"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	// ErrRunNotFound is returned when no run has the requested id
	ErrRunNotFound = errors.New("run not found")
	// ErrUnknownDriver is returned by Open for an unsupported backend
	ErrUnknownDriver = errors.New("unknown journal driver")
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// Run is a saved simulation: the serialized scenario plus its outcome
type Run struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	CreatedAt         time.Time             `json:"created_at"`
	Query             string                `json:"query"`
	Years             int                   `json:"years"`
	Verdict           string                `json:"verdict"`
	CrossoverYear     *decimal.Decimal      `json:"crossover_year,omitempty"`
	FinalBuyNetWorth  decimal.Decimal       `json:"final_buy_net_worth"`
	FinalRentNetWorth decimal.Decimal       `json:"final_rent_net_worth"`
	Records           []domain.YearlyRecord `json:"records,omitempty"`
}

// RunSummary is the listing view of a run, without its records
type RunSummary struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	CreatedAt         time.Time        `json:"created_at"`
	Years             int              `json:"years"`
	Verdict           string           `json:"verdict"`
	CrossoverYear     *decimal.Decimal `json:"crossover_year,omitempty"`
	FinalBuyNetWorth  decimal.Decimal  `json:"final_buy_net_worth"`
	FinalRentNetWorth decimal.Decimal  `json:"final_rent_net_worth"`
}

// Summary drops the records of a run
func (r Run) Summary() RunSummary {
	return RunSummary{
		ID:                r.ID,
		Name:              r.Name,
		CreatedAt:         r.CreatedAt,
		Years:             r.Years,
		Verdict:           r.Verdict,
		CrossoverYear:     r.CrossoverYear,
		FinalBuyNetWorth:  r.FinalBuyNetWorth,
		FinalRentNetWorth: r.FinalRentNetWorth,
	}
}

// NewRun captures a result under a fresh id. query is the canonical serialized scenario.
func NewRun(query string, result *domain.ScenarioResult) Run {
	now := nowFunc().UTC()
	run := Run{
		ID:                id.NewAt(now),
		Name:              result.Name,
		CreatedAt:         now,
		Query:             query,
		Years:             result.Years,
		Verdict:           result.Summary.Verdict,
		FinalBuyNetWorth:  result.Summary.FinalBuyNetWorth,
		FinalRentNetWorth: result.Summary.FinalRentNetWorth,
		Records:           result.Records,
	}
	if result.Crossover != nil {
		year := result.Crossover.Year
		run.CrossoverYear = &year
	}
	return run
}

// Store persists runs
type Store interface {
	SaveRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, id string) (Run, error)
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
	Close() error
}

// Option configures a store opened with Open
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
}

// WithLogger sets the logger used by the store
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.logger = discard
	}
	return o
}

// Open selects a backend by driver name: "sqlite" (dsn is a file path) or "postgres" (dsn is a connection URL)
func Open(ctx context.Context, driver, dsn string, opts ...Option) (Store, error) {
	switch driver {
	case "sqlite", "sqlite3":
		return NewSQLiteStore(ctx, dsn, opts...)
	case "postgres", "postgresql", "pgx":
		return NewPostgresStore(ctx, dsn, opts...)
	default:
		return nil, fmt.Errorf("%w: %q (expected sqlite or postgres)", ErrUnknownDriver, driver)
	}
}

// DefaultListLimit caps ListRuns when the caller passes a non-positive limit
const DefaultListLimit = 50

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
