package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"studydeck/internal/domain/repositories"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Documents    string
	Drafts       string
	Piles        string
	Folders      string
	Todos        string
	Statistics   string
	Shares       string
	UserSettings string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Documents:    fmt.Sprintf("%sdocuments", prefix),
		Drafts:       fmt.Sprintf("%sdrafts", prefix),
		Piles:        fmt.Sprintf("%spiles", prefix),
		Folders:      fmt.Sprintf("%sfolders", prefix),
		Todos:        fmt.Sprintf("%stodos", prefix),
		Statistics:   fmt.Sprintf("%sstatistics", prefix),
		Shares:       fmt.Sprintf("%sshares", prefix),
		UserSettings: fmt.Sprintf("%suser_settings", prefix),
	}
}

// CreateConnectionPool creates a new pgx connection pool.
//
// Hosted Postgres poolers in transaction mode (port 6543) do not support
// prepared statements, so when that port is detected the pool switches to
// QueryExecModeCacheDescribe, which uses the extended protocol (needed for
// JSONB encoding of card arrays) without creating named prepared statements.
// An explicit default_query_exec_mode in the connection string takes
// precedence over this auto-detection.
//
// The fmt.Sprintf table-prefix interpolation used by the repositories is safe
// with prepared statements because the SQL string is built before being sent;
// each environment simply gets its own statements.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	config.MaxConns = 25
	config.MinConns = 5

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for pooler compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// GetExecutor returns the appropriate query executor for the context.
// If a transaction is present in the context, it returns the transaction;
// otherwise the provided pool. This lets repositories automatically
// participate in transactions when one exists.
func GetExecutor(ctx context.Context, pool *pgxpool.Pool) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return pool
}
