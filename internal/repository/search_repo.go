package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/SEP491/FitBridge-Chatbot/internal/domain"
	"github.com/SEP491/FitBridge-Chatbot/internal/logger"
	"gorm.io/gorm"
)

// SearchRepository is the single read capability the chat services use.
// Query composers hand it finished SQL with named binds; it never
// builds or mutates queries itself.
type SearchRepository struct {
	db *gorm.DB
}

// NewSearchRepository creates a SearchRepository.
// Parameters:
//   - db: initialized GORM handle.
// Returns:
//   - *SearchRepository: repository instance.
func NewSearchRepository(db *gorm.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// Execute runs a parameterized read query and returns the result set as
// generic rows keyed by column alias.
// Parameters:
//   - ctx: request context for cancellation and logging.
//   - query: SQL text with @name placeholders.
//   - args: bind values; a single map binds by name.
// Returns:
//   - []domain.Row: one map per result row, nil when the set is empty.
//   - error: non-nil on query, scan, or iteration failure.
func (r *SearchRepository) Execute(ctx context.Context, query string, args ...interface{}) ([]domain.Row, error) {
	start := time.Now()

	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var results []domain.Row
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row := make(domain.Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	logger.With(logger.Fields{
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
		logger.FieldCount:      len(results),
	}).Debug(ctx, "Search query executed")

	return results, nil
}
