package chat

import (
	"context"

	"gorm.io/gorm"
)

// QueryRunner executes an already-validated SELECT and returns generic
// rows. Kept behind an interface so the pipeline is testable without a
// database.
type QueryRunner interface {
	Run(ctx context.Context, query string) ([]map[string]any, error)
}

type GormQueryRunner struct {
	db *gorm.DB
}

func NewGormQueryRunner(db *gorm.DB) *GormQueryRunner {
	return &GormQueryRunner{db: db}
}

func (r *GormQueryRunner) Run(ctx context.Context, query string) ([]map[string]any, error) {

	rows, err := r.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]any

	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(cols))
		for i, col := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// Compile-time check
var _ QueryRunner = (*GormQueryRunner)(nil)
