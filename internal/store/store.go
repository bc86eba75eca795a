// Package store is the data access layer: parameterized statements against
// the relational schema, typed failures, no business logic.
package store

import (
	"time"

	"hnl-console/internal/metrics"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for the audit helper and the server.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) count(op string, err error) error {
	metrics.StatementsTotal.WithLabelValues(op).Inc()
	if err != nil {
		metrics.StatementErrors.WithLabelValues(op).Inc()
	}
	return err
}

func now() *time.Time {
	t := time.Now()
	return &t
}
