package store

import (
	"hnl-console/internal/models"

	"gorm.io/gorm"
)

// CreateReport inserts the report and its detail row in one transaction.
func (s *Store) CreateReport(r *models.Report, detail *models.ReportDetail) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Detail").Create(r).Error; err != nil {
			return err
		}
		detail.ReportID = r.ID
		return tx.Create(detail).Error
	})
	return s.count("report_create", wrapErr(err))
}

func (s *Store) CreateExperiment(x *models.Experiment) error {
	return s.count("experiment_create", wrapErr(s.db.Create(x).Error))
}
