package repository

import (
	"fmt"

	"tracking-service/internal/model"
)

// CreateProduction stores a new production lot for the user.
func (r *Repository) CreateProduction(userID uint, prod *model.Production) error {
	prod.UserID = userID
	if err := r.db.Create(prod).Error; err != nil {
		return fmt.Errorf("create production: %w", err)
	}
	return nil
}

// SaveProduction persists changes to an existing production lot.
func (r *Repository) SaveProduction(userID uint, prod *model.Production) error {
	prod.UserID = userID
	if err := r.db.Save(prod).Error; err != nil {
		return fmt.Errorf("save production: %w", err)
	}
	return nil
}

// GetProductionByID returns one of the user's production lots by row
// ID.
func (r *Repository) GetProductionByID(userID, id uint) (*model.Production, error) {
	var prod model.Production
	err := r.db.
		Where("user_id = ?", userID).
		Where("id = ?", id).
		First(&prod).Error
	if err != nil {
		return nil, wrapLookup("production", err)
	}
	return &prod, nil
}

// GetAnyProduction returns every production lot belonging to the user.
func (r *Repository) GetAnyProduction(userID uint) ([]model.Production, error) {
	var prod []model.Production
	err := r.db.
		Where("user_id = ?", userID).
		Order("id").
		Find(&prod).Error
	if err != nil {
		return nil, fmt.Errorf("list production: %w", err)
	}
	return prod, nil
}

// GetProductionSet returns one page of the user's production lots for
// one machine type, most recent date first.
func (r *Repository) GetProductionSet(userID uint, params PagingParams, machType string) (*PagedList[model.Production], error) {
	query := r.db.Model(&model.Production{}).
		Where("user_id = ?", userID).
		Where("mach_type = ?", machType).
		Order("date DESC").
		Order("id")
	return newPagedList[model.Production](query, params)
}

// GetProductionSetByJob returns the user's production lots for one
// job, most recent date first.
func (r *Repository) GetProductionSetByJob(userID uint, jobNumber string) ([]model.Production, error) {
	var prod []model.Production
	err := r.db.
		Where("user_id = ?", userID).
		Where("job_number = ?", jobNumber).
		Order("date DESC").
		Order("id").
		Find(&prod).Error
	if err != nil {
		return nil, fmt.Errorf("list production by job: %w", err)
	}
	return prod, nil
}

// GetProductionSetByOp returns the user's production lots for one
// process step, most recent date first.
func (r *Repository) GetProductionSetByOp(userID uint, jobNumber, opNumber string) ([]model.Production, error) {
	var prod []model.Production
	err := r.db.
		Where("user_id = ?", userID).
		Where("job_number = ?", jobNumber).
		Where("op_number = ?", opNumber).
		Order("date DESC").
		Order("id").
		Find(&prod).Error
	if err != nil {
		return nil, fmt.Errorf("list production by op: %w", err)
	}
	return prod, nil
}

// GetProductionSetByJobOpAndMachine returns every lot recorded for one
// job step on one machine, grouped by shift label with the dates of
// each shift in ascending order.
func (r *Repository) GetProductionSetByJobOpAndMachine(userID uint, jobNumber, opNumber, machine string) ([]model.Production, error) {
	var prod []model.Production
	err := r.db.
		Where("user_id = ?", userID).
		Where("job_number = ?", jobNumber).
		Where("op_number = ?", opNumber).
		Where("machine = ?", machine).
		Order("shift").
		Order("date").
		Order("id").
		Find(&prod).Error
	if err != nil {
		return nil, fmt.Errorf("list production by machine: %w", err)
	}
	return prod, nil
}

// GetProductionSetByDate returns every lot the user recorded on one
// calendar date, across all jobs and machines.
func (r *Repository) GetProductionSetByDate(userID uint, date string) ([]model.Production, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	var prod []model.Production
	err = r.db.
		Where("user_id = ?", userID).
		Where("date = ?", day).
		Order("date DESC").
		Order("id").
		Find(&prod).Error
	if err != nil {
		return nil, fmt.Errorf("list production by date: %w", err)
	}
	return prod, nil
}

// GetProductionShifts returns the routine shift lots for one job step
// on one machine and date, ordered by shift label. Reconciliation
// ("Found") rows are excluded.
func (r *Repository) GetProductionShifts(userID uint, date, jobNumber, opNumber, machine string) ([]model.Production, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	var prod []model.Production
	err = r.db.
		Where("user_id = ?", userID).
		Where("job_number = ?", jobNumber).
		Where("op_number = ?", opNumber).
		Where("machine = ?", machine).
		Where("date = ?", day).
		Where("shift <> ?", model.ShiftFound).
		Order("shift").
		Order("id").
		Find(&prod).Error
	if err != nil {
		return nil, fmt.Errorf("list production shifts: %w", err)
	}
	return prod, nil
}

// GetProductionFound returns only the reconciliation rows for one job
// step on one machine and date.
func (r *Repository) GetProductionFound(userID uint, date, jobNumber, opNumber, machine string) ([]model.Production, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	var prod []model.Production
	err = r.db.
		Where("user_id = ?", userID).
		Where("shift = ?", model.ShiftFound).
		Where("job_number = ?", jobNumber).
		Where("op_number = ?", opNumber).
		Where("machine = ?", machine).
		Where("date = ?", day).
		Order("id").
		Find(&prod).Error
	if err != nil {
		return nil, fmt.Errorf("list found production: %w", err)
	}
	return prod, nil
}

// DeleteProduction removes one of the user's production lots by row
// ID.
func (r *Repository) DeleteProduction(userID, id uint) error {
	result := r.db.
		Where("user_id = ?", userID).
		Where("id = ?", id).
		Delete(&model.Production{})
	if result.Error != nil {
		return fmt.Errorf("delete production: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("production: %w", ErrNotFound)
	}
	return nil
}
