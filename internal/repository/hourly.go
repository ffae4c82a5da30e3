package repository

import (
	"fmt"

	"tracking-service/internal/model"
)

// CreateHourly stores a new hourly count sample for the user.
func (r *Repository) CreateHourly(userID uint, hourly *model.Hourly) error {
	hourly.UserID = userID
	if err := r.db.Create(hourly).Error; err != nil {
		return fmt.Errorf("create hourly: %w", err)
	}
	return nil
}

// SaveHourly persists changes to an existing hourly count.
func (r *Repository) SaveHourly(userID uint, hourly *model.Hourly) error {
	hourly.UserID = userID
	if err := r.db.Save(hourly).Error; err != nil {
		return fmt.Errorf("save hourly: %w", err)
	}
	return nil
}

// GetHourlyByID returns one of the user's hourly counts by row ID.
func (r *Repository) GetHourlyByID(userID, id uint) (*model.Hourly, error) {
	var hourly model.Hourly
	err := r.db.
		Where("user_id = ?", userID).
		Where("id = ?", id).
		First(&hourly).Error
	if err != nil {
		return nil, wrapLookup("hourly", err)
	}
	return &hourly, nil
}

// GetAnyHourly returns the user's earliest stored hourly count, or
// ErrNotFound when none exist. Callers use it to probe whether the
// user has recorded hourly data at all.
func (r *Repository) GetAnyHourly(userID uint) (*model.Hourly, error) {
	var hourly model.Hourly
	err := r.db.
		Where("user_id = ?", userID).
		Order("id").
		First(&hourly).Error
	if err != nil {
		return nil, wrapLookup("hourly", err)
	}
	return &hourly, nil
}

// GetHourlySetByDateAndMachine returns the machine's counts on one
// calendar date in clock order.
func (r *Repository) GetHourlySetByDateAndMachine(userID uint, date, machine string) ([]model.Hourly, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	var hourlies []model.Hourly
	err = r.db.
		Where("user_id = ?", userID).
		Where("date = ?", day).
		Where("machine = ?", machine).
		Order("time").
		Order("id").
		Find(&hourlies).Error
	if err != nil {
		return nil, fmt.Errorf("list hourly by machine: %w", err)
	}
	return hourlies, nil
}

// GetHourlySetByDateMachineJobAndOp narrows the machine's counts on
// one date to a single job step, in clock order.
func (r *Repository) GetHourlySetByDateMachineJobAndOp(userID uint, date, machine, jobNumber, opNumber string) ([]model.Hourly, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	var hourlies []model.Hourly
	err = r.db.
		Where("user_id = ?", userID).
		Where("date = ?", day).
		Where("machine = ?", machine).
		Where("job_number = ?", jobNumber).
		Where("op_number = ?", opNumber).
		Order("time").
		Order("id").
		Find(&hourlies).Error
	if err != nil {
		return nil, fmt.Errorf("list hourly by job and op: %w", err)
	}
	return hourlies, nil
}

// DeleteHourly removes one of the user's hourly counts by row ID.
func (r *Repository) DeleteHourly(userID, id uint) error {
	result := r.db.
		Where("user_id = ?", userID).
		Where("id = ?", id).
		Delete(&model.Hourly{})
	if result.Error != nil {
		return fmt.Errorf("delete hourly: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("hourly: %w", ErrNotFound)
	}
	return nil
}
