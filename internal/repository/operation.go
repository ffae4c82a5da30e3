package repository

import (
	"fmt"

	"tracking-service/internal/model"
)

// CreateOperation stores a new process step for the user.
func (r *Repository) CreateOperation(userID uint, op *model.Operation) error {
	op.UserID = userID
	if err := r.db.Create(op).Error; err != nil {
		return fmt.Errorf("create operation: %w", err)
	}
	return nil
}

// SaveOperation persists changes to an existing operation.
func (r *Repository) SaveOperation(userID uint, op *model.Operation) error {
	op.UserID = userID
	if err := r.db.Save(op).Error; err != nil {
		return fmt.Errorf("save operation: %w", err)
	}
	return nil
}

// GetOperation returns one process step of the user's job.
func (r *Repository) GetOperation(userID uint, jobNumber, opNumber string) (*model.Operation, error) {
	var op model.Operation
	err := r.db.
		Where("user_id = ?", userID).
		Where("job_number = ?", jobNumber).
		Where("op_number = ?", opNumber).
		First(&op).Error
	if err != nil {
		return nil, wrapLookup("operation", err)
	}
	return &op, nil
}

// GetOperationsByJob returns every process step of the user's job.
func (r *Repository) GetOperationsByJob(userID uint, jobNumber string) ([]model.Operation, error) {
	var ops []model.Operation
	err := r.db.
		Where("user_id = ?", userID).
		Where("job_number = ?", jobNumber).
		Order("id").
		Find(&ops).Error
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	return ops, nil
}

// GetOperationsByMachine returns the steps of the user's job assigned
// to one machine.
func (r *Repository) GetOperationsByMachine(userID uint, jobNumber, machine string) ([]model.Operation, error) {
	var ops []model.Operation
	err := r.db.
		Where("user_id = ?", userID).
		Where("job_number = ?", jobNumber).
		Where("machine = ?", machine).
		Order("id").
		Find(&ops).Error
	if err != nil {
		return nil, fmt.Errorf("list operations by machine: %w", err)
	}
	return ops, nil
}

// DeleteOperation removes one process step of the user's job.
func (r *Repository) DeleteOperation(userID uint, jobNumber, opNumber string) error {
	result := r.db.
		Where("user_id = ?", userID).
		Where("job_number = ?", jobNumber).
		Where("op_number = ?", opNumber).
		Delete(&model.Operation{})
	if result.Error != nil {
		return fmt.Errorf("delete operation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("operation: %w", ErrNotFound)
	}
	return nil
}
