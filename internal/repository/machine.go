package repository

import (
	"fmt"

	"tracking-service/internal/model"
)

// CreateMachine stores a new machine for the user.
func (r *Repository) CreateMachine(userID uint, machine *model.Machine) error {
	machine.UserID = userID
	if err := r.db.Create(machine).Error; err != nil {
		return fmt.Errorf("create machine: %w", err)
	}
	return nil
}

// SaveMachine persists changes to an existing machine.
func (r *Repository) SaveMachine(userID uint, machine *model.Machine) error {
	machine.UserID = userID
	if err := r.db.Save(machine).Error; err != nil {
		return fmt.Errorf("save machine: %w", err)
	}
	return nil
}

// GetMachine returns the user's machine with the given name.
func (r *Repository) GetMachine(userID uint, name string) (*model.Machine, error) {
	var machine model.Machine
	err := r.db.
		Where("user_id = ?", userID).
		Where("machine = ?", name).
		First(&machine).Error
	if err != nil {
		return nil, wrapLookup("machine", err)
	}
	return &machine, nil
}

// GetAllMachines returns every machine belonging to the user.
func (r *Repository) GetAllMachines(userID uint) ([]model.Machine, error) {
	var machines []model.Machine
	err := r.db.
		Where("user_id = ?", userID).
		Order("id").
		Find(&machines).Error
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	return machines, nil
}

// GetMachinesByType returns the user's machines of one machine type,
// ordered by machine name.
func (r *Repository) GetMachinesByType(userID uint, machType string) ([]model.Machine, error) {
	var machines []model.Machine
	err := r.db.
		Where("user_id = ?", userID).
		Where("mach_type = ?", machType).
		Order("machine").
		Find(&machines).Error
	if err != nil {
		return nil, fmt.Errorf("list machines by type: %w", err)
	}
	return machines, nil
}

// GetMachinesByJob returns the user's machines ordered by their
// current-job back-reference, highest job number first.
func (r *Repository) GetMachinesByJob(userID uint) ([]model.Machine, error) {
	var machines []model.Machine
	err := r.db.
		Where("user_id = ?", userID).
		Order("current_job DESC").
		Order("id").
		Find(&machines).Error
	if err != nil {
		return nil, fmt.Errorf("list machines by job: %w", err)
	}
	return machines, nil
}

// DeleteMachine removes the user's machine with the given name.
func (r *Repository) DeleteMachine(userID uint, name string) error {
	result := r.db.
		Where("user_id = ?", userID).
		Where("machine = ?", name).
		Delete(&model.Machine{})
	if result.Error != nil {
		return fmt.Errorf("delete machine: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("machine: %w", ErrNotFound)
	}
	return nil
}
