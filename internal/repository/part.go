package repository

import (
	"fmt"

	"tracking-service/internal/model"
)

// CreatePart stores a new catalog part for the user.
func (r *Repository) CreatePart(userID uint, part *model.Part) error {
	part.UserID = userID
	if err := r.db.Create(part).Error; err != nil {
		return fmt.Errorf("create part: %w", err)
	}
	return nil
}

// SavePart persists changes to an existing part.
func (r *Repository) SavePart(userID uint, part *model.Part) error {
	part.UserID = userID
	if err := r.db.Save(part).Error; err != nil {
		return fmt.Errorf("save part: %w", err)
	}
	return nil
}

// GetPart returns the user's part with the given part number.
func (r *Repository) GetPart(userID uint, partNumber string) (*model.Part, error) {
	var part model.Part
	err := r.db.
		Where("user_id = ?", userID).
		Where("part_number = ?", partNumber).
		First(&part).Error
	if err != nil {
		return nil, wrapLookup("part", err)
	}
	return &part, nil
}

// GetPartsByNumber returns the user's parts whose part number contains
// the given fragment. The match is case-sensitive.
func (r *Repository) GetPartsByNumber(userID uint, fragment string) ([]model.Part, error) {
	var parts []model.Part
	err := r.db.
		Where("user_id = ?", userID).
		Where("part_number LIKE ?", "%"+fragment+"%").
		Order("part_number").
		Find(&parts).Error
	if err != nil {
		return nil, fmt.Errorf("search parts: %w", err)
	}
	return parts, nil
}

// GetAnyParts returns every part belonging to the user.
func (r *Repository) GetAnyParts(userID uint) ([]model.Part, error) {
	var parts []model.Part
	err := r.db.
		Where("user_id = ?", userID).
		Order("id").
		Find(&parts).Error
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	return parts, nil
}

// GetActiveParts returns the user's active parts of one machine type.
func (r *Repository) GetActiveParts(userID uint, machType string) ([]model.Part, error) {
	var parts []model.Part
	err := r.db.
		Where("user_id = ?", userID).
		Where("mach_type = ?", machType).
		Where("active = ?", model.StatusActive).
		Order("id").
		Find(&parts).Error
	if err != nil {
		return nil, fmt.Errorf("list active parts: %w", err)
	}
	return parts, nil
}

// GetAllParts returns the user's parts of one machine type regardless
// of status.
func (r *Repository) GetAllParts(userID uint, machType string) ([]model.Part, error) {
	var parts []model.Part
	err := r.db.
		Where("user_id = ?", userID).
		Where("mach_type = ?", machType).
		Order("id").
		Find(&parts).Error
	if err != nil {
		return nil, fmt.Errorf("list parts by type: %w", err)
	}
	return parts, nil
}

// GetPartByJob resolves the part referenced by one of the user's jobs.
// Both lookups are scoped to the user.
func (r *Repository) GetPartByJob(userID uint, jobNumber string) (*model.Part, error) {
	job, err := r.GetJob(userID, jobNumber)
	if err != nil {
		return nil, err
	}
	return r.GetPart(userID, job.PartNumber)
}

// DeletePart removes the user's part with the given part number.
func (r *Repository) DeletePart(userID uint, partNumber string) error {
	result := r.db.
		Where("user_id = ?", userID).
		Where("part_number = ?", partNumber).
		Delete(&model.Part{})
	if result.Error != nil {
		return fmt.Errorf("delete part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("part: %w", ErrNotFound)
	}
	return nil
}
