package repository

import (
	"errors"
	"fmt"

	"tracking-service/internal/model"

	"gorm.io/gorm"
)

// CreateJob stores a new job for the user. The job is forced to the
// active status, and the referenced part must already exist for the
// same user; otherwise nothing is persisted and ErrNotFound is
// returned.
func (r *Repository) CreateJob(userID uint, job *model.Job) error {
	part, err := r.GetPart(userID, job.PartNumber)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("job part %q: %w", job.PartNumber, ErrNotFound)
		}
		return err
	}

	job.UserID = userID
	job.PartNumber = part.PartNumber
	job.Active = model.StatusActive

	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// SaveJob persists changes to an existing job.
func (r *Repository) SaveJob(userID uint, job *model.Job) error {
	job.UserID = userID
	if err := r.db.Save(job).Error; err != nil {
		return fmt.Errorf("save job: %w", err)
	}
	return nil
}

// UpdateJobRemaining sets the remaining quantity on one of the user's
// jobs.
func (r *Repository) UpdateJobRemaining(userID uint, jobNumber string, remaining int) error {
	result := r.db.Model(&model.Job{}).
		Where("user_id = ?", userID).
		Where("job_number = ?", jobNumber).
		Update("remaining_quantity", remaining)
	if result.Error != nil {
		return fmt.Errorf("update job remaining: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job: %w", ErrNotFound)
	}
	return nil
}

// SetJobActive updates the active status on one of the user's jobs.
func (r *Repository) SetJobActive(userID uint, jobNumber, active string) error {
	result := r.db.Model(&model.Job{}).
		Where("user_id = ?", userID).
		Where("job_number = ?", jobNumber).
		Update("active", active)
	if result.Error != nil {
		return fmt.Errorf("update job status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("job: %w", ErrNotFound)
	}
	return nil
}

// GetJob returns the user's job with the given job number.
func (r *Repository) GetJob(userID uint, jobNumber string) (*model.Job, error) {
	var job model.Job
	err := r.db.
		Where("user_id = ?", userID).
		Where("job_number = ?", jobNumber).
		First(&job).Error
	if err != nil {
		return nil, wrapLookup("job", err)
	}
	return &job, nil
}

// GetAnyJobs returns every active job belonging to the user, unpaged.
func (r *Repository) GetAnyJobs(userID uint) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.
		Where("user_id = ?", userID).
		Where("active = ?", model.StatusActive).
		Order("id").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// GetJobs returns one page of the user's active jobs of one machine
// type, newest job number first.
func (r *Repository) GetJobs(userID uint, params PagingParams, machType string) (*PagedList[model.Job], error) {
	query := r.db.Model(&model.Job{}).
		Where("user_id = ?", userID).
		Where("active = ?", model.StatusActive).
		Where("mach_type = ?", machType).
		Order("job_number DESC").
		Order("id")
	return newPagedList[model.Job](query, params)
}

// GetJobsByDate returns one page of the user's active jobs of one
// machine type, earliest delivery date first.
func (r *Repository) GetJobsByDate(userID uint, params PagingParams, machType string) (*PagedList[model.Job], error) {
	query := r.db.Model(&model.Job{}).
		Where("user_id = ?", userID).
		Where("active = ?", model.StatusActive).
		Where("mach_type = ?", machType).
		Order("delivery_date").
		Order("id")
	return newPagedList[model.Job](query, params)
}

// GetAllJobsByType returns one page of the user's jobs of one machine
// type regardless of status, newest job number first.
func (r *Repository) GetAllJobsByType(userID uint, params PagingParams, machType string) (*PagedList[model.Job], error) {
	query := r.db.Model(&model.Job{}).
		Where("user_id = ?", userID).
		Where("mach_type = ?", machType).
		Order("job_number DESC").
		Order("id")
	return newPagedList[model.Job](query, params)
}

// GetJobsByPart returns the user's jobs referencing one part number.
func (r *Repository) GetJobsByPart(userID uint, partNumber string) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.
		Where("user_id = ?", userID).
		Where("part_number = ?", partNumber).
		Order("id").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("list jobs by part: %w", err)
	}
	return jobs, nil
}

// DeleteJob removes the user's job together with its operations,
// production lots and hourly counts. The cascade runs in one
// transaction; a failure on any step rolls back the whole delete.
func (r *Repository) DeleteJob(userID uint, jobNumber string) error {
	job, err := r.GetJob(userID, jobNumber)
	if err != nil {
		return err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		scoped := func(m interface{}) *gorm.DB {
			return tx.Where("user_id = ?", userID).Where("job_number = ?", jobNumber).Delete(m)
		}
		if result := scoped(&model.Hourly{}); result.Error != nil {
			return fmt.Errorf("delete hourly counts: %w", result.Error)
		}
		if result := scoped(&model.Production{}); result.Error != nil {
			return fmt.Errorf("delete production lots: %w", result.Error)
		}
		if result := scoped(&model.Operation{}); result.Error != nil {
			return fmt.Errorf("delete operations: %w", result.Error)
		}
		if result := tx.Delete(&model.Job{}, job.ID); result.Error != nil {
			return fmt.Errorf("delete job: %w", result.Error)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete job %s: %w", jobNumber, err)
	}
	return nil
}
