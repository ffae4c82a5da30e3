package model

import "time"

// Operation is one process step of a job, assigned to a machine.
type Operation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_job_op"`
	JobNumber string    `json:"job_number" gorm:"type:varchar(50);not null;uniqueIndex:idx_user_job_op"`
	OpNumber  string    `json:"op_number" gorm:"type:varchar(50);not null;uniqueIndex:idx_user_job_op"`
	Machine   string    `json:"machine" gorm:"type:varchar(50);index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
