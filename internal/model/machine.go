package model

import "time"

// Machine represents a machine on the shop floor. CurrentJob is a
// denormalized pointer to the job number presently running on it.
type Machine struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_machine"`
	Machine    string    `json:"machine" gorm:"type:varchar(50);not null;uniqueIndex:idx_user_machine"`
	MachType   string    `json:"mach_type" gorm:"type:varchar(50);index"`
	CurrentJob string    `json:"current_job" gorm:"type:varchar(50)"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
