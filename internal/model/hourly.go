package model

import "time"

// Hourly is a sub-shift count sample for a machine running an
// operation. Time is a zero-padded "HH:MM" clock label, so the
// lexicographic order of the column is also chronological.
type Hourly struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Date      time.Time `json:"date" gorm:"index"`
	Machine   string    `json:"machine" gorm:"type:varchar(50);index;not null"`
	JobNumber string    `json:"job_number" gorm:"type:varchar(50);index;not null"`
	OpNumber  string    `json:"op_number" gorm:"type:varchar(50);not null"`
	Time      string    `json:"time" gorm:"type:varchar(5);not null"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
