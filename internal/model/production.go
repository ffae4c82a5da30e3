package model

import "time"

// ShiftFound is the sentinel shift label marking a manual count
// reconciliation entry. Found rows are never merged into ordinary
// shift totals.
const ShiftFound = "Found"

// Production is a recorded output count for an operation on a given
// date and shift.
type Production struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	JobNumber string    `json:"job_number" gorm:"type:varchar(50);index;not null"`
	OpNumber  string    `json:"op_number" gorm:"type:varchar(50);not null"`
	Machine   string    `json:"machine" gorm:"type:varchar(50);not null"`
	MachType  string    `json:"mach_type" gorm:"type:varchar(50);index"`
	Date      time.Time `json:"date" gorm:"index"`
	Shift     string    `json:"shift" gorm:"type:varchar(20);index"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsFound reports whether the row is a reconciliation entry rather
// than routine shift production.
func (p *Production) IsFound() bool {
	return p.Shift == ShiftFound
}
