package model

import "time"

// StatusActive is the active-status marker carried by jobs and parts.
const StatusActive = "Active"

// Job is a production work order for a part. JobNumber is unique per
// user; PartNumber references a Part belonging to the same user.
type Job struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_job"`
	JobNumber         string    `json:"job_number" gorm:"type:varchar(50);not null;uniqueIndex:idx_user_job"`
	PartNumber        string    `json:"part_number" gorm:"type:varchar(100);index;not null"`
	MachType          string    `json:"mach_type" gorm:"type:varchar(50);index"`
	Active            string    `json:"active" gorm:"type:varchar(20);index"`
	OrderQuantity     int       `json:"order_quantity"`
	PossibleQuantity  int       `json:"possible_quantity"`
	RemainingQuantity int       `json:"remaining_quantity"`
	Weight            float64   `json:"weight"`
	DeliveryDate      time.Time `json:"delivery_date" gorm:"index"`
	HeatLot           string    `json:"heat_lot" gorm:"type:varchar(100)"`
	Material          string    `json:"material" gorm:"type:varchar(100)"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
