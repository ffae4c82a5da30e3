package model

import "time"

// Part is a catalog entry for a manufactured part. PartNumber is
// unique per user, not globally.
type Part struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_part"`
	PartNumber  string    `json:"part_number" gorm:"type:varchar(100);not null;uniqueIndex:idx_user_part"`
	MachType    string    `json:"mach_type" gorm:"type:varchar(50);index"`
	Active      string    `json:"active" gorm:"type:varchar(20);index"`
	Material    string    `json:"material" gorm:"type:varchar(100)"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
