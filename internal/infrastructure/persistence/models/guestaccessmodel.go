package models

type GuestAccessModel struct {
	ID          uint   `gorm:"primaryKey"`
	GuestID     string `gorm:"uniqueIndex;size:36;not null"`
	Name        string `gorm:"size:100;not null"`
	Status      string `gorm:"size:20;not null;index"`
	RequestedAt int64  `gorm:"not null;index"`
	ApprovedAt  *int64
	ExpiresAt   *int64 `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (GuestAccessModel) TableName() string {
	return "guest_access_records"
}
