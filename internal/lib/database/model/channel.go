package modeldb

import "time"

// Channel — отслеживаемый канал. Курсор LastMessageID монотонно не убывает.
type Channel struct {
	ID            uint   `gorm:"primaryKey"`
	Tag           string `gorm:"uniqueIndex;not null"`
	Name          string `gorm:"not null"`
	IsActive      bool   `gorm:"not null;default:false;index"`
	AddedBy       int64
	AddedAt       time.Time
	LastMessageID int64
	LastCheckAt   time.Time
}
