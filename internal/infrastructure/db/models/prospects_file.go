package models

import "time"

type ProspectsFile struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	UserID    int64  `gorm:"not null;index"`
	Data      []byte `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
}

func (ProspectsFile) TableName() string {
	return "prospects_files"
}

type ProspectsFileProgress struct {
	FileID    string `gorm:"type:uuid;primaryKey"`
	Total     int64  `gorm:"not null;default:0"`
	Done      int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (ProspectsFileProgress) TableName() string {
	return "prospects_files_progress"
}
