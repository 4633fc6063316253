package model

import "time"

// Record is one persisted key/value blob in the SQLite backend.
type Record struct {
	Key       string `gorm:"primaryKey;column:record_key"`
	Value     []byte
	UpdatedAt time.Time
}
