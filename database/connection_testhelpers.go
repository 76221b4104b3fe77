package database

import "gorm.io/gorm"

// NewConnectionFromGorm wraps an already-open gorm handle. Tests use it to
// back a Connection with sqlite or sqlmock instead of the configured driver.
func NewConnectionFromGorm(db *gorm.DB) *Connection {
	return &Connection{driver: db}
}
