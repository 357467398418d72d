package models

import "time"

// TimestampFields holds the row timestamps shared by every table.
type TimestampFields struct {
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"` // Nullable until the first modification
}
