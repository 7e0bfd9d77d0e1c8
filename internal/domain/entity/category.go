package entity

import "time"

// Category agrupa productos. El nombre es único.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
