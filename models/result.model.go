package models

import "gorm.io/gorm"

// Result holds the grade and marks for exactly one enrollment. The unique
// index on EnrollmentID keeps it one row per enrollment under concurrent
// upserts.
type Result struct {
	gorm.Model
	EnrollmentID uint     `json:"enrollmentId" gorm:"uniqueIndex;not null"`
	Grade        string   `json:"grade" gorm:"size:5"`
	Marks        *float64 `json:"marks" gorm:"type:decimal(5,2)"` // 0.00 - 100.00, nullable
}
