package models

import "gorm.io/gorm"

// Course represents a university course offering
type Course struct {
	gorm.Model
	Code        string `json:"code" gorm:"uniqueIndex;size:20;not null"` // e.g. CS101
	Title       string `json:"title" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`
	Credits     int    `json:"credits" gorm:"not null"`
	Capacity    int    `json:"capacity" gorm:"not null"` // max concurrent enrollments
	Active      bool   `json:"active" gorm:"not null"`
}
