package models

import (
	"time"
)

// Course categories form a closed set matching the catalog's four sections.
const (
	CategoryMarketing       = "Pemasaran"
	CategoryDesign          = "Desain"
	CategorySelfDevelopment = "Pengembangan Diri"
	CategoryBusiness        = "Bisnis"
)

// Categories lists all valid course categories.
func Categories() []string {
	return []string{CategoryMarketing, CategoryDesign, CategorySelfDevelopment, CategoryBusiness}
}

// IsValidCategory reports whether the value belongs to the closed category set.
func IsValidCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Photos      *string   `json:"photos" db:"photos"`
	Mentor      string    `json:"mentor" db:"mentor"`
	RoleMentor  string    `json:"rolementor" db:"rolementor"`
	Avatar      *string   `json:"avatar" db:"avatar"`
	Company     string    `json:"company" db:"company"`
	Rating      float64   `json:"rating" db:"rating"` // one fractional digit, DECIMAL(2,1)
	ReviewCount int       `json:"review_count" db:"review_count"`
	Price       string    `json:"price" db:"price"`
	Category    string    `json:"category" db:"category"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
