package models

// Visit is one page view. Date is RFC 3339, Time is the local wall clock.
type Visit struct {
	Page string `json:"page"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// Theme is the persisted colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
