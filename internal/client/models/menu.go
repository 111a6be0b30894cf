package models

import "strings"

// MenuItem is one orderable product.
type MenuItem struct {
	Name        string `json:"name" yaml:"name"`
	Price       int64  `json:"price" yaml:"price"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// MenuSection groups items under a heading, e.g. "Cafea".
type MenuSection struct {
	Title string     `json:"title" yaml:"title"`
	Items []MenuItem `json:"items" yaml:"items"`
}

// Menu is the structured menu description.
type Menu struct {
	Sections []MenuSection `json:"sections" yaml:"sections"`
}

// Find returns the first item whose name matches name, ignoring case.
func (m Menu) Find(name string) (MenuItem, bool) {
	for _, s := range m.Sections {
		for _, it := range s.Items {
			if strings.EqualFold(it.Name, name) {
				return it, true
			}
		}
	}
	return MenuItem{}, false
}

// Len is the number of items across all sections.
func (m Menu) Len() int {
	n := 0
	for _, s := range m.Sections {
		n += len(s.Items)
	}
	return n
}

// Promo is a rotating banner entry.
type Promo struct {
	Text    string `json:"text"`
	Details string `json:"details"`
}
