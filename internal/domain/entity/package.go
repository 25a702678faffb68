// Package entity contains the core business objects of the project.
package entity

// Package is a priced, time-boxed entitlement granting access to one or
// more bouquets.
type Package struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	DurationDays int      `json:"durationDays"`
	Bouquets     []string `json:"bouquets"` // Bouquet names granted by this package.
}
