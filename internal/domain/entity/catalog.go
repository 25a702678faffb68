// Package entity contains the core business objects of the project.
package entity

// Category is a named channel grouping used for browsing. No uniqueness
// constraint is enforced; duplicate names are possible.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ChannelCount int    `json:"channelCount"`
}

// Bouquet is a named bundle of channels sold as a unit.
type Bouquet struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ChannelCount int    `json:"channelCount"`
}
