// Package entity contains the core business objects of the project.
package entity

// Source protocols supported by the playback clients.
const (
	SourceTypeHLS  = "hls"
	SourceTypeDASH = "dash"
)

// ClearKey carries clear-key DRM material for a protected source. The
// material is stored as opaque strings and never used for decryption here.
type ClearKey struct {
	KID string `json:"kid"`
	Key string `json:"key"`
}

// ChannelSource is one playback origin for a channel. A dash source must
// carry clear-key material; an hls source may optionally carry it.
type ChannelSource struct {
	Name string    `json:"name"` // Server label shown to operators.
	URL  string    `json:"url"`  // Playback URL.
	Type string    `json:"type"` // SourceTypeHLS or SourceTypeDASH.
	DRM  *ClearKey `json:"drm,omitempty"`
}

// Channel is a broadcast entry in the content catalog.
type Channel struct {
	ID          string          `json:"id"`
	SID         string          `json:"sid"` // Broadcast service id.
	Name        string          `json:"name"`
	Img         string          `json:"img"` // Artwork reference.
	Category    string          `json:"category"`
	Bouquet     string          `json:"bouquet"`
	Description string          `json:"description"`
	Sources     []ChannelSource `json:"sources"`
}
