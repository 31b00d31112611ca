package models

// Product is the subset of the catalog record the storefront needs: pricing,
// digital/physical split, and playback metadata for audio products.
type Product struct {
	ID        string  `json:"_id" validate:"required"`
	Name      string  `json:"name"`
	Artist    string  `json:"artist,omitempty"`
	Image     string  `json:"image,omitempty"`
	Price     float64 `json:"price"`
	IsDigital bool    `json:"isDigital"`
	Stock     int     `json:"stock,omitempty"` // physical items only
}

// Track is the playback descriptor handed to the media player.
type Track struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Image    string `json:"image"`
	AudioURL string `json:"audioUrl"`
}
