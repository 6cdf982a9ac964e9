package domain

// Genre is a catalog genre. Genres use a short string key as their
// identity (e.g. "action", "slice-of-life") and carry a display name.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
