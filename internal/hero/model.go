package hero

// Image is one slide of the landing page carousel. URL may be a remote
// address or an embedded data URI.
type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
