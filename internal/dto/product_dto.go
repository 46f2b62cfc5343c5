package dto

// ProductOption is one entry of the quick-create product picker.
// The {id, text} shape matches what the admin select widget consumes.
type ProductOption struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// ProductSearchResponse wraps the picker options.
type ProductSearchResponse struct {
	Data []ProductOption `json:"data"`
}
