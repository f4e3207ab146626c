package models

// PageData represents common data passed to templates
type PageData struct {
	Title       string      `json:"title"`
	CurrentPage string      `json:"current_page"`
	Error       string      `json:"error,omitempty"`
	Data        interface{} `json:"data,omitempty"`
}
