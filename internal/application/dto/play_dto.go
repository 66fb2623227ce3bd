package dto

// CreatePlayRequest alta de una obra en el catálogo.
type CreatePlayRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // tragedy | comedy | history | pastoral
}

// PlayResponse obra del catálogo.
type PlayResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
