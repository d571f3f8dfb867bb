package dto

import "time"

// AddClientInput body para POST /clients. ID opcional.
type AddClientInput struct {
	ID       string      `json:"id,omitempty"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Document string      `json:"document"`
	Address  *AddressDTO `json:"address"`
}

// FindClientInput búsqueda de cliente por ID.
type FindClientInput struct {
	ID string `json:"id"`
}

// ClientOutput cliente en respuestas (add y find).
type ClientOutput struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Document  string     `json:"document"`
	Address   AddressDTO `json:"address"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
