package transport

import "github.com/avoronkov/catalog-api/internal/models"

// Response is the single success envelope used by every JSON-returning
// handler. Errors go through echo's HTTPError body instead.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenData struct {
	AccessToken string `json:"accessToken"`
}

type CreateProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PatchProductRequest uses pointer fields so omitted and null JSON values
// leave the stored field untouched.
type PatchProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type SearchResponse struct {
	Total    int64            `json:"total"`
	Products []models.Product `json:"products"`
}
