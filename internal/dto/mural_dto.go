package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMuralRequest struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Technique   string   `json:"technique"`
	Year        int      `json:"year"`
	ImageURL    string   `json:"image_url"`
	WebpURL     string   `json:"webp_url"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description string   `json:"description"`
	Medidas     string   `json:"medidas"`
}

type UpdateMuralRequest struct {
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Technique   *string  `json:"technique"`
	Year        *int     `json:"year"`
	ImageURL    *string  `json:"image_url"`
	WebpURL     *string  `json:"webp_url"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description *string  `json:"description"`
	Medidas     *string  `json:"medidas"`
}

type MuralResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Technique   string    `json:"technique"`
	Year        int       `json:"year"`
	ImageURL    string    `json:"image_url"`
	WebpURL     string    `json:"webp_url"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Description string    `json:"description"`
	Medidas     string    `json:"medidas"`
	CreatedAt   time.Time `json:"created_at"`
}

type MuralListResponse struct {
	Murals []MuralResponse `json:"murals"`
	Total  int64           `json:"total"`
}

type UploadImageResponse struct {
	URL        string `json:"url"`
	DisplayURL string `json:"display_url"`
}
