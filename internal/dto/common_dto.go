package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// MissingIDsResponse is an ErrorResponse that enumerates the referenced
// ids that do not exist, so the caller can surface exactly which ones.
type MissingIDsResponse struct {
	Error      bool     `json:"error"`
	Message    string   `json:"message"`
	MissingIDs []string `json:"missing_ids"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
