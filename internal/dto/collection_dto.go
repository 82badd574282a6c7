package dto

import "encoding/json"

// Collection items are an opaque ordered JSON array; the server stores
// and returns them without interpreting the contents.
type ReplaceCollectionRequest struct {
	Items json.RawMessage `json:"items"`
}

type CollectionResponse struct {
	Items json.RawMessage `json:"items"`
}
