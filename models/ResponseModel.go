package models

// ErrorResponse is used in @Failure for error responses
type ErrorResponse struct {
	Error string `json:"error" example:"embedding request failed"`
}

// StatusResponse is the generic success envelope for write operations.
type StatusResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
}

// AddResponse is returned by POST /quotations/add.
type AddResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
	ItemID  string `json:"item_id"`
}

// BulkAddResponse is returned by POST /quotations/bulk-add and the import/sync endpoints.
type BulkAddResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// StatsResponse is returned by GET /stats.
type StatsResponse struct {
	Status     string `json:"status" example:"success"`
	TotalItems int    `json:"total_items"`
	Model      string `json:"model"`
	VectorDB   string `json:"vector_db" example:"ChromaDB"`
}
