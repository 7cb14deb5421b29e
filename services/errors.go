package services

import "fmt"

// EmbeddingError reports a failure from the external embedding model.
type EmbeddingError struct {
	Op  string
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding failed during %s: %v", e.Op, e.Err)
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

// IndexWriteError reports a failed add/upsert against the vector index. ItemID
// carries the identifier of the record being written, or "batch" for bulk writes.
type IndexWriteError struct {
	ItemID string
	Err    error
}

func (e *IndexWriteError) Error() string {
	return fmt.Sprintf("vector index write failed for %s: %v", e.ItemID, e.Err)
}

func (e *IndexWriteError) Unwrap() error { return e.Err }

// IndexQueryError reports a failed similarity search.
type IndexQueryError struct {
	Err error
}

func (e *IndexQueryError) Error() string {
	return fmt.Sprintf("vector index query failed: %v", e.Err)
}

func (e *IndexQueryError) Unwrap() error { return e.Err }

// IndexDeleteError reports a failed delete by identifier.
type IndexDeleteError struct {
	ItemID string
	Err    error
}

func (e *IndexDeleteError) Error() string {
	return fmt.Sprintf("vector index delete failed for %s: %v", e.ItemID, e.Err)
}

func (e *IndexDeleteError) Unwrap() error { return e.Err }
