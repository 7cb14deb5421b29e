package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// SearchResult is one ranked match returned by the vector store, best first.
type SearchResult struct {
	ID       string
	Document string
	Metadata map[string]interface{}
	Distance float64
}

// VectorStore persists embedded documents and supports similarity search.
// Implementations must be safe for concurrent use.
type VectorStore interface {
	Upsert(ids []string, embeddings [][]float64, documents []string, metadatas []map[string]interface{}) error
	Query(embedding []float64, nResults int) ([]SearchResult, error)
	Delete(ids []string) error
	Count() (int, error)
}

// ChromaStore is a minimal REST client to a ChromaDB server. The collection is
// created on first use if missing.
type ChromaStore struct {
	url          string
	collection   string
	collectionID string
	client       *http.Client
}

// ChromaConfig configures the ChromaDB client.
type ChromaConfig struct {
	URL        string
	Collection string
	Timeout    time.Duration
}

// NewChromaStore creates the client and resolves (or creates) the collection.
func NewChromaStore(cfg ChromaConfig) (*ChromaStore, error) {
	if cfg.URL == "" {
		cfg.URL = "http://localhost:8001"
	}
	if cfg.Collection == "" {
		cfg.Collection = "quotation_items"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	s := &ChromaStore{
		url:        cfg.URL,
		collection: cfg.Collection,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
	if err := s.ensureCollection(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewChromaStoreFromEnv reads CHROMA_URL and CHROMA_COLLECTION.
func NewChromaStoreFromEnv() (*ChromaStore, error) {
	return NewChromaStore(ChromaConfig{
		URL:        os.Getenv("CHROMA_URL"),
		Collection: os.Getenv("CHROMA_COLLECTION"),
	})
}

func (s *ChromaStore) ensureCollection() error {
	body := map[string]interface{}{
		"name":          s.collection,
		"get_or_create": true,
		"metadata": map[string]interface{}{
			"description": "Quotation items with customer, product, and pricing information",
		},
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := s.postJSON("/api/v1/collections", body, &resp); err != nil {
		return err
	}
	if resp.ID == "" {
		return fmt.Errorf("chroma returned no collection id for %q", s.collection)
	}
	s.collectionID = resp.ID
	return nil
}

// Upsert writes the given documents under their ids, overwriting existing entries.
func (s *ChromaStore) Upsert(ids []string, embeddings [][]float64, documents []string, metadatas []map[string]interface{}) error {
	body := map[string]interface{}{
		"ids":        ids,
		"embeddings": embeddings,
		"documents":  documents,
		"metadatas":  metadatas,
	}
	return s.postJSON(fmt.Sprintf("/api/v1/collections/%s/upsert", s.collectionID), body, nil)
}

// Query returns up to nResults matches ordered by ascending distance.
func (s *ChromaStore) Query(embedding []float64, nResults int) ([]SearchResult, error) {
	if nResults <= 0 {
		nResults = 5
	}
	body := map[string]interface{}{
		"query_embeddings": [][]float64{embedding},
		"n_results":        nResults,
		"include":          []string{"documents", "metadatas", "distances"},
	}
	var resp struct {
		IDs       [][]string                 `json:"ids"`
		Documents [][]string                 `json:"documents"`
		Metadatas [][]map[string]interface{} `json:"metadatas"`
		Distances [][]float64                `json:"distances"`
	}
	if err := s.postJSON(fmt.Sprintf("/api/v1/collections/%s/query", s.collectionID), body, &resp); err != nil {
		return nil, err
	}
	if len(resp.IDs) == 0 {
		return nil, nil
	}
	results := make([]SearchResult, 0, len(resp.IDs[0]))
	for i := range resp.IDs[0] {
		r := SearchResult{ID: resp.IDs[0][i]}
		if len(resp.Documents) > 0 && i < len(resp.Documents[0]) {
			r.Document = resp.Documents[0][i]
		}
		if len(resp.Metadatas) > 0 && i < len(resp.Metadatas[0]) {
			r.Metadata = resp.Metadatas[0][i]
		}
		if len(resp.Distances) > 0 && i < len(resp.Distances[0]) {
			r.Distance = resp.Distances[0][i]
		}
		results = append(results, r)
	}
	return results, nil
}

// Delete removes the given ids from the collection.
func (s *ChromaStore) Delete(ids []string) error {
	body := map[string]interface{}{"ids": ids}
	return s.postJSON(fmt.Sprintf("/api/v1/collections/%s/delete", s.collectionID), body, nil)
}

// Count returns the number of stored items.
func (s *ChromaStore) Count() (int, error) {
	resp, err := s.client.Get(s.url + fmt.Sprintf("/api/v1/collections/%s/count", s.collectionID))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return 0, fmt.Errorf("chroma GET count failed: %s", resp.Status)
	}
	var count int
	if err := json.NewDecoder(resp.Body).Decode(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *ChromaStore) postJSON(path string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, s.url+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("chroma POST %s failed: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
