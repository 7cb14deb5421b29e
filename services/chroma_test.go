package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newChromaTestServer(t *testing.T) (*httptest.Server, *chromaCalls) {
	t.Helper()
	calls := &chromaCalls{}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/collections", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode create collection: %v", err)
		}
		if body["name"] != "quotation_items" {
			t.Errorf("collection name = %v, want quotation_items", body["name"])
		}
		if body["get_or_create"] != true {
			t.Errorf("get_or_create = %v, want true", body["get_or_create"])
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "col-1", "name": "quotation_items"})
	})
	mux.HandleFunc("/api/v1/collections/col-1/upsert", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&calls.upsert); err != nil {
			t.Errorf("decode upsert: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/collections/col-1/query", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&calls.query); err != nil {
			t.Errorf("decode query: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ids":       [][]string{{"7", "Q2"}},
			"documents": [][]string{{"Customer: Acme", "Customer: Globex"}},
			"metadatas": [][]map[string]interface{}{{
				{"customername": "Acme"},
				{"customername": "Globex"},
			}},
			"distances": [][]float64{{0.12, 0.48}},
		})
	})
	mux.HandleFunc("/api/v1/collections/col-1/delete", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&calls.del); err != nil {
			t.Errorf("decode delete: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/collections/col-1/count", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("3"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, calls
}

type chromaCalls struct {
	upsert struct {
		IDs        []string                 `json:"ids"`
		Embeddings [][]float64              `json:"embeddings"`
		Documents  []string                 `json:"documents"`
		Metadatas  []map[string]interface{} `json:"metadatas"`
	}
	query struct {
		QueryEmbeddings [][]float64 `json:"query_embeddings"`
		NResults        int         `json:"n_results"`
		Include         []string    `json:"include"`
	}
	del struct {
		IDs []string `json:"ids"`
	}
}

func TestChromaStore_Upsert(t *testing.T) {
	srv, calls := newChromaTestServer(t)
	store, err := NewChromaStore(ChromaConfig{URL: srv.URL})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	err = store.Upsert(
		[]string{"7"},
		[][]float64{{0.1, 0.2}},
		[]string{"Customer: Acme"},
		[]map[string]interface{}{{"customername": "Acme"}},
	)
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}
	if len(calls.upsert.IDs) != 1 || calls.upsert.IDs[0] != "7" {
		t.Errorf("upsert ids = %v, want [7]", calls.upsert.IDs)
	}
	if len(calls.upsert.Embeddings) != 1 || len(calls.upsert.Embeddings[0]) != 2 {
		t.Errorf("upsert embeddings = %v", calls.upsert.Embeddings)
	}
	if calls.upsert.Metadatas[0]["customername"] != "Acme" {
		t.Errorf("upsert metadata = %v", calls.upsert.Metadatas)
	}
}

func TestChromaStore_Query(t *testing.T) {
	srv, calls := newChromaTestServer(t)
	store, err := NewChromaStore(ChromaConfig{URL: srv.URL})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	results, err := store.Query([]float64{0.1, 0.2}, 5)
	if err != nil {
		t.Fatalf("query error: %v", err)
	}
	if calls.query.NResults != 5 {
		t.Errorf("n_results sent = %d, want 5", calls.query.NResults)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].ID != "7" || results[0].Distance != 0.12 {
		t.Errorf("first result = %+v", results[0])
	}
	if results[1].Metadata["customername"] != "Globex" {
		t.Errorf("second result metadata = %v", results[1].Metadata)
	}
	if results[0].Distance > results[1].Distance {
		t.Errorf("results not in ascending distance order")
	}
}

func TestChromaStore_DeleteAndCount(t *testing.T) {
	srv, calls := newChromaTestServer(t)
	store, err := NewChromaStore(ChromaConfig{URL: srv.URL})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Delete([]string{"7"}); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if len(calls.del.IDs) != 1 || calls.del.IDs[0] != "7" {
		t.Errorf("delete ids = %v, want [7]", calls.del.IDs)
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestChromaStore_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewChromaStore(ChromaConfig{URL: srv.URL}); err == nil {
		t.Error("expected error when collection creation fails")
	}
}
