package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEmbedder struct {
	err error
}

func (s *stubEmbedder) ModelName() string { return "stub-model" }

func (s *stubEmbedder) Embed(text string) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	var sum float64
	for _, r := range text {
		sum += float64(r)
	}
	return []float64{sum, float64(len(text))}, nil
}

type storedItem struct {
	id        string
	embedding []float64
	document  string
	metadata  map[string]interface{}
}

type stubStore struct {
	items     map[string]storedItem
	order     []string
	upsertErr error
}

func newStubStore() *stubStore {
	return &stubStore{items: map[string]storedItem{}}
}

func (s *stubStore) Upsert(ids []string, embeddings [][]float64, documents []string, metadatas []map[string]interface{}) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	for i, id := range ids {
		if _, exists := s.items[id]; !exists {
			s.order = append(s.order, id)
		}
		s.items[id] = storedItem{id: id, embedding: embeddings[i], document: documents[i], metadata: metadatas[i]}
	}
	return nil
}

func (s *stubStore) Query(embedding []float64, nResults int) ([]services.SearchResult, error) {
	var results []services.SearchResult
	for i, id := range s.order {
		item := s.items[id]
		results = append(results, services.SearchResult{
			ID:       item.id,
			Document: item.document,
			Metadata: item.metadata,
			Distance: 0.1 * float64(i+1),
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	if len(results) > nResults {
		results = results[:nResults]
	}
	return results, nil
}

func (s *stubStore) Delete(ids []string) error {
	for _, id := range ids {
		if _, exists := s.items[id]; exists {
			delete(s.items, id)
			for i, o := range s.order {
				if o == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		}
	}
	return nil
}

func (s *stubStore) Count() (int, error) {
	return len(s.items), nil
}

func newTestRouter() (*gin.Engine, *services.EmbeddingService, *stubEmbedder, *stubStore) {
	emb := &stubEmbedder{}
	store := newStubStore()
	svc := services.NewEmbeddingService(emb, store)

	r := gin.New()
	r.GET("/", Root())
	r.GET("/health", HealthCheck())
	r.GET("/stats", GetStats(svc))
	r.POST("/quotations/add", AddQuotation(svc))
	r.POST("/quotations/bulk-add", BulkAddQuotations(svc))
	r.POST("/quotations/import-excel", ImportQuotationsExcel(svc))
	r.DELETE("/quotations/:item_id", DeleteQuotation(svc))
	r.POST("/query", QueryQuotations(svc))
	r.GET("/query-simple", QuerySimple(svc))
	return r, svc, emb, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, resp
}

func doMultipart(t *testing.T, r *gin.Engine, path, filename string, content []byte) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp map[string]interface{}
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, resp
}
