package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"backend/models"

	"github.com/xuri/excelize/v2"
)

func TestAddQuotation_Success(t *testing.T) {
	r, _, _, store := newTestRouter()

	rec, resp := doJSON(t, r, http.MethodPost, "/quotations/add", models.QuotationItem{
		ID: 7, CustomerName: "Acme", ItemName: "Bearing", ItemSellingPrice: 500,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", rec.Code, resp)
	}
	if resp["status"] != "success" {
		t.Errorf("status field = %v", resp["status"])
	}
	if resp["message"] != "Quotation item added successfully" {
		t.Errorf("message = %v", resp["message"])
	}
	if resp["item_id"] != "7" {
		t.Errorf("item_id = %v, want 7", resp["item_id"])
	}
	if count, _ := store.Count(); count != 1 {
		t.Errorf("stored count = %d, want 1", count)
	}
}

func TestAddQuotation_AppliesDefaults(t *testing.T) {
	r, _, _, store := newTestRouter()

	rec, _ := doJSON(t, r, http.MethodPost, "/quotations/add", models.QuotationItem{ID: 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	meta := store.items["1"].metadata
	if meta["quotationissuedby"] != "indispare" {
		t.Errorf("quotationissuedby = %v, want indispare", meta["quotationissuedby"])
	}
	if meta["itemtaxpercent"] != "18" {
		t.Errorf("itemtaxpercent = %v, want 18", meta["itemtaxpercent"])
	}
}

func TestAddQuotation_BadBody(t *testing.T) {
	r, _, _, _ := newTestRouter()

	rec, resp := doJSON(t, r, http.MethodPost, "/quotations/add", "not an object")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %v", rec.Code, resp)
	}
}

func TestAddQuotation_EmbedderFailure(t *testing.T) {
	r, _, emb, _ := newTestRouter()
	emb.err = errors.New("model offline")

	rec, resp := doJSON(t, r, http.MethodPost, "/quotations/add", models.QuotationItem{ID: 1})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if resp["error"] == nil || resp["error"] == "" {
		t.Errorf("error field missing: %v", resp)
	}
}

func TestBulkAddQuotations(t *testing.T) {
	r, _, _, store := newTestRouter()

	rec, resp := doJSON(t, r, http.MethodPost, "/quotations/bulk-add", []models.QuotationItem{
		{ID: 1, CustomerName: "Acme"},
		{QuotationCode: "Q2"},
		{CustomerName: "no ids"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", rec.Code, resp)
	}
	if resp["count"] != float64(3) {
		t.Errorf("count = %v, want 3", resp["count"])
	}
	if resp["message"] != "Added 3 quotation items successfully" {
		t.Errorf("message = %v", resp["message"])
	}
	if _, ok := store.items["item_2"]; !ok {
		t.Errorf("positional fallback id not stored, have %v", store.order)
	}
}

func TestDeleteQuotation(t *testing.T) {
	r, svc, _, store := newTestRouter()
	if _, err := svc.AddQuotationItem(models.QuotationItem{ID: 9}); err != nil {
		t.Fatalf("seed add: %v", err)
	}

	rec, resp := doJSON(t, r, http.MethodDelete, "/quotations/9", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", rec.Code, resp)
	}
	if resp["message"] != "Deleted quotation item 9" {
		t.Errorf("message = %v", resp["message"])
	}
	if count, _ := store.Count(); count != 0 {
		t.Errorf("count after delete = %d, want 0", count)
	}
}

func TestImportQuotationsExcel(t *testing.T) {
	r, _, _, store := newTestRouter()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"id", "customername", "itemname", "itemsellingprice"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	rows := [][]interface{}{
		{1, "Acme", "Bearing", 500},
		{2, "Globex", "Gasket", 120.5},
		{"bad-id", "Initech", "Coupling", 75},
	}
	for ri, row := range rows {
		for ci, v := range row {
			cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	rec, resp := doMultipart(t, r, "/quotations/import-excel", "quotations.xlsx", buf.Bytes())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", rec.Code, resp)
	}
	if resp["count"] != float64(2) {
		t.Errorf("count = %v, want 2", resp["count"])
	}
	if resp["skipped"] != float64(1) {
		t.Errorf("skipped = %v, want 1", resp["skipped"])
	}
	if _, ok := store.items["1"]; !ok {
		t.Errorf("imported item 1 not stored, have %v", store.order)
	}
	if _, ok := store.items["2"]; !ok {
		t.Errorf("imported item 2 not stored, have %v", store.order)
	}
}

func TestImportQuotationsExcel_NoFile(t *testing.T) {
	r, _, _, _ := newTestRouter()

	rec, resp := doJSON(t, r, http.MethodPost, "/quotations/import-excel", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %v", rec.Code, resp)
	}
}
