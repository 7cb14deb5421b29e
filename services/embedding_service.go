package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"backend/models"
)

// EmbeddingService indexes quotation items into a vector store and answers
// natural-language questions over them. The embedder and store are injected so
// they can be stubbed in tests.
type EmbeddingService struct {
	embedder Embedder
	store    VectorStore
}

// NewEmbeddingService creates the service around the given collaborators.
func NewEmbeddingService(embedder Embedder, store VectorStore) *EmbeddingService {
	return &EmbeddingService{embedder: embedder, store: store}
}

// ModelName reports the embedding model identifier for /stats.
func (s *EmbeddingService) ModelName() string {
	return s.embedder.ModelName()
}

// BuildDocumentText flattens a quotation item into searchable text. A field is
// rendered only when set: empty strings and zero numbers are skipped, matching
// how the rows are produced upstream.
func (s *EmbeddingService) BuildDocumentText(item models.QuotationItem) string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}

	// Customer information
	add("Customer", item.CustomerName)
	add("Email", item.CustomerEmail)
	add("Phone", item.CustomerPhone)

	// Quotation information
	add("Quotation Code", item.QuotationCode)
	add("Status", item.QuotationStatus)
	add("Total Amount", formatNumber(item.QuotationTotalAmount))

	// Item information
	add("Item", item.ItemName)
	add("Brand", item.ItemBrand)
	add("Specifications", item.ItemSpecifications)
	add("Quantity", formatNumber(item.ItemQuantity))

	// Pricing information
	add("Selling Price", formatNumber(item.ItemSellingPrice))
	add("Listing Price", formatNumber(item.ItemListingPrice))

	// Seller information
	add("Seller", item.SellerName)

	return strings.Join(parts, " | ")
}

// itemID resolves the external identifier for a record: id, then quotationcode,
// then a placeholder. Uniqueness is the caller's responsibility.
func itemID(item models.QuotationItem) string {
	if item.ID != 0 {
		return strconv.Itoa(item.ID)
	}
	if item.QuotationCode != "" {
		return item.QuotationCode
	}
	return "unknown"
}

// metadataFor returns the scalar fields of the item keyed by their wire names.
// The vector store only accepts scalar metadata values, so unset fields are
// dropped rather than sent as nulls.
func metadataFor(item models.QuotationItem) map[string]interface{} {
	meta := map[string]interface{}{}
	putInt := func(key string, v int) {
		if v != 0 {
			meta[key] = v
		}
	}
	putStr := func(key string, v string) {
		if v != "" {
			meta[key] = v
		}
	}
	putNum := func(key string, v float64) {
		if v != 0 {
			meta[key] = v
		}
	}

	putInt("id", item.ID)
	putStr("customername", item.CustomerName)
	putStr("customerphone", item.CustomerPhone)
	putStr("customeremail", item.CustomerEmail)
	putInt("customerid", item.CustomerID)
	putStr("customercode", item.CustomerCode)
	putInt("quotationid", item.QuotationID)
	putStr("quotationcode", item.QuotationCode)
	putStr("quptationstatus", item.QuotationStatus)
	putNum("quotationtotalamount", item.QuotationTotalAmount)
	putStr("quotationtermsconditions", item.QuotationTermsConditions)
	putStr("quotationsellerremarks", item.QuotationSellerRemarks)
	putStr("quotationissuedby", item.QuotationIssuedBy)
	putStr("quotationcreatedat", item.QuotationCreatedAt)
	putStr("itemname", item.ItemName)
	putStr("itemspecifications", item.ItemSpecifications)
	putStr("itembrand", item.ItemBrand)
	putNum("itemquantity", item.ItemQuantity)
	putStr("itemdeliverydate", item.ItemDeliveryDate)
	putStr("itempricedemanded", item.ItemPriceDemanded)
	putStr("itempricevalidtill", item.ItemPriceValidTill)
	putNum("itemlistingprice", item.ItemListingPrice)
	putNum("itemsellerdiscount", item.ItemSellerDiscount)
	putNum("itemcustomerdiscount", item.ItemCustomerDiscount)
	putNum("itempurchaseprice", item.ItemPurchasePrice)
	putNum("itemsellingprice", item.ItemSellingPrice)
	putInt("itemproductid", item.ItemProductID)
	putStr("itemhsncode", item.ItemHSNCode)
	putStr("itemuom", item.ItemUOM)
	putStr("itemtaxpercent", item.ItemTaxPercent)
	putStr("sellername", item.SellerName)
	putStr("sellerphone", item.SellerPhone)
	return meta
}

// AddQuotationItem indexes a single item and returns the identifier it was
// stored under.
func (s *EmbeddingService) AddQuotationItem(item models.QuotationItem) (string, error) {
	id := itemID(item)
	docText := s.BuildDocumentText(item)

	embedding, err := s.embedder.Embed(docText)
	if err != nil {
		log.Printf("Error adding quotation item %s: %v", id, err)
		return "", &IndexWriteError{ItemID: id, Err: &EmbeddingError{Op: "add", Err: err}}
	}

	err = s.store.Upsert(
		[]string{id},
		[][]float64{embedding},
		[]string{docText},
		[]map[string]interface{}{metadataFor(item)},
	)
	if err != nil {
		log.Printf("Error adding quotation item %s: %v", id, err)
		return "", &IndexWriteError{ItemID: id, Err: err}
	}
	log.Printf("Added quotation item %s to vector database", id)
	return id, nil
}

// BulkAddQuotationItems embeds each item and performs a single batched upsert.
// Items without id or quotationcode get an item_<position> fallback identifier,
// unique within this batch only. The store call is atomic: on failure nothing
// from the batch is considered persisted.
func (s *EmbeddingService) BulkAddQuotationItems(items []models.QuotationItem) error {
	ids := make([]string, 0, len(items))
	embeddings := make([][]float64, 0, len(items))
	documents := make([]string, 0, len(items))
	metadatas := make([]map[string]interface{}, 0, len(items))

	for i, item := range items {
		docText := s.BuildDocumentText(item)
		embedding, err := s.embedder.Embed(docText)
		if err != nil {
			log.Printf("Error in bulk add at position %d: %v", i, err)
			return &IndexWriteError{ItemID: "batch", Err: &EmbeddingError{Op: "bulk add", Err: err}}
		}
		id := itemID(item)
		if id == "unknown" {
			id = fmt.Sprintf("item_%d", i)
		}
		ids = append(ids, id)
		embeddings = append(embeddings, embedding)
		documents = append(documents, docText)
		metadatas = append(metadatas, metadataFor(item))
	}

	if err := s.store.Upsert(ids, embeddings, documents, metadatas); err != nil {
		log.Printf("Error in bulk add: %v", err)
		return &IndexWriteError{ItemID: "batch", Err: err}
	}
	log.Printf("Added %d quotation items to vector database", len(items))
	return nil
}

// Query embeds the question and returns up to nResults matches ordered best
// first, exactly as ranked by the store. An empty index yields an empty slice,
// not an error.
func (s *EmbeddingService) Query(question string, nResults int) ([]SearchResult, error) {
	if nResults <= 0 {
		nResults = 5
	}
	embedding, err := s.embedder.Embed(question)
	if err != nil {
		log.Printf("Error querying vector database: %v", err)
		return nil, &EmbeddingError{Op: "query", Err: err}
	}
	results, err := s.store.Query(embedding, nResults)
	if err != nil {
		log.Printf("Error querying vector database: %v", err)
		return nil, &IndexQueryError{Err: err}
	}
	return results, nil
}

// GenerateAnswer renders a natural-language answer from ranked results. It is
// a pure formatter: results are rendered in the order given, distance is never
// inspected.
func (s *EmbeddingService) GenerateAnswer(question string, results []SearchResult) string {
	if len(results) == 0 {
		return "I couldn't find any relevant information for your question."
	}

	var b strings.Builder
	b.WriteString("Based on the quotation data, here's what I found:\n")
	for idx, r := range results {
		fmt.Fprintf(&b, "\n%d. ", idx+1)
		if v, ok := metaString(r.Metadata, "quotationcode"); ok {
			b.WriteString("Quotation " + v + ": ")
		}
		if v, ok := metaString(r.Metadata, "itemname"); ok {
			b.WriteString(v + " ")
		}
		if v, ok := metaString(r.Metadata, "customername"); ok {
			b.WriteString("for " + v + " ")
		}
		if v, ok := metaString(r.Metadata, "itemsellingprice"); ok {
			b.WriteString("at ₹" + v + " ")
		}
		if v, ok := metaString(r.Metadata, "quptationstatus"); ok {
			b.WriteString("(Status: " + v + ")")
		}
	}
	return b.String()
}

// DeleteByID removes an item from the vector database.
func (s *EmbeddingService) DeleteByID(id string) error {
	if err := s.store.Delete([]string{id}); err != nil {
		log.Printf("Error deleting quotation item %s: %v", id, err)
		return &IndexDeleteError{ItemID: id, Err: err}
	}
	log.Printf("Deleted quotation item %s from vector database", id)
	return nil
}

// Count returns the number of items in the collection.
func (s *EmbeddingService) Count() (int, error) {
	return s.store.Count()
}

// formatNumber renders a numeric field, or "" when it is unset (zero).
func formatNumber(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// metaString renders a metadata value for the answer text. Numbers coming back
// from the store are float64 after the JSON round trip.
func metaString(meta map[string]interface{}, key string) (string, bool) {
	v, ok := meta[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		if t == "" {
			return "", false
		}
		return t, true
	case float64:
		if t == 0 {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		if t == 0 {
			return "", false
		}
		return strconv.Itoa(t), true
	default:
		return fmt.Sprintf("%v", t), true
	}
}
