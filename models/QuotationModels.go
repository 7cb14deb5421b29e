package models

// QuotationItem mirrors the quotation_items table. Every field is optional on the
// API: a zero value means the caller did not supply it.
//
// Note: quptationstatus is not a typo on our side, the upstream table column is
// spelled that way.
type QuotationItem struct {
	ID int `gorm:"primaryKey;autoIncrement;column:id" json:"id"`

	// Customer information
	CustomerName  string `gorm:"column:customername;size:383" json:"customername"`
	CustomerPhone string `gorm:"column:customerphone;size:191" json:"customerphone"`
	CustomerEmail string `gorm:"column:customeremail;size:191" json:"customeremail"`
	CustomerID    int    `gorm:"column:customerid" json:"customerid"`
	CustomerCode  string `gorm:"column:customercode;size:100" json:"customercode"`

	// Quotation information
	QuotationID              int     `gorm:"column:quotationid" json:"quotationid"`
	QuotationCode            string  `gorm:"column:quotationcode;size:100" json:"quotationcode"`
	QuotationStatus          string  `gorm:"column:quptationstatus;size:100" json:"quptationstatus"`
	QuotationTotalAmount     float64 `gorm:"column:quotationtotalamount;type:numeric(12,2)" json:"quotationtotalamount"`
	QuotationTermsConditions string  `gorm:"column:quotationtermsconditions;type:text" json:"quotationtermsconditions"`
	QuotationSellerRemarks   string  `gorm:"column:quotationsellerremarks;size:100" json:"quotationsellerremarks"`
	QuotationIssuedBy        string  `gorm:"column:quotationissuedby;size:100;default:indispare" json:"quotationissuedby"`
	QuotationCreatedAt       string  `gorm:"column:quotationcreatedat;type:timestamp" json:"quotationcreatedat"`

	// Item information
	ItemName           string  `gorm:"column:itemname;size:100" json:"itemname"`
	ItemSpecifications string  `gorm:"column:itemspecifications;type:text" json:"itemspecifications"`
	ItemBrand          string  `gorm:"column:itembrand;size:100" json:"itembrand"`
	ItemQuantity       float64 `gorm:"column:itemquantity;type:numeric(12,2)" json:"itemquantity"`
	ItemDeliveryDate   string  `gorm:"column:itemdeliverydate;type:date" json:"itemdeliverydate"`
	ItemPriceDemanded  string  `gorm:"column:itempricedemanded;size:100" json:"itempricedemanded"`
	ItemPriceValidTill string  `gorm:"column:itempricevalidtill;type:date" json:"itempricevalidtill"`

	// Item pricing
	ItemListingPrice     float64 `gorm:"column:itemlistingprice;type:numeric(12,2)" json:"itemlistingprice"`
	ItemSellerDiscount   float64 `gorm:"column:itemsellerdiscount;type:numeric(12,2)" json:"itemsellerdiscount"`
	ItemCustomerDiscount float64 `gorm:"column:itemcustomerdiscount;type:numeric(12,2)" json:"itemcustomerdiscount"`
	ItemPurchasePrice    float64 `gorm:"column:itempurchaseprice;type:numeric(12,2)" json:"itempurchaseprice"`
	ItemSellingPrice     float64 `gorm:"column:itemsellingprice;type:numeric(12,2)" json:"itemsellingprice"`

	// Item additional details
	ItemProductID  int    `gorm:"column:itemproductid" json:"itemproductid"`
	ItemHSNCode    string `gorm:"column:itemhsncode;size:100" json:"itemhsncode"`
	ItemUOM        string `gorm:"column:itemuom;size:100" json:"itemuom"`
	ItemTaxPercent string `gorm:"column:itemtaxpercent;size:100;default:18" json:"itemtaxpercent"`

	// Seller information
	SellerName  string `gorm:"column:sellername;size:191" json:"sellername"`
	SellerPhone string `gorm:"column:sellerphone;size:191" json:"sellerphone"`
}

// TableName specifies the table name for QuotationItem
func (QuotationItem) TableName() string {
	return "quotation_items"
}

// ApplyDefaults fills the fields the API documents as defaulted when the caller
// left them empty.
func (q *QuotationItem) ApplyDefaults() {
	if q.QuotationIssuedBy == "" {
		q.QuotationIssuedBy = "indispare"
	}
	if q.ItemTaxPercent == "" {
		q.ItemTaxPercent = "18"
	}
}

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Question string `json:"question" binding:"required"`
	NResults int    `json:"n_results"`
}

// QueryResponse is the body returned by POST /query.
type QueryResponse struct {
	Question  string   `json:"question"`
	Answer    string   `json:"answer"`
	Documents []string `json:"documents"`
	Count     int      `json:"count"`
}
