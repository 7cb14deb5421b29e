package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"backend/models"
)

var db *sql.DB

// DBConfigured reports whether the Postgres mirror is configured via env.
func DBConfigured() bool {
	return os.Getenv("DB_HOST") != ""
}

// InitDB opens the connection pool to the quotation_items mirror database.
func InitDB() *sql.DB {
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	connStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		user, password, dbname, host, port)

	var err error
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	return db
}

// GetDB returns the pool, or nil when no database is configured.
func GetDB() *sql.DB {
	return db
}

// FetchQuotationItems reads every row of quotation_items for re-indexing.
// Nullable columns are scanned through sql.Null* so missing values stay zero.
func FetchQuotationItems(db *sql.DB) ([]models.QuotationItem, error) {
	rows, err := db.Query(`
		SELECT id, customername, customerphone, customeremail, customerid, customercode,
		       quotationid, quotationcode, quptationstatus, quotationtotalamount,
		       quotationtermsconditions, quotationsellerremarks, quotationissuedby,
		       COALESCE(to_char(quotationcreatedat, 'YYYY-MM-DD"T"HH24:MI:SS'), ''),
		       itemname, itemspecifications, itembrand, itemquantity,
		       COALESCE(to_char(itemdeliverydate, 'YYYY-MM-DD'), ''),
		       itempricedemanded,
		       COALESCE(to_char(itempricevalidtill, 'YYYY-MM-DD'), ''),
		       itemlistingprice, itemsellerdiscount, itemcustomerdiscount,
		       itempurchaseprice, itemsellingprice, itemproductid, itemhsncode,
		       itemuom, itemtaxpercent, sellername, sellerphone
		FROM quotation_items ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.QuotationItem
	for rows.Next() {
		var (
			q models.QuotationItem

			customerName, customerPhone, customerEmail, customerCode  sql.NullString
			quotationCode, quotationStatus, termsConditions           sql.NullString
			sellerRemarks, issuedBy, createdAt                        sql.NullString
			itemName, itemSpecifications, itemBrand                   sql.NullString
			deliveryDate, priceDemanded, priceValidTill               sql.NullString
			hsnCode, uom, taxPercent, sellerName, sellerPhone         sql.NullString
			customerID, quotationID, productID                        sql.NullInt64
			totalAmount, quantity, listingPrice, sellerDiscount       sql.NullFloat64
			customerDiscount, purchasePrice, sellingPrice             sql.NullFloat64
		)
		err := rows.Scan(&q.ID, &customerName, &customerPhone, &customerEmail, &customerID, &customerCode,
			&quotationID, &quotationCode, &quotationStatus, &totalAmount,
			&termsConditions, &sellerRemarks, &issuedBy, &createdAt,
			&itemName, &itemSpecifications, &itemBrand, &quantity,
			&deliveryDate, &priceDemanded, &priceValidTill,
			&listingPrice, &sellerDiscount, &customerDiscount,
			&purchasePrice, &sellingPrice, &productID, &hsnCode,
			&uom, &taxPercent, &sellerName, &sellerPhone)
		if err != nil {
			return nil, err
		}

		q.CustomerName = customerName.String
		q.CustomerPhone = customerPhone.String
		q.CustomerEmail = customerEmail.String
		q.CustomerID = int(customerID.Int64)
		q.CustomerCode = customerCode.String
		q.QuotationID = int(quotationID.Int64)
		q.QuotationCode = quotationCode.String
		q.QuotationStatus = quotationStatus.String
		q.QuotationTotalAmount = totalAmount.Float64
		q.QuotationTermsConditions = termsConditions.String
		q.QuotationSellerRemarks = sellerRemarks.String
		q.QuotationIssuedBy = issuedBy.String
		q.QuotationCreatedAt = createdAt.String
		q.ItemName = itemName.String
		q.ItemSpecifications = itemSpecifications.String
		q.ItemBrand = itemBrand.String
		q.ItemQuantity = quantity.Float64
		q.ItemDeliveryDate = deliveryDate.String
		q.ItemPriceDemanded = priceDemanded.String
		q.ItemPriceValidTill = priceValidTill.String
		q.ItemListingPrice = listingPrice.Float64
		q.ItemSellerDiscount = sellerDiscount.Float64
		q.ItemCustomerDiscount = customerDiscount.Float64
		q.ItemPurchasePrice = purchasePrice.Float64
		q.ItemSellingPrice = sellingPrice.Float64
		q.ItemProductID = int(productID.Int64)
		q.ItemHSNCode = hsnCode.String
		q.ItemUOM = uom.String
		q.ItemTaxPercent = taxPercent.String
		q.SellerName = sellerName.String
		q.SellerPhone = sellerPhone.String

		items = append(items, q)
	}
	return items, rows.Err()
}
