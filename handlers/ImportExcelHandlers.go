package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ImportQuotationsExcel godoc
// @Summary      Import quotation items from an Excel file
// @Description  Expects a header row of field names (the JSON names of the quotation item) followed by one row per item. All parsed rows are indexed in a single bulk add.
// @Tags         quotations
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Excel file (.xlsx)"
// @Success      200   {object}  models.BulkAddResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /quotations/import-excel [post]
func ImportQuotationsExcel(svc *services.EmbeddingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file not found"})
			return
		}

		src, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to open file"})
			return
		}
		defer src.Close()

		f, err := excelize.OpenReader(src)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid Excel file: %v", err)})
			return
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file has no sheets"})
			return
		}
		rows, err := f.GetRows(sheets[0])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Error reading Excel sheet: %v", err)})
			return
		}
		if len(rows) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file must have at least a header row and one data row"})
			return
		}

		items, skipped := parseQuotationRows(rows)
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no valid quotation rows found"})
			return
		}
		for i := range items {
			items[i].ApplyDefaults()
		}

		if err := svc.BulkAddQuotationItems(items); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": fmt.Sprintf("Imported %d quotation items successfully", len(items)),
			"count":   len(items),
			"skipped": skipped,
		})
	}
}

// parseQuotationRows maps an Excel sheet to quotation items. The header row
// names the fields by their JSON names; unrecognized columns are ignored. A row
// is skipped when a numeric cell does not parse or the row is entirely empty.
func parseQuotationRows(rows [][]string) ([]models.QuotationItem, int) {
	header := map[int]string{}
	for i, name := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(name))
	}

	var items []models.QuotationItem
	skipped := 0
rowLoop:
	for _, row := range rows[1:] {
		var item models.QuotationItem
		empty := true
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			empty = false
			if err := setQuotationField(&item, header[i], cell); err != nil {
				skipped++
				continue rowLoop
			}
		}
		if empty {
			skipped++
			continue
		}
		items = append(items, item)
	}
	return items, skipped
}

func setQuotationField(item *models.QuotationItem, field, value string) error {
	setInt := func(dst *int) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
	setFloat := func(dst *float64) error {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		*dst = f
		return nil
	}

	switch field {
	case "id":
		return setInt(&item.ID)
	case "customername":
		item.CustomerName = value
	case "customerphone":
		item.CustomerPhone = value
	case "customeremail":
		item.CustomerEmail = value
	case "customerid":
		return setInt(&item.CustomerID)
	case "customercode":
		item.CustomerCode = value
	case "quotationid":
		return setInt(&item.QuotationID)
	case "quotationcode":
		item.QuotationCode = value
	case "quptationstatus":
		item.QuotationStatus = value
	case "quotationtotalamount":
		return setFloat(&item.QuotationTotalAmount)
	case "quotationtermsconditions":
		item.QuotationTermsConditions = value
	case "quotationsellerremarks":
		item.QuotationSellerRemarks = value
	case "quotationissuedby":
		item.QuotationIssuedBy = value
	case "quotationcreatedat":
		item.QuotationCreatedAt = value
	case "itemname":
		item.ItemName = value
	case "itemspecifications":
		item.ItemSpecifications = value
	case "itembrand":
		item.ItemBrand = value
	case "itemquantity":
		return setFloat(&item.ItemQuantity)
	case "itemdeliverydate":
		item.ItemDeliveryDate = value
	case "itempricedemanded":
		item.ItemPriceDemanded = value
	case "itempricevalidtill":
		item.ItemPriceValidTill = value
	case "itemlistingprice":
		return setFloat(&item.ItemListingPrice)
	case "itemsellerdiscount":
		return setFloat(&item.ItemSellerDiscount)
	case "itemcustomerdiscount":
		return setFloat(&item.ItemCustomerDiscount)
	case "itempurchaseprice":
		return setFloat(&item.ItemPurchasePrice)
	case "itemsellingprice":
		return setFloat(&item.ItemSellingPrice)
	case "itemproductid":
		return setInt(&item.ItemProductID)
	case "itemhsncode":
		item.ItemHSNCode = value
	case "itemuom":
		item.ItemUOM = value
	case "itemtaxpercent":
		item.ItemTaxPercent = value
	case "sellername":
		item.SellerName = value
	case "sellerphone":
		item.SellerPhone = value
	}
	return nil
}
