package handlers

import (
	"fmt"
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// AddQuotation godoc
// @Summary      Add a quotation item
// @Description  Builds the searchable document for the item, embeds it and stores it in the vector database.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body      models.QuotationItem  true  "Quotation item"
// @Success      200   {object}  models.AddResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /quotations/add [post]
func AddQuotation(svc *services.EmbeddingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.QuotationItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.ApplyDefaults()

		itemID, err := svc.AddQuotationItem(item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Quotation item added successfully",
			"item_id": itemID,
		})
	}
}

// BulkAddQuotations godoc
// @Summary      Add quotation items in bulk
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body      []models.QuotationItem  true  "Quotation items"
// @Success      200   {object}  models.BulkAddResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /quotations/bulk-add [post]
func BulkAddQuotations(svc *services.EmbeddingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.QuotationItem
		if err := c.ShouldBindJSON(&items); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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
			"message": fmt.Sprintf("Added %d quotation items successfully", len(items)),
			"count":   len(items),
		})
	}
}

// DeleteQuotation godoc
// @Summary      Delete a quotation item
// @Tags         quotations
// @Produce      json
// @Param        item_id  path      string  true  "Item ID"
// @Success      200      {object}  models.StatusResponse
// @Failure      500      {object}  models.ErrorResponse
// @Router       /quotations/{item_id} [delete]
func DeleteQuotation(svc *services.EmbeddingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("item_id")

		if err := svc.DeleteByID(itemID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": fmt.Sprintf("Deleted quotation item %s", itemID),
		})
	}
}
