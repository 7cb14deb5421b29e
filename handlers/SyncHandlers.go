package handlers

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"backend/services"
	"backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RunDBSync reads every row of the quotation_items mirror table and re-indexes
// it into the vector database. Shared by the sync endpoint and the cron job.
func RunDBSync(db *sql.DB, svc *services.EmbeddingService) (int, error) {
	items, err := storage.FetchQuotationItems(db)
	if err != nil {
		return 0, fmt.Errorf("fetch quotation items: %w", err)
	}
	if len(items) == 0 {
		return 0, nil
	}
	if err := svc.BulkAddQuotationItems(items); err != nil {
		return 0, err
	}
	return len(items), nil
}

// SyncQuotationsFromDB godoc
// @Summary      Re-index all quotation items from the database
// @Description  Reads the quotation_items table and bulk-indexes every row into the vector database.
// @Tags         quotations
// @Produce      json
// @Success      200  {object}  models.BulkAddResponse
// @Failure      500  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /quotations/sync-from-db [post]
func SyncQuotationsFromDB(svc *services.EmbeddingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		db := storage.GetDB()
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no database configured"})
			return
		}

		syncID := uuid.NewString()
		log.Printf("Starting DB sync %s", syncID)

		count, err := RunDBSync(db, svc)
		if err != nil {
			log.Printf("DB sync %s failed: %v", syncID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		log.Printf("DB sync %s indexed %d quotation items", syncID, count)

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": fmt.Sprintf("Synced %d quotation items from database", count),
			"count":   count,
			"sync_id": syncID,
		})
	}
}
