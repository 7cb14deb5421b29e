package handlers

import (
	"net/http"
	"strconv"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// QueryQuotations godoc
// @Summary      Query quotations with a natural-language question
// @Description  Embeds the question, retrieves the closest quotation documents and renders an answer.
// @Tags         query
// @Accept       json
// @Produce      json
// @Param        body  body      models.QueryRequest  true  "Question"
// @Success      200   {object}  models.QueryResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /query [post]
func QueryQuotations(svc *services.EmbeddingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.QueryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.NResults == 0 {
			req.NResults = 5
		}

		results, err := svc.Query(req.Question, req.NResults)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		documents := make([]string, 0, len(results))
		for _, r := range results {
			documents = append(documents, r.Document)
		}

		c.JSON(http.StatusOK, models.QueryResponse{
			Question:  req.Question,
			Answer:    svc.GenerateAnswer(req.Question, results),
			Documents: documents,
			Count:     len(results),
		})
	}
}

// QuerySimple godoc
// @Summary      Query quotations via GET (useful for testing)
// @Tags         query
// @Produce      json
// @Param        question   query     string  true   "Natural language question about quotations"
// @Param        n_results  query     int     false  "Number of results to consider"  default(5)
// @Success      200        {object}  object
// @Failure      400        {object}  models.ErrorResponse
// @Failure      500        {object}  models.ErrorResponse
// @Router       /query-simple [get]
func QuerySimple(svc *services.EmbeddingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		question := c.Query("question")
		if question == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
			return
		}
		nResults := 5
		if v := c.Query("n_results"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid n_results"})
				return
			}
			nResults = n
		}

		results, err := svc.Query(question, nResults)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"question": question,
			"answer":   svc.GenerateAnswer(question, results),
		})
	}
}

// GetStats godoc
// @Summary      Vector database statistics
// @Tags         stats
// @Produce      json
// @Success      200  {object}  models.StatsResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /stats [get]
func GetStats(svc *services.EmbeddingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := svc.Count()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "success",
			"total_items": count,
			"model":       svc.ModelName(),
			"vector_db":   "ChromaDB",
		})
	}
}

// HealthCheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  object
// @Router       /health [get]
func HealthCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Quotation Management RAG API",
		})
	}
}

// Root godoc
// @Summary      Service metadata and endpoint list
// @Tags         health
// @Produce      json
// @Success      200  {object}  object
// @Router       / [get]
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Quotation Management RAG API",
			"version": "1.0.0",
			"endpoints": []string{
				"/swagger/index.html",
				"/quotations/add",
				"/quotations/bulk-add",
				"/quotations/import-excel",
				"/quotations/sync-from-db",
				"/query",
				"/query-simple",
				"/stats",
			},
		})
	}
}
