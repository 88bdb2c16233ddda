package handlers

import (
	"net/http"
	"time"

	"geosolar-backoffice/internal/database"

	"github.com/gin-gonic/gin"
)

// GetSalesReport summarizes sales over ?from=YYYY-MM-DD&to=YYYY-MM-DD,
// defaulting to the last 30 days.
func GetSalesReport(c *gin.Context) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be YYYY-MM-DD"})
			return
		}
		start = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be YYYY-MM-DD"})
			return
		}
		// Include the whole end day
		end = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	report, err := database.GetSalesReport(database.DB, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetStockValuation reports the cost value of everything on hand.
func GetStockValuation(c *gin.Context) {
	valuation, err := database.GetStockValuation(database.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, valuation)
}
