package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanchitsharma1/Bizdash/config"
	"github.com/sanchitsharma1/Bizdash/repository"
)

type SummaryController struct {
	reader *repository.SummaryReader
}

func NewSummaryController(reader *repository.SummaryReader) *SummaryController {
	return &SummaryController{reader: reader}
}

// GetSummary recomputes and returns the dashboard snapshot.
func (sc *SummaryController) GetSummary(c *gin.Context) {
	snapshot, err := sc.reader.ComputeSummary(c.Request.Context())
	if err != nil {
		config.LogError("summary", "compute", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
