package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/gradebook/internal/model"
	"github.com/stemsi/gradebook/internal/response"
)

// SystemHandler reports service liveness.
type SystemHandler struct {
	startTime  time.Time
	dataSource string
}

func NewSystemHandler(dataSource string) *SystemHandler {
	return &SystemHandler{startTime: time.Now(), dataSource: dataSource}
}

// Health godoc
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	sizes := make([]string, len(model.DBSizes))
	for i, s := range model.DBSizes {
		sizes[i] = string(s)
	}

	response.Success(c, http.StatusOK, gin.H{
		"status":      "ok",
		"data_source": h.dataSource,
		"dbsizes":     sizes,
		"uptime":      time.Since(h.startTime).Round(time.Second).String(),
	})
}
