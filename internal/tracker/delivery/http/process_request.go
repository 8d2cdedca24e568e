package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"apply-tracker/internal/model"
)

func (h *handler) processCreateSheetReq(c *gin.Context) (createSheetReq, error) {
	var req createSheetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return createSheetReq{}, fmt.Errorf("invalid request body: %w", err)
	}
	for _, row := range req.Rows {
		if len(row) > len(req.Headers) {
			return createSheetReq{}, fmt.Errorf("row has %d cells but sheet has %d headers", len(row), len(req.Headers))
		}
	}
	return req, nil
}

// scopeFrom builds the actor scope from request headers.
func scopeFrom(c *gin.Context) model.Scope {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = "api"
	}
	return model.Scope{UserID: userID}
}
