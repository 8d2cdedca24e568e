package webhook

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"apply-tracker/internal/model"
	"apply-tracker/internal/tracker"
	pkgResponse "apply-tracker/pkg/response"
)

// HandleSheetEdit processes a single-cell edit pushed by the spreadsheet host.
// The edit is applied synchronously so the caller sees the highlight outcome
// in the response.
func (h *Handler) HandleSheetEdit(c *gin.Context) {
	ctx := c.Request.Context()

	// Verify source IP before touching the body
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	// Read body
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Verify signature
	signature := c.GetHeader("X-Tracker-Signature-256")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	// Parse payload
	req, err := parseEditReq(body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse edit payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Rate limit per sheet
	if err := h.security.CheckRateLimit(req.SheetID); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	event := model.EditEvent{
		ID:         uuid.NewString(),
		SheetID:    req.SheetID,
		Row:        req.Row,
		Column:     req.Column,
		Value:      model.CellOf(req.Value),
		ReceivedAt: time.Now(),
	}

	sc := model.Scope{UserID: "system_webhook"}
	output, err := h.trackerUC.ApplyEdit(ctx, sc, tracker.ApplyEditInput{Event: event})
	if err != nil {
		h.l.Errorf(ctx, "Edit processing failed: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	h.l.Infof(ctx, "Edit %s on sheet %s row %d: %s", event.ID, event.SheetID, event.Row, output.Outcome)

	pkgResponse.OK(c, gin.H{
		"event_id": event.ID,
		"outcome":  string(output.Outcome),
		"row":      output.Row,
		"color":    string(output.Color),
	})
}
