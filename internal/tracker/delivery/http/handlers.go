package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"apply-tracker/internal/tracker"
	"apply-tracker/pkg/response"
)

// Provision godoc
// @Summary     Provision the Applied column
// @Description Idempotently ensures the sheet has an "Applied" checkbox column covering all data rows.
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       id path string true "Sheet ID"
// @Success     200 {object} provisionResp
// @Failure     404 {object} response.Resp "Sheet not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tracker/sheets/{id}/applied-column [POST]
func (h *handler) Provision(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.EnsureAppliedColumn(ctx, scopeFrom(c), tracker.EnsureColumnInput{SheetID: id})
	if err != nil {
		h.l.Errorf(ctx, "uc.EnsureAppliedColumn: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newProvisionResp(output))
}

// Stats godoc
// @Summary     Application stats
// @Description Counts applied vs. total rows, with an optional per-group breakdown over a named column.
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       id       path  string true  "Sheet ID"
// @Param       group_by query string false "Header of the breakdown column (e.g. company)"
// @Success     200 {object} statsResp
// @Failure     404 {object} response.Resp "Sheet not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tracker/sheets/{id}/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Stats(ctx, scopeFrom(c), tracker.StatsInput{
		SheetID: id,
		GroupBy: c.Query("group_by"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newStatsResp(output))
}

// Analyze godoc
// @Summary     Application funnel analysis
// @Description Per-status tallies over the applied rows, with interview/offer/ghosted rates.
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       id path string true "Sheet ID"
// @Success     200 {object} analyzeResp
// @Failure     404 {object} response.Resp "Sheet not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tracker/sheets/{id}/analysis [GET]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Analyze(ctx, scopeFrom(c), tracker.AnalyzeInput{SheetID: id})
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newAnalyzeResp(output))
}

// Filter godoc
// @Summary     Remove already-applied rows
// @Description Deletes rows from this sheet whose key cell matches an applied row on the master sheet.
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Target sheet ID"
// @Param       body body filterReq true "Master sheet and key column"
// @Success     200 {object} filterResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Sheet not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tracker/sheets/{id}/filter [POST]
func (h *handler) Filter(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	var req filterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FilterApplied(ctx, scopeFrom(c), req.toInput(id))
	if err != nil {
		h.l.Errorf(ctx, "uc.FilterApplied: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newFilterResp(output))
}

// CreateSheet godoc
// @Summary     Create a sheet
// @Description Creates an in-memory sheet with the given headers and rows. Only available on the dev backend.
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       body body createSheetReq true "Sheet contents"
// @Success     200 {object} createSheetResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tracker/sheets [POST]
func (h *handler) CreateSheet(c *gin.Context) {
	ctx := c.Request.Context()

	if h.creator == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "backend cannot create sheets"})
		return
	}

	req, err := h.processCreateSheetReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	_, id, err := h.creator.CreateSheet(ctx, req.toOptions())
	if err != nil {
		h.l.Errorf(ctx, "creator.CreateSheet: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, createSheetResp{ID: id})
}

// GetSheet godoc
// @Summary     Dump a sheet
// @Description Returns the full value grid of a sheet.
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       id path string true "Sheet ID"
// @Success     200 {object} sheetResp
// @Failure     404 {object} response.Resp "Sheet not found"
// @Router      /api/v1/tracker/sheets/{id} [GET]
func (h *handler) GetSheet(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	sh, err := h.repo.Sheet(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "repo.Sheet: %v", err)
		h.mapError(c, err)
		return
	}

	resp, err := h.newSheetResp(ctx, id, sh)
	if err != nil {
		h.l.Errorf(ctx, "dump sheet %s: %v", id, err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, resp)
}
