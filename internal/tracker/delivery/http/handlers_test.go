package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"apply-tracker/internal/middleware"
	"apply-tracker/internal/model"
	trackerHTTP "apply-tracker/internal/tracker/delivery/http"
	"apply-tracker/internal/tracker/repository"
	"apply-tracker/internal/tracker/repository/memgrid"
	"apply-tracker/internal/tracker/usecase"
	"apply-tracker/pkg/notify"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func setupRouter(t *testing.T) (*gin.Engine, *memgrid.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	store := memgrid.NewStore(l)
	uc := usecase.New(l, store, notify.NewLog(l))
	h := trackerHTTP.New(l, uc, store, store)

	r := gin.New()
	trackerHTTP.RegisterRoutes(r.Group("/api/v1/tracker"), h, middleware.New(l, ""))
	return r, store
}

func seedSheet(t *testing.T, store *memgrid.Store) string {
	t.Helper()
	_, id, err := store.CreateSheet(context.Background(), repository.CreateSheetOptions{
		Headers: []string{"Company", "Role", "Applied"},
		Rows: [][]model.Cell{
			{model.StringCell("Acme"), model.StringCell("SRE"), model.BoolCell(true)},
			{model.StringCell("Globex"), model.StringCell("SWE"), model.BoolCell(false)},
			{model.StringCell("Acme"), model.StringCell("SWE"), model.BoolCell(true)},
		},
	})
	if err != nil {
		t.Fatalf("CreateSheet: %v", err)
	}
	return id
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProvisionEndpoint(t *testing.T) {
	r, store := setupRouter(t)
	id := seedSheet(t, store)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tracker/sheets/"+id+"/applied-column", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Column       int  `json:"column"`
			Created      bool `json:"created"`
			CheckboxRows int  `json:"checkbox_rows"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Column != 3 || resp.Data.Created {
		t.Fatalf("unexpected provision data: %+v", resp.Data)
	}
	if resp.Data.CheckboxRows != 3 {
		t.Fatalf("checkbox_rows = %d, want 3", resp.Data.CheckboxRows)
	}
}

func TestProvisionEndpoint_UnknownSheet(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tracker/sheets/nope/applied-column", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	r, store := setupRouter(t)
	id := seedSheet(t, store)

	w := doJSON(t, r, http.MethodGet, "/api/v1/tracker/sheets/"+id+"/stats?group_by=Company", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			TotalRows   int    `json:"total_rows"`
			Applied     int    `json:"applied"`
			NotApplied  int    `json:"not_applied"`
			GroupColumn string `json:"group_column"`
			Groups      []struct {
				Group string `json:"group"`
				Count int    `json:"count"`
			} `json:"groups"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.TotalRows != 3 || resp.Data.Applied != 2 || resp.Data.NotApplied != 1 {
		t.Fatalf("unexpected stats: %+v", resp.Data)
	}
	if resp.Data.GroupColumn != "Company" || len(resp.Data.Groups) != 1 {
		t.Fatalf("unexpected breakdown: %+v", resp.Data)
	}
	if resp.Data.Groups[0].Group != "Acme" || resp.Data.Groups[0].Count != 2 {
		t.Fatalf("unexpected group entry: %+v", resp.Data.Groups[0])
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	r, store := setupRouter(t)
	_, id, err := store.CreateSheet(context.Background(), repository.CreateSheetOptions{
		Headers: []string{"Company", "Applied", "Status"},
		Rows: [][]model.Cell{
			{model.StringCell("Acme"), model.BoolCell(true), model.StringCell("interview")},
			{model.StringCell("Globex"), model.BoolCell(true), model.StringCell("offer")},
			{model.StringCell("Initech"), model.BoolCell(false), model.EmptyCell()},
		},
	})
	if err != nil {
		t.Fatalf("CreateSheet: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/tracker/sheets/"+id+"/analysis", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			TotalApplied int     `json:"total_applied"`
			Interviews   int     `json:"interviews"`
			Offers       int     `json:"offers"`
			Ghosted      int     `json:"ghosted"`
			OfferRate    float64 `json:"offer_rate"`
			Statuses     []struct {
				Status string `json:"status"`
				Count  int    `json:"count"`
			} `json:"statuses"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.TotalApplied != 2 || resp.Data.Interviews != 2 || resp.Data.Offers != 1 {
		t.Fatalf("unexpected funnel: %+v", resp.Data)
	}
	if resp.Data.Ghosted != 0 || resp.Data.OfferRate != 50 {
		t.Fatalf("unexpected rates: %+v", resp.Data)
	}
	if len(resp.Data.Statuses) != 2 {
		t.Fatalf("unexpected statuses: %+v", resp.Data.Statuses)
	}
}

func TestFilterEndpoint(t *testing.T) {
	r, store := setupRouter(t)
	_, masterID, err := store.CreateSheet(context.Background(), repository.CreateSheetOptions{
		Headers: []string{"apply_url", "Applied"},
		Rows: [][]model.Cell{
			{model.StringCell("https://acme.example/1"), model.BoolCell(true)},
			{model.StringCell("https://globex.example/2"), model.BoolCell(false)},
		},
	})
	if err != nil {
		t.Fatalf("CreateSheet master: %v", err)
	}
	_, targetID, err := store.CreateSheet(context.Background(), repository.CreateSheetOptions{
		Headers: []string{"company", "apply_url"},
		Rows: [][]model.Cell{
			{model.StringCell("Acme"), model.StringCell("https://acme.example/1")},
			{model.StringCell("Globex"), model.StringCell("https://globex.example/2")},
			{model.StringCell("Hooli"), model.StringCell("https://hooli.example/9")},
		},
	})
	if err != nil {
		t.Fatalf("CreateSheet target: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/tracker/sheets/"+targetID+"/filter", map[string]any{
		"master_sheet_id": masterID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			MasterApplied int `json:"master_applied"`
			Removed       int `json:"removed"`
			Remaining     int `json:"remaining"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.MasterApplied != 1 || resp.Data.Removed != 1 || resp.Data.Remaining != 2 {
		t.Fatalf("unexpected filter result: %+v", resp.Data)
	}
}

func TestFilterEndpoint_MissingBody(t *testing.T) {
	r, store := setupRouter(t)
	id := seedSheet(t, store)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tracker/sheets/"+id+"/filter", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateAndGetSheet(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tracker/sheets", map[string]any{
		"headers": []string{"Company", "Role"},
		"rows": [][]any{
			{"Acme", "SRE"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Data.ID == "" {
		t.Fatal("created sheet has no ID")
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/tracker/sheets/"+created.Data.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d, body = %s", w.Code, w.Body.String())
	}

	var got struct {
		Data struct {
			Rows    int     `json:"rows"`
			Columns int     `json:"columns"`
			Values  [][]any `json:"values"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if got.Data.Rows != 2 || got.Data.Columns != 2 {
		t.Fatalf("unexpected dimensions: %+v", got.Data)
	}
	if got.Data.Values[0][0] != "Company" || got.Data.Values[1][0] != "Acme" {
		t.Fatalf("unexpected values: %+v", got.Data.Values)
	}
}

func TestCreateSheet_RowWiderThanHeaders(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tracker/sheets", map[string]any{
		"headers": []string{"Company"},
		"rows": [][]any{
			{"Acme", "extra"},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
