package webhook

import (
	"encoding/json"
	"fmt"
)

func parseEditReq(body []byte) (editReq, error) {
	var req editReq
	if err := json.Unmarshal(body, &req); err != nil {
		return editReq{}, fmt.Errorf("decode edit payload: %w", err)
	}
	if req.SheetID == "" {
		return editReq{}, fmt.Errorf("sheet_id is required")
	}
	if req.Row < 1 || req.Column < 1 {
		return editReq{}, fmt.Errorf("row and column must be positive, got (%d, %d)", req.Row, req.Column)
	}
	return req, nil
}
