package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute
}

// editReq is the payload posted by the sheet-side trigger on every cell edit.
type editReq struct {
	SheetID string `json:"sheet_id" binding:"required"`
	Row     int    `json:"row"      binding:"required,min=1"`
	Column  int    `json:"column"   binding:"required,min=1"`
	Value   any    `json:"value"`
}
