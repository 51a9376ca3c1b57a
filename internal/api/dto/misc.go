package dto

type SummaryResponse struct {
	PendingCount     int     `json:"pending_count"`
	CompletedCount   int     `json:"completed_count"`
	TotalCollectedKg float64 `json:"total_collected_kg"`
	EarningsBDT      float64 `json:"earnings_bdt"`
}

type DiagnoseRequest struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Language    string `json:"language"`
}

type DiagnoseResponse struct {
	Model  string `json:"model"`
	Advice string `json:"advice"`
}

type NavItemResponse struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type NavigationResponse struct {
	Role         string            `json:"role"`
	LandingRoute string            `json:"landing_route"`
	NavItems     []NavItemResponse `json:"nav_items"`
}
