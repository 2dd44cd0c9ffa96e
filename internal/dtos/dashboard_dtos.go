package dtos

// DashboardSummaryRequest mirrors the query parameters of the summary
// endpoint. Month and year are only honored together; a lone month or year
// means an unscoped aggregation.
type DashboardSummaryRequest struct {
	PropertyID string `validate:"required"`
	Month      *int   `validate:"omitempty,min=1,max=12"`
	Year       *int   `validate:"omitempty,min=2000,max=2100"`
}

type DashboardSummaryResponse struct {
	PropertyID        string  `json:"property_id"`
	TotalRevenue      float64 `json:"total_revenue"`
	Currency          string  `json:"currency"`
	ReservationsCount int64   `json:"reservations_count"`
	Month             *int    `json:"month"`
	Year              *int    `json:"year"`
}

type PropertyItemDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type DashboardPropertiesResponse struct {
	Items []PropertyItemDTO `json:"items"`
}
