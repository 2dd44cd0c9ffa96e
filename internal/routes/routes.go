package routes

const (
	Health              = "/health"
	DashboardSummary    = "/api/v1/dashboard/summary"
	DashboardProperties = "/api/v1/dashboard/properties"
)
