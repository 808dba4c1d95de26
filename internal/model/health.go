package model

// Health status values reported by the health endpoint.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthReport is the body returned by the health endpoint: an overall
// status plus one boolean per dependency check.
type HealthReport struct {
	Status string          `json:"status"`
	Checks map[string]bool `json:"checks"`
}

// Healthy reports whether every sub-check passed.
func (h HealthReport) Healthy() bool {
	for _, ok := range h.Checks {
		if !ok {
			return false
		}
	}
	return true
}
