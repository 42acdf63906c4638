// File: internal/dto/health_response.go
package dto

import "time"

// swagger:model dto.HealthResponse
type HealthResponse struct {
	Status      string    `json:"status" example:"OK"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      float64   `json:"uptime" example:"12.5"`
	Environment string    `json:"environment" example:"development"`
}
