package dto

// SweepResponse mirrors the report returned to the external scheduler.
type SweepResponse struct {
	Success   bool     `json:"success"`
	Processed int      `json:"processed"`
	Errors    int      `json:"errors"`
	Details   []string `json:"details,omitempty"`
}
