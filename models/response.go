package models

// DetailResponse is the response for GET /inserat/:id.
type DetailResponse struct {
	Success bool         `json:"success"`
	Data    *AdDetail    `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ListingResponse is the response for GET /inserate.
type ListingResponse struct {
	Success bool         `json:"success"`
	Data    []AdSummary  `json:"data"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorResponse is the bare envelope used for middleware rejections.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// IndexResponse is the response for GET /.
type IndexResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status    string    `json:"status"` // "healthy" or "degraded"
	Uptime    string    `json:"uptime"`
	PoolStats PoolStats `json:"pool_stats"`
	Version   string    `json:"version"`
}

// PoolStats reports the state of the browser page pool.
type PoolStats struct {
	MaxPages    int `json:"max_pages"`
	ActivePages int `json:"active_pages"`
}
