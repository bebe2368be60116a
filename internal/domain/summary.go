package domain

import "time"

// GraphSummary describes a stored graph without its payload
type GraphSummary struct {
	ID        string    `json:"id"`
	Mode      Mode      `json:"mode"`
	Nodes     int       `json:"nodes"`
	Links     int       `json:"links"`
	CreatedAt time.Time `json:"created_at"`
}
