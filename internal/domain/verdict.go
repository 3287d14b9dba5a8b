package domain

import "time"

// Verdict is a classified replay as recorded by the service.
type Verdict struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Digest    string    `json:"digest"`
	Outcome   Outcome   `json:"outcome"`
	Code      string    `json:"code"`
	Moves     int       `json:"moves"`
	Geometry  Geometry  `json:"geometry"`
	Cached    bool      `json:"cached"`
	CreatedAt time.Time `json:"created_at"`
}
