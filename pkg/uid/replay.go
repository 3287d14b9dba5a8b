package uid

import "github.com/google/uuid"

// NewReplayID returns a random identifier for a classified replay.
func NewReplayID() string {
	return uuid.NewString()
}

// IsReplayID reports whether s looks like an identifier NewReplayID produced.
func IsReplayID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
