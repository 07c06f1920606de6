package pkg

import "github.com/google/uuid"

// GenerateMatchID - returns an identifier used to correlate the log records of one match.
func GenerateMatchID() string {
	return uuid.NewString()
}
