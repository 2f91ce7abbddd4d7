// Package utils holds the id helper shared by the client and the reference
// server.
package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// GenerateID returns a random UUID for record, token and request ids. If the
// random source fails it falls back to a time-based id so inserts never get an
// empty id.
func GenerateID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		log.Printf("⚠️ uuid generation failed, using time-based id: %v", err)
		return fmt.Sprintf("id-%d", time.Now().UnixNano())
	}
	return id.String()
}
