package domain

import (
	"crypto/rand"
	"fmt"
)

// NewCallID generates a random UUID v4 for tool calls created locally
// (replay fixtures, tests). Runtime-supplied calls keep their own IDs.
func NewCallID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
