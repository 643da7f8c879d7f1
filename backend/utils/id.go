package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates a fresh entity id: the family prefix, the creation time in
// milliseconds, and a random suffix to survive same-millisecond collisions.
func NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s%d%s", prefix, time.Now().UnixMilli(), suffix)
}
