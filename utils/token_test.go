package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderTokenEncodesTimestamp(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "ORD-1748779200000", OrderToken(at))
}
