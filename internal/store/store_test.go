package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGameKey_PrefixesWithNamespace(t *testing.T) {
	assert.Equal(t, "monopoly:game:abc123", gameKey("abc123"))
}

func TestTTL_MatchesTwoHours(t *testing.T) {
	assert.Equal(t, 2*time.Hour, TTL)
}
