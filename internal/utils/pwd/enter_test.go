package pwd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	hash, err := GenerateFromPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CompareHashAndPassword(hash, "admin123"))
	assert.False(t, CompareHashAndPassword(hash, "admin124"))
}
