package token_black

import (
	"admin_server/internal/utils/testdb"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndHas(t *testing.T) {
	testdb.Setup(t)
	mr := testdb.SetupRedis(t)

	require.NoError(t, Set("t1", time.Now().Add(time.Hour).Unix()))
	assert.True(t, Has("t1"))
	assert.False(t, Has("t2"))

	mr.FastForward(2 * time.Hour)
	assert.False(t, Has("t1"))
}

func TestSetSkipsExpiredToken(t *testing.T) {
	testdb.Setup(t)
	testdb.SetupRedis(t)

	require.NoError(t, Set("old", time.Now().Add(-time.Minute).Unix()))
	assert.False(t, Has("old"))
}

func TestWithoutRedis(t *testing.T) {
	testdb.Setup(t)

	assert.NoError(t, Set("t1", time.Now().Add(time.Hour).Unix()))
	assert.False(t, Has("t1"))
}
