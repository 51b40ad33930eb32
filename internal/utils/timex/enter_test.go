package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, dateOnly, err := Parse("2024-01-31")
	require.NoError(t, err)
	assert.True(t, dateOnly)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local), v)

	v, dateOnly, err = Parse("2024-01-31 12:30:00")
	require.NoError(t, err)
	assert.False(t, dateOnly)
	assert.Equal(t, 12, v.Hour())

	assert.False(t, Valid("2024/01/31"))
	assert.False(t, Valid(""))
}

func TestRange(t *testing.T) {
	assert.Nil(t, Begin(""))
	end, exclusive := End("bad")
	assert.Nil(t, end)
	assert.False(t, exclusive)

	end, exclusive = End("2024-01-31")
	require.NotNil(t, end)
	assert.True(t, exclusive)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), *end)

	end, exclusive = End("2024-01-31 08:00:00")
	assert.False(t, exclusive)
	assert.Equal(t, 8, end.Hour())

	begin := Begin("2024-01-01")
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), *begin)
}
