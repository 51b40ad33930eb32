package ip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetType(t *testing.T) {
	assert.Equal(t, "内网", NetType("10.1.2.3"))
	assert.Equal(t, "内网", NetType("::1"))
	assert.Equal(t, "外网", NetType("8.8.8.8"))
	assert.False(t, HasLocalIPAddr("not-an-ip"))
}
