package info

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetServerInfo(t *testing.T) {
	data, err := GetServerInfo(os.TempDir())
	if err != nil {
		t.Skipf("当前环境无法采集主机信息: %s", err)
	}
	assert.Positive(t, data.CpuCount)
	assert.Positive(t, data.MemTotal)
	assert.GreaterOrEqual(t, data.DiskUseRate, 0.0)
}
