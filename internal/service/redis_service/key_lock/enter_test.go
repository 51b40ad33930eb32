package key_lock

import (
	"admin_server/internal/utils/testdb"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockSerializesSameKey(t *testing.T) {
	testdb.Setup(t)
	testdb.SetupRedis(t)

	var running, maxRunning int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := Lock("dict_type", "sys_sex")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&running, 1)
			for {
				m := atomic.LoadInt32(&maxRunning)
				if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
					break
				}
			}
			atomic.AddInt32(&running, -1)
			unlock()
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, maxRunning)
}

func TestLockWithoutRedis(t *testing.T) {
	testdb.Setup(t)

	unlock, err := Lock("dict_type", "sys_sex")
	require.NoError(t, err)
	require.NotNil(t, unlock)
	unlock()
}
