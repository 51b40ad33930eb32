package uid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	seen := map[string]bool{}
	prev := ""
	for i := 0; i < 100; i++ {
		id := New()
		assert.Len(t, id, 32)
		assert.False(t, seen[id])
		seen[id] = true
		if i%10 == 0 {
			// 跨毫秒的ID按字典序递增
			time.Sleep(2 * time.Millisecond)
			next := New()
			assert.Less(t, prev, next)
			prev = next
			seen[next] = true
		}
	}
}
