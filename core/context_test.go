package core

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipGeometry(t *testing.T) {
	assert.False(t, shouldSkipGeometry(context.Background()))
	assert.True(t, shouldSkipGeometry(WithSkipGeometry(context.Background())))

	ctx := context.WithValue(context.Background(), skipGeometryKey, "yes")
	assert.False(t, shouldSkipGeometry(ctx), "non-bool values are ignored")
}

// TestContextConcurrentAccess tests that context values can be safely accessed concurrently.
func TestContextConcurrentAccess(t *testing.T) {
	ctx := WithSkipGeometry(context.Background())

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			assert.True(t, shouldSkipGeometry(ctx))
		})
	}
	wg.Wait()
}
