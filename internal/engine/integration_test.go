package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/dirstatus/internal/clock"
	"github.com/danieljhkim/dirstatus/internal/config"
	"github.com/danieljhkim/dirstatus/internal/gitx"
)

// Each engine opens its own handle on the database, so concurrent calls
// contend for the file lock the same way separate shell invocations do.
func TestIntegration_ConcurrentInvocations(t *testing.T) {
	paths := config.PathsAt(filepath.Join(t.TempDir(), "git-status-tracker"))
	settings := config.Settings{OpenAttempts: 50, RetryDelay: 10 * time.Millisecond}

	newEngine := func() *Engine {
		return New(*paths, settings, &gitx.FakeDetector{}, clock.RealClock{}, zerolog.Nop())
	}

	const shells = 8
	var wg sync.WaitGroup
	errs := make(chan error, shells)

	for i := 0; i < shells; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := newEngine().Put(context.Background(), &PutRequest{
				Path:      fmt.Sprintf("/home/u/proj%d", i),
				Branch:    "main",
				RawStatus: fmt.Sprintf("%d M", i),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	records, err := newEngine().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, shells)

	result, err := newEngine().Get(context.Background(), &GetRequest{Path: "/home/u/proj3/"})
	require.NoError(t, err)
	assert.Equal(t, "main", result.BranchLine)
	assert.Equal(t, "3 M ", result.StatusLine)
}
