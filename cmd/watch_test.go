package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestWatchReportsAfterChange(t *testing.T) {
	b := setupChart(t, chartText)
	out := &syncBuffer{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, out, b, 10*time.Millisecond, 20*time.Millisecond)
	}()

	require.NoError(t, os.WriteFile(b.Path, []byte(strings.Replace(chartText, "#00111:0A0A", "#00111:0A0C", 1)), 0644))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(b.Path, future, future))

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "No unused keysounds")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatchMissingFile(t *testing.T) {
	b := setupChart(t, chartText)
	require.NoError(t, os.Remove(b.Path))

	err := watch(context.Background(), &syncBuffer{}, b, time.Millisecond, time.Millisecond)
	assert.Error(t, err)
}

func TestWatcherSkipsReportAfterCancel(t *testing.T) {
	b := setupChart(t, chartText)
	out := &syncBuffer{}

	ctx, cancel := context.WithCancel(context.Background())
	w := &watcher{ctx: ctx, out: out, file: b}

	w.report()
	assert.Contains(t, out.String(), "Reloading")

	cancel()
	before := out.String()
	w.report()
	assert.Equal(t, before, out.String())
}

func TestWatchStopsReportingOnceCancelled(t *testing.T) {
	b := setupChart(t, chartText)
	out := &syncBuffer{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, out, b, 5*time.Millisecond, 200*time.Millisecond)
	}()

	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(b.Path, future, future))
	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	time.Sleep(300 * time.Millisecond)
	assert.NotContains(t, out.String(), "Reloading")
}
