package mcp

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tally/pkg/app"
	"tableflip.dev/tally/pkg/counter"
	"tableflip.dev/tally/pkg/metrics"
)

func newTestService(counters ...counter.Counter) *Service {
	b := app.NewBoard()
	b.Hydrate(counters)
	return NewService(b)
}

func TestServiceAddCounterDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	dto, err := svc.AddCounter(ctx, AddCounterOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Player 1", dto.Name)
	assert.Equal(t, 0, dto.Score)
	assert.NotEmpty(t, dto.ID)
	assert.NotEmpty(t, dto.Color)

	summary, err := svc.ListCounters(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, "1 counter", summary.Summary)
}

func TestServiceAdjustAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(counter.Counter{ID: "abc", Name: "Ann", Score: 1, Color: "#0f172a"})

	dto, err := svc.AdjustCounter(ctx, "ab", -5)
	require.NoError(t, err)
	assert.Equal(t, -4, dto.Score)
	assert.True(t, dto.Negative)

	name := "Annie"
	dto, err = svc.UpdateCounter(ctx, UpdateCounterOptions{ID: "abc", Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Annie", dto.Name)
	assert.Equal(t, -4, dto.Score)

	_, err = svc.AdjustCounter(ctx, "zzz", 1)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestServiceRemoveCounter(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(counter.Counter{ID: "abc", Name: "Ann", Color: "#0f172a"})

	dto, err := svc.RemoveCounter(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Ann", dto.Name)

	_, err = svc.CounterByID(ctx, "abc")
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestServiceWithoutBoard(t *testing.T) {
	_, err := (&Service{}).ListCounters(context.Background())
	assert.Error(t, err)
}

func TestServiceConcurrentAdjust(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(counter.Counter{ID: "a", Color: "#0f172a"})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.AdjustCounter(ctx, "a", 5)
		}()
	}
	wg.Wait()

	dto, err := svc.CounterByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 100, dto.Score)
}

func TestFirstArgument(t *testing.T) {
	assert.Equal(t, "x", firstArgument("x"))
	assert.Equal(t, "y", firstArgument([]string{"y", "z"}))
	assert.Equal(t, "", firstArgument(nil))
}

func TestRunnerServesMetrics(t *testing.T) {
	b := app.NewBoard()
	b.Hydrate(nil)
	rec := metrics.NewPrometheus()
	rec.SetCounters(0)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan net.Addr, 1)
	done := make(chan error, 1)
	r := Runner{
		Board:           b,
		Metrics:         rec.Handler(),
		Transport:       TransportHTTP,
		HTTPListenAddr:  "127.0.0.1:0",
		OnHTTPListening: func(a net.Addr) { addrCh <- a },
	}
	go func() { done <- r.Do(ctx) }()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case err := <-done:
		t.Fatalf("runner exited early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not start listening")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", addr))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(6 * time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRunnerRequiresBoard(t *testing.T) {
	assert.Error(t, Runner{}.Do(context.Background()))
}
