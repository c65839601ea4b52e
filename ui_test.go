package main

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/mlowicki/termprime/numtheory"
)

func newTestUI(t *testing.T) *UI {
	t.Helper()
	ui := newUI(DefaultConfig(), zap.NewNop())
	t.Cleanup(ui.Close)
	return ui
}

func TestUIHandleEvaluates(t *testing.T) {
	ui := newTestUI(t)
	require.NoError(t, ui.handle([]string{"next", "10"}))
	require.NoError(t, ui.handle([]string{"factors", "12"}))

	results := ui.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "next 10", results[0].Input)
	assert.Equal(t, "11", results[0].Output)
	assert.Equal(t, "12 = 2 * 2 * 3", results[1].Output)
	assert.NotEmpty(t, results[0].ID)
	assert.NotEqual(t, results[0].ID, results[1].ID)
}

func TestUIHandleErrors(t *testing.T) {
	ui := newTestUI(t)
	err := ui.handle([]string{"mod", "3", "0"})
	assert.True(t, errors.Is(err, numtheory.ErrDivideByZero))
	assert.Error(t, ui.handle([]string{"frobnicate"}))
	assert.Error(t, ui.handle([]string{"drop"}))
	assert.Error(t, ui.handle([]string{"watch", "not a schedule"}))
	assert.Empty(t, ui.Results())
}

func TestUIMaxResults(t *testing.T) {
	ui := newTestUI(t)
	ui.cfg.MaxResults = 3
	for _, n := range []string{"1", "2", "3", "4", "5"} {
		require.NoError(t, ui.handle([]string{"next", n}))
	}
	results := ui.Results()
	require.Len(t, results, 3)
	assert.Equal(t, "next 3", results[0].Input)
	assert.Equal(t, "next 5", results[2].Input)
}

func TestUIDropAndClear(t *testing.T) {
	ui := newTestUI(t)
	for _, n := range []string{"2", "3", "5"} {
		require.NoError(t, ui.handle([]string{"isprime", n}))
	}

	require.NoError(t, ui.handle([]string{"drop", "2"}))
	results := ui.Results()
	require.Len(t, results, 2)
	assert.Equal(t, "isprime 2", results[0].Input)
	assert.Equal(t, "isprime 5", results[1].Input)

	require.NoError(t, ui.handle([]string{"drop"}))
	assert.Len(t, ui.Results(), 1)

	assert.Error(t, ui.handle([]string{"drop", "7"}))
	assert.Error(t, ui.handle([]string{"drop", "x"}))

	require.NoError(t, ui.handle([]string{"clear"}))
	assert.Empty(t, ui.Results())
}

func TestUIWatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	ui := newUI(DefaultConfig(), zap.NewNop())
	require.NoError(t, ui.handle([]string{"watch", "* * * * * *", "2", "10"}))

	require.Eventually(t, func() bool {
		return len(ui.Results()) == 2
	}, 5*time.Second, 50*time.Millisecond)

	results := ui.Results()
	assert.Equal(t, "11", results[0].Output)
	assert.Equal(t, "13", results[1].Output)

	require.NoError(t, ui.handle([]string{"stop"}))
	ui.Close()
}

func TestFirstVisible(t *testing.T) {
	tests := []struct {
		results, rows int
		want          int
	}{
		{0, 10, 0},
		{5, 10, 0},
		{15, 10, 5},
		{3, 0, 3},
		{3, -1, 3},
		{0, -2, 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, firstVisible(test.results, test.rows), "firstVisible(%d, %d)", test.results, test.rows)
	}
}

func TestUIWatchRejectsBadCount(t *testing.T) {
	ui := newTestUI(t)
	assert.Error(t, ui.handle([]string{"watch", "* * * * * *", "-2"}))
	assert.Error(t, ui.handle([]string{"watch", "* * * * * *", "1", strconv.Itoa(numtheory.MaxPrime)}))
	ui.mu.Lock()
	assert.Nil(t, ui.watcher)
	ui.mu.Unlock()
}

func TestUIShowErrExpires(t *testing.T) {
	defer goleak.VerifyNone(t)

	ui := newUI(DefaultConfig(), zap.NewNop())
	ui.errTimeout = 10 * time.Millisecond
	ui.showErr(errors.New("boom"))
	assert.EqualError(t, ui.Err(), "boom")

	require.Eventually(t, func() bool {
		return ui.Err() == nil
	}, time.Second, 5*time.Millisecond)
}
