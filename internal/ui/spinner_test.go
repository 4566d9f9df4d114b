package ui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Checking")
	assert.Equal(t, SpinnerPending, s.State())
}

func TestSpinnerStartStop(t *testing.T) {
	var buf strings.Builder
	var mu sync.Mutex

	s := NewSpinner("Checking https://example.com")
	s.SetOutput(func(str string) {
		mu.Lock()
		buf.WriteString(str)
		mu.Unlock()
	})

	s.Start()
	assert.Equal(t, SpinnerInProgress, s.State())

	// Let it spin a bit
	time.Sleep(150 * time.Millisecond)

	s.Stop()

	// Stop halts animation without changing state
	assert.Equal(t, SpinnerInProgress, s.State())

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, buf.String(), "Checking https://example.com")
}

func TestSpinnerSuccess(t *testing.T) {
	var buf strings.Builder
	var mu sync.Mutex

	s := NewSpinner("Checking")
	s.SetOutput(func(str string) {
		mu.Lock()
		buf.WriteString(str)
		mu.Unlock()
	})

	s.Start()
	s.Success()

	assert.Equal(t, SpinnerSuccess, s.State())

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, buf.String(), SymbolSuccess)
}

func TestSpinnerFail(t *testing.T) {
	var buf strings.Builder
	var mu sync.Mutex

	s := NewSpinner("Checking")
	s.SetOutput(func(str string) {
		mu.Lock()
		buf.WriteString(str)
		mu.Unlock()
	})

	s.Start()
	s.Fail()

	assert.Equal(t, SpinnerFailed, s.State())

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, buf.String(), SymbolFail)
}

func TestSpinnerDoubleStart(t *testing.T) {
	s := NewSpinner("Checking")
	s.SetOutput(func(string) {})

	s.Start()
	s.Start() // no-op while running
	s.Stop()
	s.Stop() // no-op after stop
}

func TestSpinnerClear(t *testing.T) {
	var buf strings.Builder
	var mu sync.Mutex

	s := NewSpinner("Checking")
	s.SetOutput(func(str string) {
		mu.Lock()
		buf.WriteString(str)
		mu.Unlock()
	})

	s.Start()
	s.Clear()

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, strings.HasSuffix(buf.String(), "\r"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0.05s", formatDuration(50*time.Millisecond))
	assert.Equal(t, "1.2s", formatDuration(1200*time.Millisecond))
}
