package utils

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "1.500ms", FormatTime(1500*time.Microsecond))
	assert.Equal(t, "2.50s", FormatTime(2500*time.Millisecond))
	assert.Equal(t, "1m 30.00s", FormatTime(90*time.Second))
	assert.Equal(t, "2h 5m 0.00s", FormatTime(2*time.Hour+5*time.Minute))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 4.0, Ratio(8*time.Millisecond, 2*time.Millisecond))
	assert.Equal(t, 0.0, Ratio(time.Second, 0))
}

func TestDecorateText(t *testing.T) {
	s := DecorateText("done", SuccessMessage)
	assert.True(t, strings.HasPrefix(s, SuccessColor))
	assert.True(t, strings.HasSuffix(s, DefaultColor))
	assert.Equal(t, "plain", DecorateText("plain", MessageType(42)))
}

func TestDecorateFor_PlainWhenRedirected(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "Error: boom", DecorateFor(&buf, "Error: boom", ErrorMessage))

	f, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	defer f.Close()
	s := DecorateFor(f, "done", SuccessMessage)
	assert.NotContains(t, s, "\x1b[")
	assert.Equal(t, "done", s)
}

func TestMath(t *testing.T) {
	assert.Equal(t, 2, Min(2, 5))
	assert.Equal(t, 5, Max(2, 5))
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 255.0, Clamp(300.0, 0, 255))
	assert.Equal(t, 0, Clamp(-4, 0, 255))
	assert.Equal(t, 17, Clamp(17, 0, 255))
}

func TestSpinner_StartStop(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "working", time.Millisecond)
	s.StopMsg = "finished"
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	// A second Stop must not block.
	s.Stop()

	assert.Contains(t, buf.String(), "finished")
	assert.False(t, IsTerminal(&buf))
}

func TestCPUInfo(t *testing.T) {
	info := CPUInfo()
	assert.NotEmpty(t, info)
	assert.Contains(t, info, "logical cores")
}
