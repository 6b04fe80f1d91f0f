package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	l := NewWriter(Info, &buf)
	l.timeNow = func() time.Time { return time.Date(2003, 11, 4, 23, 15, 8, 431232, time.UTC) }

	l.Log(Debug, "hidden %d", 1)
	l.Log(Info, "test format %d", 123)
	l.Log(Error, "failed: %v", "boom")

	require.Equal(t, "2003/11/04 23:15:08 INF test format 123\n"+
		"2003/11/04 23:15:08 ERR failed: boom\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	for _, ca := range []struct {
		in  string
		out Level
	}{
		{"debug", Debug},
		{"info", Info},
		{"", Info},
		{"warn", Warn},
		{"error", Error},
	} {
		t.Run(ca.in, func(t *testing.T) {
			l, err := ParseLevel(ca.in)
			require.NoError(t, err)
			require.Equal(t, ca.out, l)
		})
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}
