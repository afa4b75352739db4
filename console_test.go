package tfmt_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tfmt"
)

// recorder keeps each Write call separately.
type recorder struct {
	mu     sync.Mutex
	writes []string
}

func (r *recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, string(p))
	return len(p), nil
}

type failingWriter struct{}

var errBrokenPipe = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) { return 0, errBrokenPipe }

func TestConsolePrint(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	con := tfmt.NewConsole(&out, &errOut)

	require.NoError(t, con.Print("listening on ", ":", 8080))
	require.NoError(t, con.Error("failed: ", errBrokenPipe))

	assert.Equal(t, "listening on :8080\n", out.String())
	assert.Equal(t, "failed: broken pipe\n", errOut.String())
}

func TestConsoleZeroValue(t *testing.T) {
	t.Parallel()
	var con tfmt.Console
	require.NoError(t, con.Print("dropped"))
	require.NoError(t, con.Error("dropped"))
	assert.Equal(t, 5, tfmt.PrintWith(&con, 5, "x"))
}

func TestConsoleWith(t *testing.T) {
	t.Parallel()
	var out, errOut bytes.Buffer
	con := tfmt.NewConsole(&out, &errOut)

	n := tfmt.PrintWith(con, 3, "copied ", 3, " files")
	assert.Equal(t, 3, n)
	err := tfmt.ErrorWith(con, errBrokenPipe, "write: ", errBrokenPipe)
	require.ErrorIs(t, err, errBrokenPipe)

	assert.Equal(t, "copied 3 files\n", out.String())
	assert.Equal(t, "write: broken pipe\n", errOut.String())
}

func TestConsoleReportsWriteErrors(t *testing.T) {
	t.Parallel()
	con := tfmt.NewConsole(failingWriter{}, failingWriter{})
	require.ErrorIs(t, con.Print("x"), errBrokenPipe)
}

func TestConsoleConcurrentLinesStayWhole(t *testing.T) {
	t.Parallel()
	out := &recorder{}
	con := tfmt.NewConsole(out, out)

	const workers, lines = 8, 50
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range lines {
				if i%2 == 0 {
					_ = con.Print("worker=", w, " line=", i)
				} else {
					_ = con.Error("worker=", w, " line=", i)
				}
			}
		}()
	}
	wg.Wait()

	require.Len(t, out.writes, workers*lines)
	for _, line := range out.writes {
		assert.True(t, strings.HasPrefix(line, "worker="), line)
		assert.Equal(t, 1, strings.Count(line, "\n"), line)
	}
}

func TestSpinLock(t *testing.T) {
	t.Parallel()
	var l tfmt.SpinLock
	require.True(t, l.TryLock())
	assert.False(t, l.TryLock())
	l.Unlock()

	counter := 0
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				l.Lock()
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4000, counter)
}
