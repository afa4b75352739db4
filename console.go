package tfmt

import "io"

// Console prints formatted lines to an output and an error stream. One
// accumulator is shared by both streams and guarded by a lock, so concurrent
// lines never interleave. A Console is safe for concurrent use. The zero
// value discards its output.
type Console struct {
	mu  SpinLock
	buf Text
	out io.Writer
	err io.Writer
}

// NewConsole returns a Console writing to stdout and stderr.
//
//	con := tfmt.NewConsole(os.Stdout, os.Stderr)
//	con.Print("listening on ", addr)
func NewConsole(stdout, stderr io.Writer) *Console {
	return &Console{
		buf: Text{s: NewHeap(WithCapacity(256))},
		out: stdout,
		err: stderr,
	}
}

// Print writes args and a newline to the output stream.
func (c *Console) Print(args ...any) error { return c.line(c.out, args) }

// Error writes args and a newline to the error stream.
func (c *Console) Error(args ...any) error { return c.line(c.err, args) }

func (c *Console) line(w io.Writer, args []any) error {
	if w == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf.Clear()
	c.buf.Format(args...)
	c.buf.AppendByte('\n')
	_, err := w.Write(c.buf.Bytes())
	return err
}

// PrintWith prints args and returns result, so a value can be logged on its
// way out of a function:
//
//	return tfmt.PrintWith(con, n, "copied ", n, " bytes")
func PrintWith[R any](c *Console, result R, args ...any) R {
	_ = c.Print(args...)
	return result
}

// ErrorWith is PrintWith on the error stream.
func ErrorWith[R any](c *Console, result R, args ...any) R {
	_ = c.Error(args...)
	return result
}
