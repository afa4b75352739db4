package xlogsink

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xlog"

	"github.com/bjaus/tfmt"
)

// maxPooled caps the capacity of buffers returned to the pool.
const maxPooled = 64 << 10

// Adapter is an xlog backend that formats each entry into a pooled
// [tfmt.Text] and hands the finished line to the writer in one Write call.
// Bound fields are encoded once, when With is called.
//
// An Adapter and all its children share one writer lock and one minimum
// level, so it is safe for concurrent use.
type Adapter struct {
	w    io.Writer
	mu   *sync.Mutex
	min  *atomic.Int64
	opts Options
	pool *sync.Pool

	bound    []xlog.Field
	prebound []byte
}

var _ xlog.Adapter = (*Adapter)(nil)

// New returns an Adapter writing to w.
func New(w io.Writer, opts Options) *Adapter {
	opts = opts.withDefaults()
	min := new(atomic.Int64)
	min.Store(int64(xlog.LevelInfo))
	size := opts.BufferSize
	return &Adapter{
		w:    w,
		mu:   new(sync.Mutex),
		min:  min,
		opts: opts,
		pool: &sync.Pool{New: func() any {
			return tfmt.NewText(tfmt.WithCapacity(size))
		}},
	}
}

// NewLogger builds an xlog.Logger backed by a new Adapter.
//
//	log, err := xlogsink.NewLogger(os.Stderr, xlogsink.Options{Format: xlogsink.FormatJSON}, xlog.LevelDebug)
func NewLogger(w io.Writer, opts Options, min xlog.Level) (*xlog.Logger, error) {
	return xlog.NewBuilder().
		WithAdapter(New(w, opts)).
		WithMinLevel(min).
		Build()
}

// SetMinLevel drops entries below l. It applies to every child adapter.
func (a *Adapter) SetMinLevel(l xlog.Level) { a.min.Store(int64(l)) }

// Enabled reports whether entries at l are written.
func (a *Adapter) Enabled(l xlog.Level) bool { return int64(l) >= a.min.Load() }

// With returns a child adapter with fs bound after the receiver's fields.
// The receiver is unchanged.
func (a *Adapter) With(fs []xlog.Field) xlog.Adapter {
	child := *a
	child.bound = make([]xlog.Field, 0, len(a.bound)+len(fs))
	child.bound = append(append(child.bound, a.bound...), fs...)
	child.prebound = encodeBound(child.bound, a.opts)
	return &child
}

// Log writes one line. Write errors are dropped; xlog has no channel to
// report them.
func (a *Adapter) Log(level xlog.Level, msg string, at time.Time, fields []xlog.Field) {
	if !a.Enabled(level) {
		return
	}
	buf := a.pool.Get().(*tfmt.Text)
	buf.Clear()
	if a.opts.Format == FormatJSON {
		writeJSONLine(buf, level, msg, at, a.prebound, fields, a.opts)
	} else {
		writeTextLine(buf, level, msg, at, a.prebound, fields, a.opts)
	}
	buf.AppendByte('\n')

	a.mu.Lock()
	_, _ = a.w.Write(buf.Bytes())
	a.mu.Unlock()

	if buf.Cap() <= maxPooled {
		a.pool.Put(buf)
	}
}

func encodeBound(fields []xlog.Field, opts Options) []byte {
	if len(fields) == 0 {
		return nil
	}
	var t tfmt.Text
	for i := range fields {
		if opts.Format == FormatJSON {
			appendJSONField(&t, &fields[i], opts)
		} else {
			appendTextField(&t, &fields[i], opts)
		}
	}
	h := t.Take()
	return h.Bytes()
}
