package tfmt

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// SpinLock is a busy-waiting [sync.Locker] for very short critical sections.
// Waiters yield the processor between attempts instead of queuing. The zero
// value is unlocked.
type SpinLock struct {
	_    cpu.CacheLinePad
	flag atomic.Bool
	_    cpu.CacheLinePad
}

// TryLock acquires the lock if it is free.
func (l *SpinLock) TryLock() bool {
	if l.flag.Load() {
		return false
	}
	return l.flag.CompareAndSwap(false, true)
}

// Lock spins until the lock is acquired.
func (l *SpinLock) Lock() {
	for !l.TryLock() {
		runtime.Gosched()
	}
}

func (l *SpinLock) Unlock() { l.flag.Store(false) }
