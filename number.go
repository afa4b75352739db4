package tfmt

import (
	"math"
	"strconv"
)

// Slot sizes for in-place numeric conversion: the longest text each type can
// produce.
const (
	int32Room  = 11 // -2147483648
	uint32Room = 10 // 4294967295
	int64Room  = 20 // -9223372036854775808
	uint64Room = 20 // 18446744073709551615
	floatRoom  = 64
)

// AppendInt appends v in decimal.
func (t *Basic[S, P]) AppendInt(v int64) *Basic[S, P] {
	return t.appendInt(v, int64Room)
}

// AppendUint appends v in decimal.
func (t *Basic[S, P]) AppendUint(v uint64) *Basic[S, P] {
	return t.appendUint(v, uint64Room)
}

// AppendFloat appends the shortest text that parses back to v.
func (t *Basic[S, P]) AppendFloat(v float64) *Basic[S, P] {
	return t.appendFloat(v, shortestFormat(v, 64), -1, 64)
}

// AppendFloat32 appends the shortest text that parses back to v.
func (t *Basic[S, P]) AppendFloat32(v float32) *Basic[S, P] {
	return t.appendFloat(float64(v), shortestFormat(float64(v), 32), -1, 32)
}

// AppendFixed appends v with exactly prec digits after the decimal point. A
// negative prec uses as few digits as round-tripping needs. Text that would
// not fit the conversion slot is dropped.
func (t *Basic[S, P]) AppendFixed(v float64, prec int) *Basic[S, P] {
	if prec >= floatRoom {
		return t
	}
	return t.appendFloat(v, 'f', prec, 64)
}

func (t *Basic[S, P]) appendInt(v int64, room int) *Basic[S, P] {
	start, ok := t.allocate(room)
	if !ok {
		return t
	}
	out := strconv.AppendInt(t.slot(start, room), v, 10)
	t.settle(start, room, out)
	return t
}

func (t *Basic[S, P]) appendUint(v uint64, room int) *Basic[S, P] {
	start, ok := t.allocate(room)
	if !ok {
		return t
	}
	out := strconv.AppendUint(t.slot(start, room), v, 10)
	t.settle(start, room, out)
	return t
}

func (t *Basic[S, P]) appendFloat(v float64, format byte, prec, bitSize int) *Basic[S, P] {
	start, ok := t.allocate(floatRoom)
	if !ok {
		return t
	}
	out := strconv.AppendFloat(t.slot(start, floatRoom), v, format, prec, bitSize)
	t.settle(start, floatRoom, out)
	return t
}

// slot returns a zero-length slice over the allocated region whose capacity
// is exactly room, so conversions write in place.
func (t *Basic[S, P]) slot(start, room int) []byte {
	return t.st().Data()[start:start:start+room]
}

// settle keeps the converted bytes and drops the rest of the slot. Output
// that outgrew the slot was written elsewhere and is discarded entirely.
func (t *Basic[S, P]) settle(start, room int, out []byte) {
	if len(out) > room {
		t.release(start)
		return
	}
	t.release(start + len(out))
}

// shortestFormat picks plain decimal notation except for very small or very
// large magnitudes.
func shortestFormat(v float64, bitSize int) byte {
	abs := math.Abs(v)
	if abs == 0 || math.IsNaN(abs) || math.IsInf(abs, 0) {
		return 'f'
	}
	if bitSize == 32 {
		f := float32(abs)
		if f < 1e-6 || f >= 1e21 {
			return 'e'
		}
		return 'f'
	}
	if abs < 1e-6 || abs >= 1e21 {
		return 'e'
	}
	return 'f'
}

func appendFixed(dst []byte, v float64, prec int) []byte {
	return strconv.AppendFloat(dst, v, 'f', prec, 64)
}
