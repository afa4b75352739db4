package tfmt_test

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tfmt"
)

func TestBoundedSizeClasses(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uintptr(96), unsafe.Sizeof(tfmt.ShortString{}))
	assert.Equal(t, uintptr(256), unsafe.Sizeof(tfmt.LineString{}))
	assert.Equal(t, uintptr(1024), unsafe.Sizeof(tfmt.LongString{}))
	assert.Equal(t, uintptr(4096), unsafe.Sizeof(tfmt.PageString{}))
	assert.Equal(t, uintptr(8192), unsafe.Sizeof(tfmt.DoublePageString{}))
	assert.Equal(t, uintptr(65536), unsafe.Sizeof(tfmt.LargeString{}))

	var s tfmt.ShortString
	assert.Equal(t, tfmt.ShortCap, s.Cap())
}

func TestBoundedAssignTruncates(t *testing.T) {
	t.Parallel()
	var s tfmt.ShortString
	s.Assign(strings.Repeat("a", 200))
	assert.Equal(t, tfmt.ShortCap, s.Len())
	assert.Equal(t, strings.Repeat("a", tfmt.ShortCap), s.String())

	s.PushBack('b')
	assert.Equal(t, tfmt.ShortCap, s.Len())

	s.AssignBytes([]byte("hi"))
	assert.Equal(t, "hi", s.View())
}

func TestBoundedCompare(t *testing.T) {
	t.Parallel()
	var s tfmt.ShortString
	s.Assign("hello")

	tests := map[string]struct {
		arg  string
		want int
	}{
		"equal":   {arg: "hello", want: 0},
		"greater": {arg: "hellp", want: -1},
		"less":    {arg: "hell", want: 1},
		"longer":  {arg: "hello!", want: -1},
		"empty":   {arg: "", want: 1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, s.Compare(tt.arg))
		})
	}

	var empty tfmt.ShortString
	assert.Zero(t, empty.Compare(""))
	assert.Equal(t, -1, empty.Compare("a"))
	assert.True(t, s.Equal("hello"))
}

func TestBoundedFind(t *testing.T) {
	t.Parallel()
	var s tfmt.LineString
	s.Assign("hello")

	assert.Equal(t, 2, s.FindFirstOf('l', 0))
	assert.Equal(t, 3, s.FindFirstOf('l', 3))
	assert.Equal(t, tfmt.NPos, s.FindFirstOf('l', 4))
	assert.Equal(t, tfmt.NPos, s.FindFirstOf('z', 0))

	assert.Equal(t, 3, s.FindLastOf('l', 100))
	assert.Equal(t, 2, s.FindLastOf('l', 2))
	assert.Equal(t, 0, s.FindLastOf('h', 0))
	assert.Equal(t, tfmt.NPos, s.FindLastOf('z', 100))

	var empty tfmt.LineString
	assert.Equal(t, tfmt.NPos, empty.FindLastOf('a', 0))
}

func TestBoundedAccess(t *testing.T) {
	t.Parallel()
	var s tfmt.ShortString
	s.Assign("hello")

	c, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, byte('h'), c)

	_, err = s.At(5)
	require.ErrorIs(t, err, tfmt.ErrOutOfRange)
	_, err = s.At(-1)
	require.ErrorIs(t, err, tfmt.ErrOutOfRange)

	assert.Equal(t, byte('h'), s.Front())
	assert.Equal(t, byte('o'), s.Back())
	s.PopBack()
	assert.Equal(t, "hell", s.View())

	assert.Equal(t, "ell", s.Substr(1, 3))
	assert.Equal(t, "ll", s.Substr(2, 100))
	assert.Empty(t, s.Substr(10, 1))
}

func TestBoundedCopyTo(t *testing.T) {
	t.Parallel()
	var s tfmt.ShortString
	s.Assign("hello")

	dst := make([]byte, 4)
	assert.Equal(t, 3, s.CopyTo(dst))
	assert.Equal(t, []byte("hel\x00"), dst)

	big := make([]byte, 10)
	assert.Equal(t, 5, s.CopyTo(big))
	assert.Equal(t, "hello\x00", string(big[:6]))

	assert.Zero(t, s.CopyTo(nil))
}

func TestBoundedFormatsIntoText(t *testing.T) {
	t.Parallel()
	var s tfmt.ShortString
	s.Assign("id")
	assert.Equal(t, "id=id=7", tfmt.Str(s, "=", &s, "=", 7))
}
