//go:build !unix

package tfmt

import "os"

type handle struct {
	f *os.File
}

func openHandle(path string, mode openMode) (handle, error) {
	var flags int
	switch mode {
	case createAlways:
		flags = os.O_CREATE | os.O_TRUNC | os.O_WRONLY
	case openExisting:
		flags = os.O_WRONLY
	default:
		flags = os.O_CREATE | os.O_APPEND | os.O_WRONLY
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return handle{}, err
	}
	return handle{f: f}, nil
}

func (h handle) valid() bool { return h.f != nil }

func (h handle) write(p []byte) (int, error) { return h.f.Write(p) }

func (h handle) close() error { return h.f.Close() }
