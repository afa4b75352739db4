//go:build unix

package tfmt

import (
	"errors"

	"golang.org/x/sys/unix"
)

type handle struct {
	fd   int
	open bool
}

func openHandle(path string, mode openMode) (handle, error) {
	var flags int
	switch mode {
	case createAlways:
		flags = unix.O_CREAT | unix.O_TRUNC | unix.O_WRONLY
	case openExisting:
		flags = unix.O_WRONLY
	default:
		flags = unix.O_CREAT | unix.O_APPEND | unix.O_WRONLY
	}
	for {
		fd, err := unix.Open(path, flags|unix.O_CLOEXEC, 0o644)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return handle{}, err
		}
		return handle{fd: fd, open: true}, nil
	}
}

func (h handle) valid() bool { return h.open }

// write loops until p is written or the kernel reports an error.
func (h handle) write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := unix.Write(h.fd, p[written:])
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, unix.EIO
		}
		written += n
	}
	return written, nil
}

func (h handle) close() error { return unix.Close(h.fd) }
