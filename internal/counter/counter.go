// Package counter maintains the invoice sequence number: a single small
// file holding the decimal string of the last-used count. It is the only
// process-wide mutable state in the pipeline, so the read-increment-write
// sequence is serialized with a process mutex plus an exclusive advisory
// lock on a sibling lock file.
package counter

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// ErrCorrupt is returned when the counter file exists but does not hold a
// decimal number. This is a structural failure; the caller aborts the
// order being processed rather than guessing a sequence number.
var ErrCorrupt = errors.New("counter: file content is not a number")

// Counter issues invoice numbers of the form <year><count>, where count is
// zero-padded to at least three digits.
type Counter struct {
	path string
	seed int

	mu sync.Mutex
}

// New creates a counter backed by the file at path. When the file does not
// exist yet, numbering starts at seed.
func New(path string, seed int) *Counter {
	return &Counter{path: path, seed: seed}
}

// Next assigns the next invoice number for the given year and persists the
// advanced count. Concurrent callers are serialized; two calls never
// observe the same count.
func (c *Counter) Next(year int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	unlock, err := c.lock()
	if err != nil {
		return "", err
	}
	defer unlock()

	last, err := c.read()
	if err != nil {
		return "", err
	}

	count := fmt.Sprintf("%03d", last+1)
	number := strconv.Itoa(year) + count

	if err := os.WriteFile(c.path, []byte(count), 0o644); err != nil {
		return "", fmt.Errorf("counter: write %s: %w", c.path, err)
	}
	return number, nil
}

func (c *Counter) read() (int, error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return c.seed, nil
	}
	if err != nil {
		return 0, fmt.Errorf("counter: read %s: %w", c.path, err)
	}
	last, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCorrupt, strings.TrimSpace(string(data)))
	}
	return last, nil
}

// lock takes an exclusive flock on <path>.lock and returns the release
// function. The lock spans the whole read-increment-write sequence so a
// second process cannot issue a duplicate number.
func (c *Counter) lock() (func(), error) {
	f, err := os.OpenFile(c.path+".lock", os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("counter: open lock file: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		f.Close()
		return nil, fmt.Errorf("counter: lock: %w", err)
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		f.Close()
	}, nil
}
