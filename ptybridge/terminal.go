// Package ptybridge allocates the pseudoterminal a local GDB-driven
// inferior's stdio is bridged through, so the host process can read the
// debuggee's console output separately from GDB's own MI channel.
package ptybridge

import (
	"os"
	"sync"

	"github.com/creack/pty"
)

// Terminal wraps one allocated pseudoterminal pair. The master end (PTY)
// is read by the host to collect inferior output; the slave end's device
// path (SlaveName) is what gets handed to the debugger via
// "inferior-tty-set".
type Terminal struct {
	master *os.File
	slave  *os.File

	closeOnce sync.Once
	closeErr  error
}

// New allocates a fresh pseudoterminal pair.
func New() (*Terminal, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, err
	}
	return &Terminal{master: master, slave: slave}, nil
}

// SlaveName returns the device path of the terminal's slave end, e.g.
// "/dev/pts/4" on Linux.
func (t *Terminal) SlaveName() string {
	return t.slave.Name()
}

// Read reads inferior output from the master end.
func (t *Terminal) Read(p []byte) (int, error) {
	return t.master.Read(p)
}

// Write sends input to the inferior through the master end.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.master.Write(p)
}

// Close releases both ends of the pseudoterminal. It is safe to call more
// than once; only the first call's result is returned.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		masterErr := t.master.Close()
		slaveErr := t.slave.Close()
		if masterErr != nil {
			t.closeErr = masterErr
			return
		}
		t.closeErr = slaveErr
	})
	return t.closeErr
}
