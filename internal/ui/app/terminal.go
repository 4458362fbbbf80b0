package app

import (
	"os"
	"sync"
)

// Terminal is the program's output. The renderer writes whole frames through
// it and the rest bell shares the same lock, so a bell never lands inside a
// frame.
type Terminal struct {
	mu sync.Mutex
	f  *os.File
}

func NewTerminal(f *os.File) *Terminal { return &Terminal{f: f} }

func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.f.Write(p)
}

// Read, Close and Fd let Bubble Tea treat the wrapper as a tty.
func (t *Terminal) Read(p []byte) (int, error) { return t.f.Read(p) }

func (t *Terminal) Close() error { return t.f.Close() }

func (t *Terminal) Fd() uintptr { return t.f.Fd() }
