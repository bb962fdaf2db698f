package storage

import (
	"bytes"
	"sync"
	"testing"
)

var backends = []struct {
	name    string
	backend Backend
	// sharesAfterClone is true for backends whose clones reference the
	// same buffer and therefore withdraw exclusive access.
	sharesAfterClone bool
}{
	{"shared", NewShared, true},
	{"local", NewLocal, true},
	{"unique", NewUnique, false},
	{"cloned", NewCloned, false},
}

func TestBytes(t *testing.T) {
	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.backend([]byte("hello"))
			if got := string(h.Bytes()); got != "hello" {
				t.Errorf("Bytes() = %q, want %q", got, "hello")
			}
		})
	}
}

func TestAcquireFreshHandle(t *testing.T) {
	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.backend([]byte("hello"))
			buf := h.Acquire()
			if buf == nil {
				t.Fatal("fresh handle should grant exclusive access")
			}
			*buf = append(*buf, '!')
			if got := string(h.Bytes()); got != "hello!" {
				t.Errorf("after append through Acquire: %q, want %q", got, "hello!")
			}
		})
	}
}

func TestAcquireAfterClone(t *testing.T) {
	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.backend([]byte("hello"))
			c := h.Clone()

			if tt.sharesAfterClone {
				if h.Acquire() != nil {
					t.Error("cloned handle should not grant exclusive access")
				}
				if c.Acquire() != nil {
					t.Error("clone should not grant exclusive access")
				}
				return
			}

			// Value-semantic backends: both sides stay writable and
			// independent.
			buf := h.Acquire()
			if buf == nil {
				t.Fatal("value-semantic handle should always grant access")
			}
			*buf = append(*buf, '!')
			if got := string(c.Bytes()); got != "hello" {
				t.Errorf("clone observed mutation: %q", got)
			}
		})
	}
}

func TestCloneContentEquality(t *testing.T) {
	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.backend([]byte("some text"))
			c := h.Clone()
			if !bytes.Equal(h.Bytes(), c.Bytes()) {
				t.Errorf("clone content %q != original %q", c.Bytes(), h.Bytes())
			}
		})
	}
}

func TestNewPreservesPolicy(t *testing.T) {
	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			h := tt.backend([]byte("a"))
			fresh := h.New([]byte("b"))
			if fresh.Acquire() == nil {
				t.Fatal("fresh handle should grant exclusive access")
			}
			c := fresh.Clone()
			_ = c
			if tt.sharesAfterClone && fresh.Acquire() != nil {
				t.Error("fresh handle kept the wrong policy: still exclusive after clone")
			}
		})
	}
}

func TestClonedDuplicatesOnAccess(t *testing.T) {
	h := NewCloned([]byte("hello"))
	before := h.Bytes()
	buf := h.Acquire()
	if buf == nil {
		t.Fatal("cloned backend should always grant access")
	}
	(*buf)[0] = 'H'
	if string(before) != "hello" {
		t.Error("mutation reached the pre-access buffer")
	}
	if got := string(h.Bytes()); got != "Hello" {
		t.Errorf("handle content = %q, want %q", got, "Hello")
	}
}

func TestSharedConcurrentCloneAndRead(t *testing.T) {
	h := NewShared([]byte("concurrent"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := h.Clone()
			for j := 0; j < 100; j++ {
				if string(c.Bytes()) != "concurrent" {
					t.Error("read through clone returned wrong content")
					return
				}
				c = c.Clone()
			}
		}()
	}
	wg.Wait()

	if h.Acquire() != nil {
		t.Error("heavily cloned buffer should not grant exclusive access")
	}
}
