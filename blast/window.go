// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package blast

import "sync"

// outputWindow is the sliding dictionary. Decoded bytes accumulate in buf and
// are pushed out each time it fills; back-references read from the same ring.
type outputWindow struct {
	push  PushFunc
	next  int  // write position in buf
	first bool // true until the first full window has been pushed
	buf   [windowSize]byte
}

// outputWindowPool recycles 4 KiB windows between runs.
var outputWindowPool = sync.Pool{
	New: func() any {
		return &outputWindow{}
	},
}

// acquireOutputWindow takes a window from the pool and binds it to push.
func acquireOutputWindow(push PushFunc) *outputWindow {
	w := outputWindowPool.Get().(*outputWindow)
	w.push = push
	w.next = 0
	w.first = true
	return w
}

// releaseOutputWindow returns a window to the pool.
func releaseOutputWindow(w *outputWindow) {
	if w == nil {
		return
	}

	w.push = nil
	outputWindowPool.Put(w)
}

// putByte appends one literal.
func (w *outputWindow) putByte(b byte) error {
	w.buf[w.next] = b
	w.next++
	if w.next == windowSize {
		return w.flushFull()
	}

	return nil
}

// copyBackRef appends length bytes starting dist bytes behind the write
// position. When dist < length the source overlaps the bytes being written,
// so the copy runs forward byte by byte to repeat the pattern.
func (w *outputWindow) copyBackRef(dist, length int) error {
	if w.first && dist > w.next {
		return ErrDistanceTooFar
	}

	for length > 0 {
		from := w.next - dist
		n := windowSize - w.next
		if from < 0 {
			from += windowSize
			n = min(n, windowSize-from)
		}
		n = min(n, length)

		if from+n <= w.next || from >= w.next+n {
			copy(w.buf[w.next:w.next+n], w.buf[from:from+n])
		} else {
			for i := range n {
				w.buf[w.next+i] = w.buf[from+i]
			}
		}

		w.next += n
		length -= n
		if w.next == windowSize {
			if err := w.flushFull(); err != nil {
				return err
			}
		}
	}

	return nil
}

// flushFull pushes a full window and starts writing at its beginning again.
func (w *outputWindow) flushFull() error {
	if err := w.emit(w.buf[:]); err != nil {
		return err
	}

	w.next = 0
	w.first = false
	return nil
}

// flush pushes the bytes written since the last full window.
func (w *outputWindow) flush() error {
	if w.next == 0 {
		return nil
	}

	return w.emit(w.buf[:w.next])
}

func (w *outputWindow) emit(p []byte) error {
	if err := w.push(p); err != nil {
		return &outputError{err: err}
	}

	return nil
}

// outputError wraps a push failure so it matches ErrOutputRejected and the
// cause at the same time.
type outputError struct {
	err error
}

func (e *outputError) Error() string {
	return ErrOutputRejected.Error() + ": " + e.err.Error()
}

func (e *outputError) Unwrap() []error {
	return []error{ErrOutputRejected, e.err}
}
