package interpreter

import (
	"bytes"

	"go.starlark.net/starlark"
)

// outputCapture redirects a thread's print builtin into memory for as long as
// it is held. It is per-thread, so concurrent executions never share it.
type outputCapture struct {
	thread *starlark.Thread
	prev   func(*starlark.Thread, string)
	buf    bytes.Buffer
}

func captureOutput(thread *starlark.Thread) *outputCapture {
	c := &outputCapture{thread: thread, prev: thread.Print}
	thread.Print = func(_ *starlark.Thread, msg string) {
		c.buf.WriteString(msg)
		c.buf.WriteByte('\n')
	}
	return c
}

// Release restores the previous print handler and drops the captured output.
func (c *outputCapture) Release() {
	c.thread.Print = c.prev
	c.buf.Reset()
}
