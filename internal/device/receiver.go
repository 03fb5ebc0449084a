package device

import "bytes"

// BufferReceiver is a ShellOutputReceiver that collects all command output
// in memory. The zero value is ready to use.
type BufferReceiver struct {
	buf     bytes.Buffer
	flushed bool
}

func (r *BufferReceiver) Write(p []byte) (int, error) {
	return r.buf.Write(p)
}

func (r *BufferReceiver) Flush() error {
	r.flushed = true
	return nil
}

// String returns the output received so far.
func (r *BufferReceiver) String() string {
	return r.buf.String()
}

// Flushed reports whether the command signaled end of output.
func (r *BufferReceiver) Flushed() bool {
	return r.flushed
}
