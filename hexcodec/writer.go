package hexcodec

import "io"

// bufferSize is the chunk size for streaming encodes, in input bytes.
const bufferSize = 512

// Writer streams lowercase hex pairs to an underlying writer without
// allocating the full result.
type Writer struct {
	w   io.Writer
	buf [bufferSize * 2]byte
}

// NewWriter returns a Writer encoding everything written to it as
// lowercase hex pairs on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes p and writes the hex pairs to the underlying writer.
// It always reports len(p) consumed unless the underlying write fails.
func (hw *Writer) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		chunk := p
		if len(chunk) > bufferSize {
			chunk = chunk[:bufferSize]
		}
		n := 0
		for _, c := range chunk {
			hw.buf[n] = digits[c>>4]
			hw.buf[n+1] = digits[c&0x0f]
			n += 2
		}
		if _, err := hw.w.Write(hw.buf[:n]); err != nil {
			return written, err
		}
		written += len(chunk)
		p = p[len(chunk):]
	}
	return written, nil
}

// Interface guard.
var _ io.Writer = (*Writer)(nil)
