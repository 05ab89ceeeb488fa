package codec

import (
	"errors"
	"io"
)

// writeSeekBuffer is an in-memory io.WriteSeeker. The codec writer
// wants a seekable sink, which rules out bytes.Buffer.
type writeSeekBuffer struct {
	data []byte
	off  int
}

func (b *writeSeekBuffer) Write(p []byte) (int, error) {
	if need := b.off + len(p); need > len(b.data) {
		if need <= cap(b.data) {
			b.data = b.data[:need]
		} else {
			grown := make([]byte, need, need*2)
			copy(grown, b.data)
			b.data = grown
		}
	}
	copy(b.data[b.off:], p)
	b.off += len(p)
	return len(p), nil
}

func (b *writeSeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(b.off) + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, errors.New("writeSeekBuffer: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("writeSeekBuffer: negative position")
	}
	if abs > int64(len(b.data)) {
		// Fill the gap with zeros like a sparse file write would.
		b.data = append(b.data, make([]byte, abs-int64(len(b.data)))...)
	}
	b.off = int(abs)
	return abs, nil
}

func (b *writeSeekBuffer) bytes() []byte {
	return b.data
}
