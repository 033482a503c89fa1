package handler

import (
	"bytes"
	"sync"
)

// encodeBufferSize fits a ten-pull response with its state without growing
const encodeBufferSize = 1024

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, encodeBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool. Oversized buffers are dropped.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*encodeBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
