package internal

import (
	"sync"
	"unsafe"
)

// Scratch is a fixed buffer renderers build digits into.
type Scratch [ScratchSize]byte

var scratchPool = sync.Pool{
	New: func() any {
		return new(Scratch)
	},
}

// GetScratch takes a scratch buffer from the pool.
func GetScratch() *Scratch {
	return scratchPool.Get().(*Scratch)
}

// PutScratch returns a scratch buffer to the pool.
func PutScratch(s *Scratch) {
	scratchPool.Put(s)
}

// View returns a string sharing b's storage. The string is only valid while
// b is neither modified nor returned to the pool.
func View(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
