package block

import (
	"sync"

	"boscoin.io/council/lib/storage"
)

const HeightKey string = "block.height"

// Clock reports the number of the block being processed.
type Clock interface {
	CurrentBlock() uint64
}

// Height is the block counter of a node. It is advanced once per block by
// the runner, and it is persisted with `Save`.
type Height struct {
	sync.RWMutex

	n uint64
}

func NewHeight(n uint64) *Height {
	return &Height{n: n}
}

func (h *Height) CurrentBlock() uint64 {
	h.RLock()
	defer h.RUnlock()

	return h.n
}

func (h *Height) Set(n uint64) {
	h.Lock()
	defer h.Unlock()

	h.n = n
}

// Advance moves to the next block and returns it.
func (h *Height) Advance() uint64 {
	h.Lock()
	defer h.Unlock()

	h.n++

	return h.n
}

func (h *Height) Save(st storage.Database) error {
	return storage.PutValue(st, HeightKey, h.CurrentBlock())
}

// LoadHeight reads the last saved height; a fresh storage starts at 0.
func LoadHeight(st storage.Database) (*Height, error) {
	var n uint64
	if _, err := storage.GetValue(st, HeightKey, &n); err != nil {
		return nil, err
	}

	return NewHeight(n), nil
}
