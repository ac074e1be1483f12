package cas

import (
	"bytes"
	"sort"
	"sync"

	"github.com/dgryski/go-farm"
)

type MemoryCAS struct {
	mu     sync.RWMutex
	data   map[Hash][]byte
	depths map[Hash][]int // Track depths where each hash was seen
}

func NewMemoryCAS() *MemoryCAS {
	return &MemoryCAS{
		data:   make(map[Hash][]byte),
		depths: make(map[Hash][]int),
	}
}

func (m *MemoryCAS) getValue(h Hash) (bool, []byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[h]
	if !ok {
		return false, nil, nil
	}
	return true, v, nil
}

func (m *MemoryCAS) Has(hash Hash) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[hash]
	return ok
}

// Put stores item and returns the farm hash of its serialized form. Equal
// items always hash the same, so Put is idempotent.
func (m *MemoryCAS) Put(item Hashable) (Hash, error) {
	data, h, err := serialize(item)
	if err != nil {
		return 0, err
	}

	entry := &TypedEntry{TypeTag: getTypeTag(item), Data: data}
	var out bytes.Buffer
	err = entry.Serialize(&out)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[h] = out.Bytes()
	return h, nil
}

// HashOf returns the hash item would be stored under, without storing it.
func HashOf(item Hashable) (Hash, error) {
	_, h, err := serialize(item)
	return h, err
}

func serialize(item Hashable) ([]byte, Hash, error) {
	var buf bytes.Buffer
	if err := item.Serialize(&buf); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), Hash(farm.Hash64(buf.Bytes())), nil
}

// Len is the number of distinct items stored.
func (m *MemoryCAS) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// RecordDepth records that hash was seen at the given depth
func (m *MemoryCAS) RecordDepth(hash Hash, depth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.depths[hash] = append(m.depths[hash], depth)
	sort.Ints(m.depths[hash])
}

// Depths returns all depths where the given hash was seen
func (m *MemoryCAS) Depths(hash Hash) []int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Return a copy to avoid race conditions
	depths := m.depths[hash]
	result := make([]int, len(depths))
	copy(result, depths)
	return result
}
