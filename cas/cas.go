package cas

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

type CAS interface {
	Put(item Hashable) (Hash, error)
	Has(hash Hash) bool

	// Depth tracking: the history indices at which a state was seen
	RecordDepth(hash Hash, depth int)
	Depths(hash Hash) []int
}

type Serde interface {
	Serialize(w io.Writer) error
	Deserialize(r io.Reader) error
}

type Hashable interface {
	Serde
}

type directStore interface {
	getValue(h Hash) (bool, []byte, error)
}

type Hash uint64

var ErrNotFound = errors.New("hash not found in CAS")

func Retrieve[T Hashable](c CAS, hash Hash) (T, error) {
	var t T
	v, ok := c.(directStore)
	if !ok {
		return t, errors.New("CAS does not support direct retrieval")
	}

	has, data, err := v.getValue(hash)
	if err != nil {
		return t, err
	}
	if !has {
		return t, fmt.Errorf("%w: %d", ErrNotFound, hash)
	}

	// Entries are stored wrapped in a TypedEntry
	typedEntry := &TypedEntry{}
	err = typedEntry.Deserialize(bytes.NewReader(data))
	if err != nil {
		return t, fmt.Errorf("deserializing TypedEntry: %w", err)
	}

	instance, err := createInstance(typedEntry.TypeTag)
	if err != nil {
		return t, fmt.Errorf("creating instance: %w", err)
	}

	err = instance.Deserialize(bytes.NewReader(typedEntry.Data))
	if err != nil {
		return t, fmt.Errorf("deserializing data: %w", err)
	}

	result, ok := instance.(T)
	if !ok {
		return t, fmt.Errorf("type mismatch: expected %T, got %T", t, instance)
	}

	return result, nil
}
