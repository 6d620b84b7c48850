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
	Len() int
	getValue(h Hash) (bool, []byte, error)
}

type Serde interface {
	Serialize(w io.Writer) error
	Deserialize(r io.Reader) error
}

type Hashable interface {
	Serde
}

type Hash uint64

func (h Hash) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

var ErrNotFound = errors.New("hash not found in CAS")

// Retrieve deserializes the item stored under hash into a new T.
func Retrieve[T any, PT interface {
	*T
	Hashable
}](c CAS, hash Hash) (PT, error) {
	has, data, err := c.getValue(hash)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, hash)
	}
	out := PT(new(T))
	err = out.Deserialize(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("deserializing %s: %w", hash, err)
	}
	return out, nil
}
