package hashing

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-nem/pkg/safe"
)

// nullString is the length marker written for an absent string.
const nullString uint32 = 0xFFFFFFFF

type serializer struct {
	out []byte
}

func (s *serializer) uint32(v uint32) {
	s.out = binary.LittleEndian.AppendUint32(s.out, v)
}

func (s *serializer) int32(v int32) {
	s.uint32(uint32(v))
}

func (s *serializer) uint64(v uint64) {
	s.out = binary.LittleEndian.AppendUint64(s.out, v)
}

func (s *serializer) length(n int) error {
	v, err := safe.Uint32(n)
	if err != nil {
		return fmt.Errorf("length prefix: %w", err)
	}
	s.uint32(v)
	return nil
}

func (s *serializer) bytes(b []byte) error {
	if err := s.length(len(b)); err != nil {
		return err
	}
	s.out = append(s.out, b...)
	return nil
}

// hexBuffer writes a hex encoded field as length-prefixed raw bytes.
func (s *serializer) hexBuffer(field, value string) error {
	b, err := hex.DecodeString(value)
	if err != nil {
		return fmt.Errorf("decode %s: %w", field, err)
	}
	return s.bytes(b)
}

func (s *serializer) string(v string) error {
	return s.bytes([]byte(v))
}

// nullableString writes the null marker for nil or empty values.
func (s *serializer) nullableString(v *string) error {
	if v == nil || *v == "" {
		s.uint32(nullString)
		return nil
	}
	return s.string(*v)
}

// object writes the output of fn as a length-prefixed nested structure.
func (s *serializer) object(fn func(*serializer) error) error {
	nested := &serializer{}
	if fn != nil {
		if err := fn(nested); err != nil {
			return err
		}
	}
	return s.bytes(nested.out)
}

// array writes an element count followed by each element as an object.
func (s *serializer) array(n int, fn func(i int, s *serializer) error) error {
	if err := s.length(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := s.object(func(nested *serializer) error {
			return fn(i, nested)
		}); err != nil {
			return err
		}
	}
	return nil
}
