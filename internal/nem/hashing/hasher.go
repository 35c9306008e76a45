// Package hashing computes canonical NEM block and transaction hashes.
//
// Fields are serialized into the little-endian layout used by NIS and digested with legacy Keccak-256.
// Any hash already present on the input is ignored, so the same functions generate and verify identifiers.
package hashing

import (
	"encoding/hex"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/syncerr"
	"github.com/goodnatureofminers/blockinsight7000-nem/pkg/safe"
	"golang.org/x/crypto/sha3"
)

// Keccak256 returns the legacy Keccak-256 digest of data.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// SerializeTransaction returns the canonical bytes of tx. The verifiable form includes signatures.
func SerializeTransaction(tx *model.RawTransaction, verifiable bool) ([]byte, error) {
	s := &serializer{}
	if err := serializeTransaction(s, tx, verifiable); err != nil {
		return nil, syncerr.Malformed("serialize transaction", err)
	}
	return s.out, nil
}

// SerializeBlock returns the canonical bytes of b, embedding its transactions in verifiable form.
func SerializeBlock(b *model.RawBlock) ([]byte, error) {
	s := &serializer{}
	if err := serializeBlock(s, b); err != nil {
		return nil, syncerr.Malformed("serialize block", err)
	}
	return s.out, nil
}

// TransactionHash returns the hex hash NIS assigns to tx, computed over its non-verifiable form.
func TransactionHash(tx *model.RawTransaction) (string, error) {
	data, err := SerializeTransaction(tx, false)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(Keccak256(data)), nil
}

// BlockHash returns the hex hash of b.
func BlockHash(b *model.RawBlock) (string, error) {
	data, err := SerializeBlock(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(Keccak256(data)), nil
}

func serializeBlock(s *serializer, b *model.RawBlock) error {
	s.int32(b.Type)
	s.int32(b.Version)
	s.uint32(b.TimeStamp)
	if err := s.hexBuffer("signer", b.Signer); err != nil {
		return err
	}
	if err := s.object(func(prev *serializer) error {
		return prev.hexBuffer("previous block hash", b.PrevBlockHash.Data)
	}); err != nil {
		return err
	}
	height, err := safe.Uint64(b.Height)
	if err != nil {
		return err
	}
	s.uint64(height)
	return s.array(len(b.Transactions), func(i int, tx *serializer) error {
		return serializeTransaction(tx, &b.Transactions[i], true)
	})
}
