// Package address derives NEM account addresses from public keys.
package address

import (
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/hashing"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // NEM addresses are defined over RIPEMD-160.
)

const (
	publicKeySize = 32
	checksumSize  = 4
	decodedSize   = 1 + ripemd160.Size + checksumSize
)

var ErrInvalidAddress = errors.New("invalid address")

// FromPublicKey returns the base32 address of a hex encoded public key on network.
func FromPublicKey(publicKey string, network model.Network) (string, error) {
	key, err := hex.DecodeString(publicKey)
	if err != nil {
		return "", fmt.Errorf("decode public key: %w", err)
	}
	if len(key) != publicKeySize {
		return "", fmt.Errorf("public key must be %d bytes, got %d", publicKeySize, len(key))
	}
	version, err := network.AddressVersion()
	if err != nil {
		return "", err
	}

	r := ripemd160.New()
	r.Write(hashing.Keccak256(key))

	decoded := make([]byte, 0, decodedSize)
	decoded = append(decoded, version)
	decoded = r.Sum(decoded)
	decoded = append(decoded, hashing.Keccak256(decoded)[:checksumSize]...)

	return base32.StdEncoding.EncodeToString(decoded), nil
}

// Validate checks the checksum and network byte of a base32 address.
// Dashes used in the pretty form are accepted.
func Validate(addr string, network model.Network) error {
	decoded, err := base32.StdEncoding.DecodeString(strings.ToUpper(strings.ReplaceAll(addr, "-", "")))
	if err != nil || len(decoded) != decodedSize {
		return fmt.Errorf("%w: %s", ErrInvalidAddress, addr)
	}
	version, err := network.AddressVersion()
	if err != nil {
		return err
	}
	if decoded[0] != version {
		return fmt.Errorf("%w: %s belongs to another network", ErrInvalidAddress, addr)
	}
	body := decoded[:decodedSize-checksumSize]
	if !bytes.Equal(hashing.Keccak256(body)[:checksumSize], decoded[decodedSize-checksumSize:]) {
		return fmt.Errorf("%w: %s checksum mismatch", ErrInvalidAddress, addr)
	}
	return nil
}
