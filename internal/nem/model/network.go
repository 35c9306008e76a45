// Package model holds NEM wire and storage types.
package model

import (
	"fmt"
	"time"
)

// Network identifies the NEM network served by the upstream nodes.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Mijin   Network = "mijin"
)

// NemesisTime is the NEM epoch; block and transaction timestamps count seconds from it.
var NemesisTime = time.Date(2015, time.March, 29, 0, 6, 25, 0, time.UTC)

// AddressVersion returns the version byte prefixed to account addresses.
func (n Network) AddressVersion() (byte, error) {
	switch n {
	case Mainnet:
		return 0x68, nil
	case Testnet:
		return 0x98, nil
	case Mijin:
		return 0x60, nil
	default:
		return 0, fmt.Errorf("unknown network %q", string(n))
	}
}

// UnmarshalFlag validates the network name given on the command line.
func (n *Network) UnmarshalFlag(value string) error {
	candidate := Network(value)
	if _, err := candidate.AddressVersion(); err != nil {
		return err
	}
	*n = candidate
	return nil
}

// NemTime converts a NEM timestamp into wall-clock time.
func NemTime(ts uint32) time.Time {
	return NemesisTime.Add(time.Duration(ts) * time.Second)
}
