package model

import "time"

// UnconfirmedBlockNumber marks transactions that are not yet in a block.
const UnconfirmedBlockNumber int64 = -1

// Block is a stored NEM block.
type Block struct {
	Network       Network
	Number        int64
	Hash          string
	NemTimestamp  uint32
	Timestamp     time.Time
	Type          int32
	Version       int32
	Signature     string
	Signer        string
	PrevBlockHash string
	TxHashes      []string
}

// Mosaic is a quantity of a named asset attached to a transfer.
type Mosaic struct {
	NamespaceID string `json:"namespaceId"`
	Name        string `json:"name"`
	Quantity    uint64 `json:"quantity"`
}

// Transaction is a stored NEM transaction.
type Transaction struct {
	Network      Network   `json:"network"`
	Hash         string    `json:"hash"`
	BlockNumber  int64     `json:"blockNumber"`
	NemTimestamp uint32    `json:"nemTimestamp"`
	Timestamp    time.Time `json:"timestamp"`
	Type         int32     `json:"type"`
	Version      int32     `json:"version"`
	Amount       uint64    `json:"amount"`
	Fee          uint64    `json:"fee"`
	Sender       string    `json:"sender"`
	Recipient    string    `json:"recipient,omitempty"`
	Signer       string    `json:"signer"`

	MessageType    int32    `json:"messageType,omitempty"`
	MessagePayload string   `json:"messagePayload,omitempty"`
	Mosaics        []Mosaic `json:"mosaics,omitempty"`

	ImportanceMode int32  `json:"importanceMode,omitempty"`
	RemoteAccount  string `json:"remoteAccount,omitempty"`

	Cosignatories          []string `json:"cosignatories,omitempty"`
	MinCosignatoriesChange int32    `json:"minCosignatoriesChange,omitempty"`
	InnerHash              string   `json:"innerHash,omitempty"`
	OtherHash              string   `json:"otherHash,omitempty"`
	OtherAccount           string   `json:"otherAccount,omitempty"`

	NamespaceNewPart string `json:"namespaceNewPart,omitempty"`
	NamespaceParent  string `json:"namespaceParent,omitempty"`
	RentalFee        uint64 `json:"rentalFee,omitempty"`

	MosaicNamespaceID string `json:"mosaicNamespaceId,omitempty"`
	MosaicName        string `json:"mosaicName,omitempty"`
	CreationFee       uint64 `json:"creationFee,omitempty"`
	SupplyType        int32  `json:"supplyType,omitempty"`
	SupplyDelta       uint64 `json:"supplyDelta,omitempty"`
}

// Confirmed reports whether the transaction belongs to a block.
func (t Transaction) Confirmed() bool {
	return t.BlockNumber != UnconfirmedBlockNumber
}

// Accounts lists every address the transaction touches.
func (t Transaction) Accounts() []string {
	accounts := make([]string, 0, 2+len(t.Cosignatories))
	seen := make(map[string]struct{}, cap(accounts))
	add := func(a string) {
		if a == "" {
			return
		}
		if _, ok := seen[a]; ok {
			return
		}
		seen[a] = struct{}{}
		accounts = append(accounts, a)
	}
	add(t.Sender)
	add(t.Recipient)
	add(t.OtherAccount)
	for _, c := range t.Cosignatories {
		add(c)
	}
	return accounts
}

// InsertBlock bundles a block with its transactions for a single write.
type InsertBlock struct {
	Block Block
	Txs   []Transaction
}

// TxHashes returns the hashes of the bundled transactions.
func (b InsertBlock) TxHashes() []string {
	hashes := make([]string, 0, len(b.Txs))
	for _, tx := range b.Txs {
		hashes = append(hashes, tx.Hash)
	}
	return hashes
}
