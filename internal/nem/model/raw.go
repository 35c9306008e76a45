package model

// Transaction type codes.
const (
	TransferType                      int32 = 0x0101
	ImportanceTransferType            int32 = 0x0801
	MultisigAggregateModificationType int32 = 0x1001
	MultisigSignatureType             int32 = 0x1002
	MultisigType                      int32 = 0x1004
	ProvisionNamespaceType            int32 = 0x2001
	MosaicDefinitionCreationType      int32 = 0x4001
	MosaicSupplyChangeType            int32 = 0x4002
)

// HashData is the node's envelope for a hash value.
type HashData struct {
	Data string `json:"data"`
}

// RawBlock is a block as returned by /block/at/public.
type RawBlock struct {
	TimeStamp     uint32           `json:"timeStamp"`
	Signature     string           `json:"signature"`
	PrevBlockHash HashData         `json:"prevBlockHash"`
	Type          int32            `json:"type"`
	Transactions  []RawTransaction `json:"transactions"`
	Version       int32            `json:"version"`
	Signer        string           `json:"signer"`
	Height        int64            `json:"height"`
}

// RawTransaction is the union of every transaction kind the node serves.
type RawTransaction struct {
	TimeStamp uint32 `json:"timeStamp"`
	Signature string `json:"signature,omitempty"`
	Fee       uint64 `json:"fee"`
	Type      int32  `json:"type"`
	Deadline  uint32 `json:"deadline"`
	Version   int32  `json:"version"`
	Signer    string `json:"signer"`

	// transfer
	Recipient string      `json:"recipient,omitempty"`
	Amount    uint64      `json:"amount,omitempty"`
	Message   *RawMessage `json:"message,omitempty"`
	Mosaics   []RawMosaic `json:"mosaics,omitempty"`

	// importance transfer
	Mode          int32  `json:"mode,omitempty"`
	RemoteAccount string `json:"remoteAccount,omitempty"`

	// multisig aggregate modification
	Modifications    []RawModification    `json:"modifications,omitempty"`
	MinCosignatories *RawMinCosignatories `json:"minCosignatories,omitempty"`

	// multisig
	OtherTrans *RawTransaction  `json:"otherTrans,omitempty"`
	Signatures []RawTransaction `json:"signatures,omitempty"`

	// multisig signature
	OtherHash    *HashData `json:"otherHash,omitempty"`
	OtherAccount string    `json:"otherAccount,omitempty"`

	// provision namespace
	RentalFeeSink string  `json:"rentalFeeSink,omitempty"`
	RentalFee     uint64  `json:"rentalFee,omitempty"`
	NewPart       string  `json:"newPart,omitempty"`
	Parent        *string `json:"parent,omitempty"`

	// mosaic definition creation
	MosaicDefinition *RawMosaicDefinition `json:"mosaicDefinition,omitempty"`
	CreationFeeSink  string               `json:"creationFeeSink,omitempty"`
	CreationFee      uint64               `json:"creationFee,omitempty"`

	// mosaic supply change
	MosaicID   *RawMosaicID `json:"mosaicId,omitempty"`
	SupplyType int32        `json:"supplyType,omitempty"`
	Delta      uint64       `json:"delta,omitempty"`
}

// RawMessage is a transfer message; the node sends {} when there is none.
type RawMessage struct {
	Type    int32  `json:"type"`
	Payload string `json:"payload"`
}

// Empty reports whether the message carries nothing.
func (m *RawMessage) Empty() bool {
	return m == nil || (m.Type == 0 && m.Payload == "")
}

type RawMosaicID struct {
	NamespaceID string `json:"namespaceId"`
	Name        string `json:"name"`
}

type RawMosaic struct {
	MosaicID RawMosaicID `json:"mosaicId"`
	Quantity uint64      `json:"quantity"`
}

type RawModification struct {
	ModificationType   int32  `json:"modificationType"`
	CosignatoryAccount string `json:"cosignatoryAccount"`
}

// RawMinCosignatories is {} or {"relativeChange": n}.
type RawMinCosignatories struct {
	RelativeChange *int32 `json:"relativeChange,omitempty"`
}

type RawMosaicProperty struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type RawMosaicLevy struct {
	Type      int32       `json:"type"`
	Recipient string      `json:"recipient"`
	MosaicID  RawMosaicID `json:"mosaicId"`
	Fee       uint64      `json:"fee"`
}

// Empty reports whether the levy is the node's {} placeholder.
func (l *RawMosaicLevy) Empty() bool {
	return l == nil || (l.Type == 0 && l.Recipient == "" && l.Fee == 0 && l.MosaicID == RawMosaicID{})
}

type RawMosaicDefinition struct {
	Creator     string              `json:"creator"`
	ID          RawMosaicID         `json:"id"`
	Description string              `json:"description"`
	Properties  []RawMosaicProperty `json:"properties"`
	Levy        *RawMosaicLevy      `json:"levy,omitempty"`
}

// RawTransactionMeta accompanies transactions pushed on the websocket feed.
type RawTransactionMeta struct {
	Hash      HashData `json:"hash"`
	InnerHash HashData `json:"innerHash"`
}

// RawTransactionEnvelope is the {meta, transaction} shape used by the push feed.
type RawTransactionEnvelope struct {
	Meta        RawTransactionMeta `json:"meta"`
	Transaction *RawTransaction    `json:"transaction"`
}

// UnconfirmedTransaction is one pending transaction received from the push feed.
type UnconfirmedTransaction struct {
	Tx           *RawTransaction
	DeclaredHash string
	Address      string
}
