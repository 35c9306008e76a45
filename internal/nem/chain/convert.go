// Package chain converts NEM node payloads into stored rows.
package chain

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/address"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/hashing"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/syncerr"
)

// Converter maps raw blocks and transactions of one network to model rows.
type Converter struct {
	network model.Network
}

// NewConverter creates a Converter for network.
func NewConverter(network model.Network) (*Converter, error) {
	if _, err := network.AddressVersion(); err != nil {
		return nil, err
	}
	return &Converter{network: network}, nil
}

// Block hashes raw and converts it together with its transactions.
func (c *Converter) Block(raw *model.RawBlock) (model.InsertBlock, error) {
	if raw == nil {
		return model.InsertBlock{}, syncerr.Malformed("convert block", fmt.Errorf("empty block"))
	}
	hash, err := hashing.BlockHash(raw)
	if err != nil {
		return model.InsertBlock{}, fmt.Errorf("hash block %d: %w", raw.Height, err)
	}

	txs := make([]model.Transaction, 0, len(raw.Transactions))
	for i := range raw.Transactions {
		tx, err := c.Transaction(&raw.Transactions[i], raw.Height)
		if err != nil {
			return model.InsertBlock{}, fmt.Errorf("block %d tx %d: %w", raw.Height, i, err)
		}
		txs = append(txs, tx)
	}

	b := model.InsertBlock{
		Block: model.Block{
			Network:       c.network,
			Number:        raw.Height,
			Hash:          hash,
			NemTimestamp:  raw.TimeStamp,
			Timestamp:     model.NemTime(raw.TimeStamp),
			Type:          raw.Type,
			Version:       raw.Version,
			Signature:     raw.Signature,
			Signer:        raw.Signer,
			PrevBlockHash: raw.PrevBlockHash.Data,
		},
		Txs: txs,
	}
	b.Block.TxHashes = b.TxHashes()
	return b, nil
}

// Unconfirmed converts a transaction received from the push feed.
func (c *Converter) Unconfirmed(u model.UnconfirmedTransaction) (model.Transaction, error) {
	return c.Transaction(u.Tx, model.UnconfirmedBlockNumber)
}

// Transaction hashes raw and converts it to a row placed at blockNumber.
func (c *Converter) Transaction(raw *model.RawTransaction, blockNumber int64) (model.Transaction, error) {
	if raw == nil {
		return model.Transaction{}, syncerr.Malformed("convert transaction", fmt.Errorf("empty transaction"))
	}
	hash, err := hashing.TransactionHash(raw)
	if err != nil {
		return model.Transaction{}, err
	}
	tx := model.Transaction{
		Network:      c.network,
		Hash:         hash,
		BlockNumber:  blockNumber,
		NemTimestamp: raw.TimeStamp,
		Timestamp:    model.NemTime(raw.TimeStamp),
		Type:         raw.Type,
		Version:      raw.Version,
		Fee:          raw.Fee,
		Signer:       raw.Signer,
	}
	if tx.Sender, err = c.address(raw.Signer); err != nil {
		return model.Transaction{}, err
	}
	if err := c.fill(&tx, raw); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

func (c *Converter) fill(tx *model.Transaction, raw *model.RawTransaction) error {
	switch raw.Type {
	case model.TransferType:
		tx.Recipient = raw.Recipient
		tx.Amount = raw.Amount
		if !raw.Message.Empty() {
			tx.MessageType = raw.Message.Type
			tx.MessagePayload = raw.Message.Payload
		}
		for _, m := range raw.Mosaics {
			tx.Mosaics = append(tx.Mosaics, model.Mosaic{
				NamespaceID: m.MosaicID.NamespaceID,
				Name:        m.MosaicID.Name,
				Quantity:    m.Quantity,
			})
		}
	case model.ImportanceTransferType:
		tx.ImportanceMode = raw.Mode
		tx.RemoteAccount = raw.RemoteAccount
	case model.MultisigAggregateModificationType:
		for _, m := range raw.Modifications {
			cosignatory, err := c.address(m.CosignatoryAccount)
			if err != nil {
				return err
			}
			tx.Cosignatories = append(tx.Cosignatories, cosignatory)
		}
		if raw.MinCosignatories != nil && raw.MinCosignatories.RelativeChange != nil {
			tx.MinCosignatoriesChange = *raw.MinCosignatories.RelativeChange
		}
	case model.MultisigSignatureType:
		if raw.OtherHash != nil {
			tx.OtherHash = raw.OtherHash.Data
		}
		tx.OtherAccount = raw.OtherAccount
	case model.MultisigType:
		return c.fillMultisig(tx, raw)
	case model.ProvisionNamespaceType:
		tx.NamespaceNewPart = raw.NewPart
		if raw.Parent != nil {
			tx.NamespaceParent = *raw.Parent
		}
		tx.RentalFee = raw.RentalFee
	case model.MosaicDefinitionCreationType:
		if raw.MosaicDefinition != nil {
			tx.MosaicNamespaceID = raw.MosaicDefinition.ID.NamespaceID
			tx.MosaicName = raw.MosaicDefinition.ID.Name
		}
		tx.CreationFee = raw.CreationFee
	case model.MosaicSupplyChangeType:
		if raw.MosaicID != nil {
			tx.MosaicNamespaceID = raw.MosaicID.NamespaceID
			tx.MosaicName = raw.MosaicID.Name
		}
		tx.SupplyType = raw.SupplyType
		tx.SupplyDelta = raw.Delta
	}
	return nil
}

// fillMultisig lifts the inner transaction's payload onto the wrapper row.
// The multisig account becomes the sender; the initiator and cosigners become cosignatories.
func (c *Converter) fillMultisig(tx *model.Transaction, raw *model.RawTransaction) error {
	initiator := tx.Sender
	tx.Cosignatories = append(tx.Cosignatories, initiator)
	for _, sig := range raw.Signatures {
		cosigner, err := c.address(sig.Signer)
		if err != nil {
			return err
		}
		tx.Cosignatories = append(tx.Cosignatories, cosigner)
	}
	if raw.OtherTrans == nil {
		return nil
	}

	inner, err := c.Transaction(raw.OtherTrans, tx.BlockNumber)
	if err != nil {
		return fmt.Errorf("inner transaction: %w", err)
	}
	tx.InnerHash = inner.Hash
	tx.Sender = inner.Sender
	tx.Recipient = inner.Recipient
	tx.Amount = inner.Amount
	tx.MessageType = inner.MessageType
	tx.MessagePayload = inner.MessagePayload
	tx.Mosaics = inner.Mosaics
	tx.ImportanceMode = inner.ImportanceMode
	tx.RemoteAccount = inner.RemoteAccount
	tx.Cosignatories = append(tx.Cosignatories, inner.Cosignatories...)
	tx.MinCosignatoriesChange = inner.MinCosignatoriesChange
	tx.NamespaceNewPart = inner.NamespaceNewPart
	tx.NamespaceParent = inner.NamespaceParent
	tx.RentalFee = inner.RentalFee
	tx.MosaicNamespaceID = inner.MosaicNamespaceID
	tx.MosaicName = inner.MosaicName
	tx.CreationFee = inner.CreationFee
	tx.SupplyType = inner.SupplyType
	tx.SupplyDelta = inner.SupplyDelta
	return nil
}

func (c *Converter) address(publicKey string) (string, error) {
	addr, err := address.FromPublicKey(publicKey, c.network)
	if err != nil {
		return "", syncerr.Malformed("derive address", err)
	}
	return addr, nil
}
