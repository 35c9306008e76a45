package hashing

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
)

// ErrUnknownTransactionType is returned for type codes without a serializer.
var ErrUnknownTransactionType = errors.New("unknown transaction type")

type txSerializer func(s *serializer, tx *model.RawTransaction, verifiable bool) error

var txSerializers map[int32]txSerializer

func init() {
	txSerializers = map[int32]txSerializer{
		model.TransferType:                      serializeTransfer,
		model.ImportanceTransferType:            serializeImportanceTransfer,
		model.MultisigAggregateModificationType: serializeAggregateModification,
		model.MultisigSignatureType:             serializeMultisigSignature,
		model.MultisigType:                      serializeMultisig,
		model.ProvisionNamespaceType:            serializeProvisionNamespace,
		model.MosaicDefinitionCreationType:      serializeMosaicDefinition,
		model.MosaicSupplyChangeType:            serializeMosaicSupplyChange,
	}
}

func serializeTransaction(s *serializer, tx *model.RawTransaction, verifiable bool) error {
	if tx == nil {
		return errors.New("nil transaction")
	}
	fn, ok := txSerializers[tx.Type]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTransactionType, tx.Type)
	}
	if err := serializeCommon(s, tx, verifiable); err != nil {
		return err
	}
	return fn(s, tx, verifiable)
}

func serializeCommon(s *serializer, tx *model.RawTransaction, verifiable bool) error {
	s.int32(tx.Type)
	s.int32(tx.Version)
	s.uint32(tx.TimeStamp)
	if err := s.hexBuffer("signer", tx.Signer); err != nil {
		return err
	}
	if verifiable {
		if err := s.hexBuffer("signature", tx.Signature); err != nil {
			return err
		}
	}
	s.uint64(tx.Fee)
	s.uint32(tx.Deadline)
	return nil
}

func structureVersion(version int32) int32 {
	return version & 0xFFFFFF
}

func serializeMosaicID(s *serializer, id model.RawMosaicID) error {
	if err := s.string(id.NamespaceID); err != nil {
		return err
	}
	return s.string(id.Name)
}

func serializeTransfer(s *serializer, tx *model.RawTransaction, _ bool) error {
	if err := s.string(tx.Recipient); err != nil {
		return err
	}
	s.uint64(tx.Amount)
	if err := s.object(func(m *serializer) error {
		if tx.Message.Empty() {
			return nil
		}
		m.int32(tx.Message.Type)
		return m.hexBuffer("message payload", tx.Message.Payload)
	}); err != nil {
		return err
	}
	if structureVersion(tx.Version) != 2 {
		return nil
	}
	return s.array(len(tx.Mosaics), func(i int, m *serializer) error {
		mosaic := tx.Mosaics[i]
		if err := m.object(func(id *serializer) error {
			return serializeMosaicID(id, mosaic.MosaicID)
		}); err != nil {
			return err
		}
		m.uint64(mosaic.Quantity)
		return nil
	})
}

func serializeImportanceTransfer(s *serializer, tx *model.RawTransaction, _ bool) error {
	s.int32(tx.Mode)
	return s.hexBuffer("remote account", tx.RemoteAccount)
}

func serializeAggregateModification(s *serializer, tx *model.RawTransaction, _ bool) error {
	if err := s.array(len(tx.Modifications), func(i int, m *serializer) error {
		m.int32(tx.Modifications[i].ModificationType)
		return m.hexBuffer("cosignatory account", tx.Modifications[i].CosignatoryAccount)
	}); err != nil {
		return err
	}
	if structureVersion(tx.Version) < 2 {
		return nil
	}
	return s.object(func(m *serializer) error {
		if tx.MinCosignatories == nil || tx.MinCosignatories.RelativeChange == nil {
			return nil
		}
		m.int32(*tx.MinCosignatories.RelativeChange)
		return nil
	})
}

// serializeMultisig embeds the inner transaction without its signature.
func serializeMultisig(s *serializer, tx *model.RawTransaction, verifiable bool) error {
	if err := s.object(func(inner *serializer) error {
		if tx.OtherTrans == nil {
			return nil
		}
		return serializeTransaction(inner, tx.OtherTrans, false)
	}); err != nil {
		return err
	}
	if !verifiable {
		return nil
	}
	return s.array(len(tx.Signatures), func(i int, sig *serializer) error {
		return serializeTransaction(sig, &tx.Signatures[i], true)
	})
}

func serializeMultisigSignature(s *serializer, tx *model.RawTransaction, _ bool) error {
	var otherHash string
	if tx.OtherHash != nil {
		otherHash = tx.OtherHash.Data
	}
	if err := s.object(func(h *serializer) error {
		return h.hexBuffer("other hash", otherHash)
	}); err != nil {
		return err
	}
	return s.string(tx.OtherAccount)
}

func serializeProvisionNamespace(s *serializer, tx *model.RawTransaction, _ bool) error {
	if err := s.string(tx.RentalFeeSink); err != nil {
		return err
	}
	s.uint64(tx.RentalFee)
	if err := s.string(tx.NewPart); err != nil {
		return err
	}
	return s.nullableString(tx.Parent)
}

func serializeMosaicDefinition(s *serializer, tx *model.RawTransaction, _ bool) error {
	def := tx.MosaicDefinition
	if def == nil {
		return errors.New("mosaic definition is missing")
	}
	if err := s.object(func(d *serializer) error {
		if err := d.hexBuffer("creator", def.Creator); err != nil {
			return err
		}
		if err := d.object(func(id *serializer) error {
			return serializeMosaicID(id, def.ID)
		}); err != nil {
			return err
		}
		if err := d.string(def.Description); err != nil {
			return err
		}
		if err := d.array(len(def.Properties), func(i int, p *serializer) error {
			if err := p.string(def.Properties[i].Name); err != nil {
				return err
			}
			return p.string(def.Properties[i].Value)
		}); err != nil {
			return err
		}
		return d.object(func(l *serializer) error {
			if def.Levy.Empty() {
				return nil
			}
			l.int32(def.Levy.Type)
			if err := l.string(def.Levy.Recipient); err != nil {
				return err
			}
			if err := l.object(func(id *serializer) error {
				return serializeMosaicID(id, def.Levy.MosaicID)
			}); err != nil {
				return err
			}
			l.uint64(def.Levy.Fee)
			return nil
		})
	}); err != nil {
		return err
	}
	if err := s.string(tx.CreationFeeSink); err != nil {
		return err
	}
	s.uint64(tx.CreationFee)
	return nil
}

func serializeMosaicSupplyChange(s *serializer, tx *model.RawTransaction, _ bool) error {
	if tx.MosaicID == nil {
		return errors.New("mosaic id is missing")
	}
	if err := s.object(func(id *serializer) error {
		return serializeMosaicID(id, *tx.MosaicID)
	}); err != nil {
		return err
	}
	s.int32(tx.SupplyType)
	s.uint64(tx.Delta)
	return nil
}
