package transaction

import (
	"fmt"
	"math"

	"github.com/solwire/solwire/pkg/io"
)

// HeaderSize is the size of the encoded Header.
const HeaderSize = 3

// ErrEncodingRange is returned when a message is too big for the format:
// some counter or index doesn't fit into its field.
var ErrEncodingRange = io.ErrEncodingRange

// Header describes the account permissions of a message.
type Header struct {
	// NumRequiredSignatures is the number of signers, their keys are the
	// first ones in the account table.
	NumRequiredSignatures uint8 `json:"numRequiredSignatures"`
	// NumReadonlySignedAccounts is the number of readonly accounts among
	// the signers.
	NumReadonlySignedAccounts uint8 `json:"numReadonlySignedAccounts"`
	// NumReadonlyUnsignedAccounts is the number of readonly accounts among
	// the non-signers.
	NumReadonlyUnsignedAccounts uint8 `json:"numReadonlyUnsignedAccounts"`
}

// NewHeader counts signers, readonly signers and readonly non-signers among
// metas. It fails with ErrEncodingRange if any counter exceeds 255.
func NewHeader(metas []AccountMeta) (Header, error) {
	var sig, roSig, roUnsig int
	for _, m := range metas {
		switch {
		case m.IsSigner:
			sig++
			if !m.IsWritable {
				roSig++
			}
		case !m.IsWritable:
			roUnsig++
		}
	}
	for _, c := range []struct {
		name string
		val  int
	}{
		{"required signatures", sig},
		{"readonly signed accounts", roSig},
		{"readonly unsigned accounts", roUnsig},
	} {
		if c.val > math.MaxUint8 {
			return Header{}, fmt.Errorf("%w: %d %s", ErrEncodingRange, c.val, c.name)
		}
	}
	return Header{
		NumRequiredSignatures:       uint8(sig),
		NumReadonlySignedAccounts:   uint8(roSig),
		NumReadonlyUnsignedAccounts: uint8(roUnsig),
	}, nil
}

// EncodeBinary implements the io.Serializable interface.
func (h *Header) EncodeBinary(w *io.BinWriter) {
	w.WriteB(h.NumRequiredSignatures)
	w.WriteB(h.NumReadonlySignedAccounts)
	w.WriteB(h.NumReadonlyUnsignedAccounts)
}

// DecodeBinary implements the io.Serializable interface.
func (h *Header) DecodeBinary(r *io.BinReader) {
	h.NumRequiredSignatures = r.ReadB()
	h.NumReadonlySignedAccounts = r.ReadB()
	h.NumReadonlyUnsignedAccounts = r.ReadB()
}
