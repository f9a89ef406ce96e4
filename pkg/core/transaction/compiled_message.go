package transaction

import (
	"fmt"

	"github.com/solwire/solwire/pkg/io"
	"github.com/solwire/solwire/pkg/util"
)

// CompiledMessage is the wire form of a Message.
type CompiledMessage struct {
	Header          Header
	AccountKeys     []util.Key
	RecentBlockhash util.Hash
	Instructions    []CompiledInstruction
}

// NewCompiledMessageFromBytes decodes a CompiledMessage from its binary
// form. The whole slice must be consumed.
func NewCompiledMessageFromBytes(b []byte) (*CompiledMessage, error) {
	m := new(CompiledMessage)
	r := io.NewBinReaderFromBuf(b)
	m.DecodeBinary(r)
	r.Finish()
	if r.Err != nil {
		return nil, r.Err
	}
	return m, nil
}

// Size returns the size of the encoded message.
func (m *CompiledMessage) Size() int {
	size := HeaderSize +
		io.GetCompactLenSize(len(m.AccountKeys)) + len(m.AccountKeys)*util.KeySize +
		util.HashSize +
		io.GetCompactLenSize(len(m.Instructions))
	for i := range m.Instructions {
		size += m.Instructions[i].Size()
	}
	return size
}

// Bytes returns the serialized message.
func (m *CompiledMessage) Bytes() ([]byte, error) {
	w := io.NewBufBinWriter()
	w.Grow(m.Size())
	m.EncodeBinary(w.BinWriter)
	if w.Err != nil {
		return nil, w.Err
	}
	return w.Bytes(), nil
}

// EncodeBinary implements the io.Serializable interface.
func (m *CompiledMessage) EncodeBinary(w *io.BinWriter) {
	m.Header.EncodeBinary(w)
	w.WriteCompactLen(len(m.AccountKeys))
	for i := range m.AccountKeys {
		w.WriteBytes(m.AccountKeys[i][:])
	}
	w.WriteBytes(m.RecentBlockhash[:])
	io.WriteArray(w, m.Instructions)
}

// DecodeBinary implements the io.Serializable interface.
func (m *CompiledMessage) DecodeBinary(r *io.BinReader) {
	m.Header.DecodeBinary(r)
	n := r.ReadCompactLen()
	if r.Err != nil {
		return
	}
	if n*util.KeySize > r.Len() {
		r.Err = fmt.Errorf("%d account keys: %w", n, io.ErrUnexpectedEOF)
		return
	}
	m.AccountKeys = make([]util.Key, n)
	for i := range m.AccountKeys {
		r.ReadBytes(m.AccountKeys[i][:])
	}
	r.ReadBytes(m.RecentBlockhash[:])
	io.ReadArray(r, &m.Instructions)
	if r.Err != nil {
		return
	}
	r.Err = m.verify()
}

func (m *CompiledMessage) verify() error {
	var (
		total = len(m.AccountKeys)
		sig   = int(m.Header.NumRequiredSignatures)
	)
	if sig > total {
		return fmt.Errorf("%d required signatures for %d accounts", sig, total)
	}
	if int(m.Header.NumReadonlySignedAccounts) > sig {
		return fmt.Errorf("%d readonly signed accounts for %d signers",
			m.Header.NumReadonlySignedAccounts, sig)
	}
	if int(m.Header.NumReadonlyUnsignedAccounts) > total-sig {
		return fmt.Errorf("%d readonly unsigned accounts for %d non-signers",
			m.Header.NumReadonlyUnsignedAccounts, total-sig)
	}
	for i := range m.Instructions {
		ins := &m.Instructions[i]
		if int(ins.ProgramIDIndex) >= total {
			return fmt.Errorf("instruction %d: program id index %d is out of range", i, ins.ProgramIDIndex)
		}
		for j, idx := range ins.Accounts {
			if int(idx) >= total {
				return fmt.Errorf("instruction %d: account %d index %d is out of range", i, j, idx)
			}
		}
	}
	return nil
}

// IsSigner returns true if the header marks the i-th account as a signer.
func (m *CompiledMessage) IsSigner(i int) bool {
	return i < int(m.Header.NumRequiredSignatures)
}

// IsWritable returns true if the header marks the i-th account as writable.
// Readonly accounts are expected to be the last ones of both signer and
// non-signer groups.
func (m *CompiledMessage) IsWritable(i int) bool {
	sig := int(m.Header.NumRequiredSignatures)
	if i < sig {
		return i < sig-int(m.Header.NumReadonlySignedAccounts)
	}
	return i < len(m.AccountKeys)-int(m.Header.NumReadonlyUnsignedAccounts)
}

// AccountMetas returns the account list with the permissions a validator
// derives from the header.
func (m *CompiledMessage) AccountMetas() []AccountMeta {
	res := make([]AccountMeta, len(m.AccountKeys))
	for i := range m.AccountKeys {
		res[i] = NewAccountMeta(m.AccountKeys[i], m.IsSigner(i), m.IsWritable(i))
	}
	return res
}

// Instruction returns the i-th instruction with account indices resolved
// into account references (permissions are derived from the header).
func (m *CompiledMessage) Instruction(i int) Instruction {
	var (
		ci  = &m.Instructions[i]
		ins = Instruction{
			ProgramID: m.AccountKeys[ci.ProgramIDIndex],
			Keys:      make([]AccountMeta, len(ci.Accounts)),
			Data:      ci.Data,
		}
	)
	for j, idx := range ci.Accounts {
		ins.Keys[j] = NewAccountMeta(m.AccountKeys[idx], m.IsSigner(int(idx)), m.IsWritable(int(idx)))
	}
	return ins
}
