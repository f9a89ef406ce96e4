package transaction

import (
	"fmt"
	"math"
	"slices"

	"github.com/solwire/solwire/pkg/io"
	"github.com/solwire/solwire/pkg/util"
)

// Instruction is a program invocation that references accounts by their keys.
type Instruction struct {
	// ProgramID is the key of the program to invoke, it must be present in
	// the message account list.
	ProgramID util.Key `json:"programId" yaml:"programId"`
	// Keys are the accounts passed to the program, in this order.
	Keys []AccountMeta `json:"keys" yaml:"keys"`
	// Data is an opaque program input.
	Data []byte `json:"data" yaml:"data"`
}

// CompiledInstruction is an Instruction with all accounts replaced by their
// indices in the account table.
type CompiledInstruction struct {
	ProgramIDIndex uint8
	Accounts       []uint8
	Data           []byte
}

// CompileInstruction resolves all accounts of ins against the table. Data is
// copied as is.
func CompileInstruction(ins Instruction, table *AccountTable) (CompiledInstruction, error) {
	pid, err := compileIndex(ins.ProgramID, table)
	if err != nil {
		return CompiledInstruction{}, fmt.Errorf("program id: %w", err)
	}
	accounts := make([]uint8, len(ins.Keys))
	for i := range ins.Keys {
		accounts[i], err = compileIndex(ins.Keys[i].PublicKey, table)
		if err != nil {
			return CompiledInstruction{}, fmt.Errorf("key %d: %w", i, err)
		}
	}
	return CompiledInstruction{
		ProgramIDIndex: pid,
		Accounts:       accounts,
		Data:           slices.Clone(ins.Data),
	}, nil
}

func compileIndex(key util.Key, table *AccountTable) (uint8, error) {
	i, err := table.IndexOf(key)
	if err != nil {
		return 0, err
	}
	if i > math.MaxUint8 {
		return 0, fmt.Errorf("%w: account index %d", ErrEncodingRange, i)
	}
	return uint8(i), nil
}

// Size returns the size of the encoded instruction.
func (c *CompiledInstruction) Size() int {
	return 1 + io.GetVarBytesSize(c.Accounts) + io.GetVarBytesSize(c.Data)
}

// EncodeBinary implements the io.Serializable interface.
func (c *CompiledInstruction) EncodeBinary(w *io.BinWriter) {
	w.WriteB(c.ProgramIDIndex)
	w.WriteVarBytes(c.Accounts)
	w.WriteVarBytes(c.Data)
}

// DecodeBinary implements the io.Serializable interface.
func (c *CompiledInstruction) DecodeBinary(r *io.BinReader) {
	c.ProgramIDIndex = r.ReadB()
	c.Accounts = r.ReadVarBytes()
	c.Data = r.ReadVarBytes()
}
