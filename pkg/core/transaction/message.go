package transaction

import (
	"fmt"

	"github.com/solwire/solwire/pkg/util"
)

// Message is a transaction message with accounts referenced by their keys.
// It's never modified by Compile or Bytes, so the same Message can be
// serialized concurrently as long as nobody changes it.
type Message struct {
	// AccountKeys are all accounts the message uses, including the
	// instruction programs.
	AccountKeys []AccountMeta `json:"accountKeys" yaml:"accountKeys"`
	// RecentBlockhash is a hash of a recent block.
	RecentBlockhash util.Hash `json:"recentBlockhash" yaml:"recentBlockhash"`
	// Instructions are executed in this order.
	Instructions []Instruction `json:"instructions" yaml:"instructions"`
	// Ordering is the account table ordering policy.
	Ordering AccountOrdering `json:"-" yaml:"-"`
}

// Compile builds the account table, the header and compiles all
// instructions. Any failure aborts the whole compilation.
func (m *Message) Compile() (*CompiledMessage, error) {
	table := NewAccountTable(m.AccountKeys, m.Ordering)
	h, err := table.Header()
	if err != nil {
		return nil, err
	}
	ins := make([]CompiledInstruction, len(m.Instructions))
	for i := range m.Instructions {
		ins[i], err = CompileInstruction(m.Instructions[i], table)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	return &CompiledMessage{
		Header:          h,
		AccountKeys:     table.Keys(),
		RecentBlockhash: m.RecentBlockhash,
		Instructions:    ins,
	}, nil
}

// Bytes returns the serialized message, that is the data to be signed.
func (m *Message) Bytes() ([]byte, error) {
	cm, err := m.Compile()
	if err != nil {
		return nil, err
	}
	return cm.Bytes()
}
