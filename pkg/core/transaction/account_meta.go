package transaction

import (
	"fmt"

	"github.com/solwire/solwire/pkg/util"
)

// AccountMeta is an account reference used in a message: account key plus
// its signer and writable flags.
type AccountMeta struct {
	PublicKey  util.Key `json:"pubkey" yaml:"pubkey"`
	IsSigner   bool     `json:"signer" yaml:"signer"`
	IsWritable bool     `json:"writable" yaml:"writable"`
}

// NewAccountMeta creates an AccountMeta for the given key and flags.
func NewAccountMeta(key util.Key, signer, writable bool) AccountMeta {
	return AccountMeta{
		PublicKey:  key,
		IsSigner:   signer,
		IsWritable: writable,
	}
}

// String implements the Stringer interface.
func (a AccountMeta) String() string {
	var s, w = "-", "-"
	if a.IsSigner {
		s = "s"
	}
	if a.IsWritable {
		w = "w"
	}
	return fmt.Sprintf("%s%s %s", s, w, a.PublicKey)
}
