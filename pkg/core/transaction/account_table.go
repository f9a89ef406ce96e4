package transaction

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/solwire/solwire/pkg/util"
)

// ErrUnknownAccount is returned when an instruction references an account
// that is not present in the message account list.
var ErrUnknownAccount = errors.New("unknown account")

// AccountTable is the canonical ordered account list of a message. It's the
// index space compiled instructions refer to.
type AccountTable struct {
	metas []AccountMeta
}

// NewAccountTable builds the canonical account list from the given account
// references. Duplicate keys are merged into the position of their first
// occurrence with flags combined, then accounts are ordered according to
// the given policy. The stable sort keeps the input order within every
// group. keys is not modified.
func NewAccountTable(keys []AccountMeta, order AccountOrdering) *AccountTable {
	var (
		metas = make([]AccountMeta, 0, len(keys))
		seen  = make(map[util.Key]int, len(keys))
	)
	for _, k := range keys {
		if i, ok := seen[k.PublicKey]; ok {
			metas[i].IsSigner = metas[i].IsSigner || k.IsSigner
			metas[i].IsWritable = metas[i].IsWritable || k.IsWritable
			continue
		}
		seen[k.PublicKey] = len(metas)
		metas = append(metas, k)
	}
	slices.SortStableFunc(metas, func(a, b AccountMeta) int {
		return cmp.Compare(order.rank(a), order.rank(b))
	})
	return &AccountTable{metas: metas}
}

// Len returns the number of accounts in the table.
func (t *AccountTable) Len() int {
	return len(t.metas)
}

// At returns the account at the given position.
func (t *AccountTable) At(i int) AccountMeta {
	return t.metas[i]
}

// Metas returns a copy of the canonical account list.
func (t *AccountTable) Metas() []AccountMeta {
	return slices.Clone(t.metas)
}

// Keys returns the keys of the canonical account list.
func (t *AccountTable) Keys() []util.Key {
	keys := make([]util.Key, len(t.metas))
	for i := range t.metas {
		keys[i] = t.metas[i].PublicKey
	}
	return keys
}

// IndexOf returns the position of the given key in the table.
func (t *AccountTable) IndexOf(key util.Key) (int, error) {
	for i := range t.metas {
		if t.metas[i].PublicKey.Equals(key) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownAccount, key)
}

// Header derives the message header from the table contents.
func (t *AccountTable) Header() (Header, error) {
	return NewHeader(t.metas)
}
