package transaction

import (
	"fmt"
)

// AccountOrdering is a policy used to order the canonical account table.
type AccountOrdering byte

const (
	// SignerFirst puts all signers before all non-signers keeping the
	// relative order of accounts within both groups. It's the default.
	SignerFirst AccountOrdering = 0
	// SignerWritable orders accounts in four groups: signed writable,
	// signed readonly, unsigned writable and unsigned readonly, the relative
	// order within each group is preserved. This is the order validators
	// assume when deriving account permissions from the message header.
	SignerWritable AccountOrdering = 1
)

var orderingNames = map[AccountOrdering]string{
	SignerFirst:    "SignerFirst",
	SignerWritable: "SignerWritable",
}

// String implements the Stringer interface.
func (o AccountOrdering) String() string {
	if s, ok := orderingNames[o]; ok {
		return s
	}
	return fmt.Sprintf("AccountOrdering(%d)", byte(o))
}

// AccountOrderingFromString converts a string to AccountOrdering
// (case-sensitive). An empty string means SignerFirst.
func AccountOrderingFromString(s string) (AccountOrdering, error) {
	if s == "" {
		return SignerFirst, nil
	}
	for o, name := range orderingNames {
		if name == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown account ordering: %s", s)
}

// MarshalYAML implements the YAML Marshaler interface.
func (o AccountOrdering) MarshalYAML() (any, error) {
	return o.String(), nil
}

// UnmarshalYAML implements the YAML Unmarshaler interface.
func (o *AccountOrdering) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	err := unmarshal(&s)
	if err != nil {
		return err
	}
	*o, err = AccountOrderingFromString(s)
	return err
}

// rank returns the group the account belongs to, groups are emitted
// in ascending rank order.
func (o AccountOrdering) rank(a AccountMeta) int {
	var r int
	if !a.IsSigner {
		r = 2
	}
	if o == SignerWritable && !a.IsWritable {
		r++
	}
	return r
}
