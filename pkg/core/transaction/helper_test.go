package transaction

import (
	"github.com/solwire/solwire/pkg/util"
)

// testKey returns a distinct key for each n.
func testKey(n int) util.Key {
	var k util.Key
	k[0] = byte(n)
	k[1] = byte(n >> 8)
	k[31] = 0xaa
	return k
}

func signer(n int, writable bool) AccountMeta {
	return NewAccountMeta(testKey(n), true, writable)
}

func nonSigner(n int, writable bool) AccountMeta {
	return NewAccountMeta(testKey(n), false, writable)
}
