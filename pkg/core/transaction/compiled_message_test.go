package transaction

import (
	"testing"

	"github.com/solwire/solwire/pkg/internal/testserdes"
	"github.com/solwire/solwire/pkg/io"
	"github.com/solwire/solwire/pkg/util"
	"github.com/stretchr/testify/require"
)

func testCompiledMessage() *CompiledMessage {
	m := &CompiledMessage{
		Header:      Header{NumRequiredSignatures: 1, NumReadonlyUnsignedAccounts: 1},
		AccountKeys: []util.Key{testKey(1), testKey(2), testKey(3)},
		Instructions: []CompiledInstruction{
			{ProgramIDIndex: 2, Accounts: []uint8{0, 1}, Data: []byte{1, 2, 3}},
			{ProgramIDIndex: 2},
		},
	}
	m.RecentBlockhash[0] = 0x42
	return m
}

func TestCompiledMessageEncodeDecode(t *testing.T) {
	m := testCompiledMessage()
	testserdes.EncodeDecodeBinary(t, m, new(CompiledMessage))

	data, err := m.Bytes()
	require.NoError(t, err)
	require.Equal(t, m.Size(), len(data))

	res, err := NewCompiledMessageFromBytes(data)
	require.NoError(t, err)
	require.Equal(t, m, res)
}

func TestCompiledMessagePermissions(t *testing.T) {
	m := testCompiledMessage()
	require.Equal(t, []AccountMeta{
		signer(1, true),
		nonSigner(2, true),
		nonSigner(3, false),
	}, m.AccountMetas())
	require.Equal(t, Instruction{
		ProgramID: testKey(3),
		Keys:      []AccountMeta{signer(1, true), nonSigner(2, true)},
		Data:      []byte{1, 2, 3},
	}, m.Instruction(0))
}

func TestCompiledMessageDecodeBad(t *testing.T) {
	good, err := testCompiledMessage().Bytes()
	require.NoError(t, err)

	t.Run("truncated", func(t *testing.T) {
		for i := 0; i < len(good); i++ {
			_, err := NewCompiledMessageFromBytes(good[:i])
			require.Error(t, err, "length %d", i)
		}
	})
	t.Run("trailing", func(t *testing.T) {
		_, err := NewCompiledMessageFromBytes(append(good, 0))
		require.ErrorIs(t, err, io.ErrTrailingData)
	})
	t.Run("huge key count", func(t *testing.T) {
		_, err := NewCompiledMessageFromBytes([]byte{0, 0, 0, 0xff, 0xff, 0x03})
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	check := func(t *testing.T, f func(m *CompiledMessage)) {
		m := testCompiledMessage()
		f(m)
		data, err := m.Bytes()
		require.NoError(t, err)
		_, err = NewCompiledMessageFromBytes(data)
		require.Error(t, err)
	}
	t.Run("signatures", func(t *testing.T) {
		check(t, func(m *CompiledMessage) { m.Header.NumRequiredSignatures = 4 })
	})
	t.Run("readonly signed", func(t *testing.T) {
		check(t, func(m *CompiledMessage) { m.Header.NumReadonlySignedAccounts = 2 })
	})
	t.Run("readonly unsigned", func(t *testing.T) {
		check(t, func(m *CompiledMessage) { m.Header.NumReadonlyUnsignedAccounts = 3 })
	})
	t.Run("program index", func(t *testing.T) {
		check(t, func(m *CompiledMessage) { m.Instructions[1].ProgramIDIndex = 3 })
	})
	t.Run("account index", func(t *testing.T) {
		check(t, func(m *CompiledMessage) { m.Instructions[0].Accounts[1] = 200 })
	})
}
