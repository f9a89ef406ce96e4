package message

import (
	"testing"

	"github.com/solwire/solwire/pkg/config"
	"github.com/solwire/solwire/pkg/core/transaction"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	m, err := ReadFile("../testdata/transfer.yml")
	require.NoError(t, err)
	require.Equal(t, 3, len(m.AccountKeys))
	require.Equal(t, 1, len(m.Instructions))
	require.Equal(t, []byte{2, 0, 0, 0, 0xe8, 3, 0, 0, 0, 0, 0, 0}, m.Instructions[0].Data)
	require.Equal(t, "SysvarC1ock11111111111111111111111111111111", m.RecentBlockhash.String())
	require.Equal(t, transaction.SignerFirst, m.Ordering)

	_, err = ReadFile("../testdata/bad_data.yml")
	require.Error(t, err)
	_, err = ReadFile("../testdata/bad_blockhash.yml")
	require.Error(t, err)
	_, err = ReadFile("../testdata/nonexistent.yml")
	require.Error(t, err)
}

func TestEncodeDecode(t *testing.T) {
	data := []byte{0, 1, 2, 0xfe, 0xff}
	for _, enc := range []string{config.EncodingBase64, config.EncodingHex, config.EncodingBase58} {
		s := encode(data, enc)
		res, err := decode(s, enc)
		require.NoError(t, err, enc)
		require.Equal(t, data, res, enc)
	}
	res, err := decode("0x0001", config.EncodingHex)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1}, res)
}

func TestNewView(t *testing.T) {
	m, err := ReadFile("../testdata/transfer.yml")
	require.NoError(t, err)
	m.Ordering = transaction.SignerWritable
	cm, err := m.Compile()
	require.NoError(t, err)

	v := newView(cm)
	require.Equal(t, cm.Header, v.Header)
	require.Equal(t, []transaction.AccountMeta{
		m.AccountKeys[2],
		m.AccountKeys[1],
		m.AccountKeys[0],
	}, v.AccountKeys)
	require.Equal(t, 1, len(v.Instructions))
	require.Equal(t, uint8(2), v.Instructions[0].ProgramIDIndex)
	require.Equal(t, m.AccountKeys[0].PublicKey, v.Instructions[0].ProgramID)
	require.Equal(t, []int{0, 1}, v.Instructions[0].Accounts)
	require.Equal(t, m.Instructions[0].Keys, v.Instructions[0].Keys)
	require.Equal(t, "02000000e803000000000000", v.Instructions[0].Data)
}
