package mtg

import (
	"crypto/ed25519"
	"crypto/rand"
	"io"
	"testing"

	"github.com/bmizerany/assert"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newUUID() uuid.UUID {
	id, _ := uuid.NewV4()
	return id
}

func TestScan(t *testing.T) {
	var (
		typ   int8       = 1
		uid              = newUUID()
		str              = "123"
		data  RawMessage = make([]byte, 100)
	)

	_, _ = io.ReadFull(rand.Reader, data)

	body, err := Encode(typ, uid, str, string(data))
	require.Nil(t, err)

	var (
		dtyp  int8
		duid  uuid.UUID
		dstr  string
		ddata RawMessage
	)

	remain, err := Scan(body, &dtyp)
	require.Nil(t, err)
	assert.Equal(t, dtyp, typ)

	_, err = Scan(remain, &duid, &dstr, &ddata)
	require.Nil(t, err)

	assert.Equal(t, uid.String(), duid.String())
	assert.Equal(t, str, dstr)
	assert.Equal(t, data, ddata)
}

func TestScanDecimal(t *testing.T) {
	amount := decimal.RequireFromString("12.34567891")

	body, err := Encode(amount, int64(42))
	require.Nil(t, err)

	var (
		damount decimal.Decimal
		dnum    int64
	)

	remain, err := Scan(body, &damount, &dnum)
	require.Nil(t, err)
	require.Len(t, remain, 0)

	assert.Equal(t, true, amount.Equal(damount))
	assert.Equal(t, int64(42), dnum)
}

func TestPackVerify(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.Nil(t, err)

	body, err := Encode(newUUID(), "content")
	require.Nil(t, err)

	sig, err := Sign(body, priv)
	require.Nil(t, err)

	packed, err := Pack(body, sig)
	require.Nil(t, err)

	dbody, dsig, err := Unpack(packed)
	require.Nil(t, err)

	assert.Equal(t, body, dbody)
	assert.Equal(t, true, Verify(dbody, dsig, pub))
}
