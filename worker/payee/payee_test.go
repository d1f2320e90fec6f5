package payee

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeMemo(t *testing.T) {
	w := &Payee{}

	raw := []byte("hello memo")

	assert.Equal(t, raw, w.decodeMemo(base64.StdEncoding.EncodeToString(raw)))
	assert.Equal(t, raw, w.decodeMemo(base64.URLEncoding.EncodeToString(raw)))
	assert.Equal(t, []byte("not base64!"), w.decodeMemo("not base64!"))
}
