package watoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	privateKey, publicKey := GenerateKey()

	token, err := EncodeforHours("42", "Nguyễn Văn A", privateKey, 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	payload, err := Decode(publicKey, token)
	assert.NoError(t, err)
	assert.Equal(t, "42", payload.Id)
	assert.Equal(t, "Nguyễn Văn A", payload.Alias)
	assert.True(t, payload.Exp.After(payload.Iat))
}

func TestDecodeRejectsWrongKey(t *testing.T) {
	privateKey, _ := GenerateKey()
	_, otherPublic := GenerateKey()

	token, err := Encode("42", "admin", privateKey)
	assert.NoError(t, err)

	_, err = Decode(otherPublic, token)
	assert.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, publicKey := GenerateKey()

	_, err := Decode(publicKey, "not-a-token")
	assert.Error(t, err)
}

func TestEncodeRejectsBadKey(t *testing.T) {
	_, err := Encode("42", "admin", "deadbeef")
	assert.Error(t, err)
}
