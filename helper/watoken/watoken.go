package watoken

import (
	"time"

	"aidanwoods.dev/go-paseto"
)

// Payload is what gets signed into a login token: the account id and a
// display alias.
type Payload struct {
	Id    string    `json:"id"`
	Alias string    `json:"alias"`
	Iat   time.Time `json:"iat"`
	Nbf   time.Time `json:"nbf"`
	Exp   time.Time `json:"exp"`
}

func Encode(id string, alias string, privateKeyHex string) (string, error) {
	return EncodeforHours(id, alias, privateKeyHex, 2)
}

func EncodeforHours(id string, alias string, privateKeyHex string, hours float64) (string, error) {
	key, err := paseto.NewV4AsymmetricSecretKeyFromHex(privateKeyHex)
	if err != nil {
		return "", err
	}

	token := paseto.NewToken()
	now := time.Now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(time.Duration(hours * float64(time.Hour))))
	token.SetString("id", id)
	token.SetString("alias", alias)

	return token.V4Sign(key, nil), nil
}

func Decode(publicKeyHex string, tokenstring string) (Payload, error) {
	var payload Payload

	pubKey, err := paseto.NewV4AsymmetricPublicKeyFromHex(publicKeyHex)
	if err != nil {
		return payload, err
	}

	parser := paseto.NewParser()
	token, err := parser.ParseV4Public(pubKey, tokenstring, nil)
	if err != nil {
		return payload, err
	}

	payload.Id, _ = token.GetString("id")
	payload.Alias, _ = token.GetString("alias")
	payload.Iat, _ = token.GetIssuedAt()
	payload.Nbf, _ = token.GetNotBefore()
	payload.Exp, _ = token.GetExpiration()

	return payload, nil
}

// GenerateKey returns a fresh hex-encoded ed25519 key pair for the
// PRIVATEKEY/PUBLICKEY environment variables.
func GenerateKey() (privateKey string, publicKey string) {
	secretKey := paseto.NewV4AsymmetricSecretKey()
	return secretKey.ExportHex(), secretKey.Public().ExportHex()
}
