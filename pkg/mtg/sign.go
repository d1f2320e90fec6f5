package mtg

import (
	"crypto/ed25519"
	"errors"
)

// Sign sign body with the ed25519 private key
func Sign(body []byte, key ed25519.PrivateKey) ([]byte, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, errors.New("mtg: invalid private key size")
	}

	return ed25519.Sign(key, body), nil
}

// Verify verify the signature of body
func Verify(body, sig []byte, key ed25519.PublicKey) bool {
	if len(key) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}

	return ed25519.Verify(key, body, sig)
}

// Pack pack body with its signature
func Pack(body, sig []byte) ([]byte, error) {
	if len(sig) != ed25519.SignatureSize {
		return nil, errors.New("mtg: invalid signature size")
	}

	return append(sig[:ed25519.SignatureSize:ed25519.SignatureSize], body...), nil
}

// Unpack split data into body and signature
func Unpack(data []byte) (body, sig []byte, err error) {
	if len(data) < ed25519.SignatureSize {
		return nil, nil, errors.New("mtg: data too short")
	}

	return data[ed25519.SignatureSize:], data[:ed25519.SignatureSize], nil
}
