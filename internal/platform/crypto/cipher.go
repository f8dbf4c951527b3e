package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// sealedPrefix marks a value written by SealString. Values without it are
// read back as plaintext, so rows written before a key was configured stay
// readable.
const sealedPrefix = "enc:v1:"

var ErrCiphertext = errors.New("malformed ciphertext")

// FieldCipher encrypts individual column values with AES-256-GCM. The zero
// key disables encryption and values pass through unchanged.
type FieldCipher struct {
	aead cipher.AEAD
}

// New builds a cipher from a 32 byte key given as hex, base64 or raw text.
// An empty key yields a pass-through cipher.
func New(key string) (*FieldCipher, error) {
	if key == "" {
		return &FieldCipher{}, nil
	}
	decoded := decodeKey(key)
	if len(decoded) != 32 {
		return nil, fmt.Errorf("DATA_ENCRYPTION_KEY must be 32 bytes after decoding, got %d", len(decoded))
	}
	block, err := aes.NewCipher(decoded)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &FieldCipher{aead: aead}, nil
}

func (c *FieldCipher) Enabled() bool {
	return c != nil && c.aead != nil
}

func (c *FieldCipher) SealString(plain string) (string, error) {
	if plain == "" || !c.Enabled() {
		return plain, nil
	}
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plain), nil)
	return sealedPrefix + base64.RawStdEncoding.EncodeToString(sealed), nil
}

func (c *FieldCipher) OpenString(stored string) (string, error) {
	encoded, ok := strings.CutPrefix(stored, sealedPrefix)
	if !ok {
		return stored, nil
	}
	if !c.Enabled() {
		return "", errors.New("encrypted value but DATA_ENCRYPTION_KEY is not set")
	}
	raw, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil || len(raw) < c.aead.NonceSize() {
		return "", ErrCiphertext
	}
	nonce, data := raw[:c.aead.NonceSize()], raw[c.aead.NonceSize():]
	plain, err := c.aead.Open(nil, nonce, data, nil)
	if err != nil {
		return "", ErrCiphertext
	}
	return string(plain), nil
}

func decodeKey(raw string) []byte {
	if len(raw) == 64 {
		if decoded, err := hex.DecodeString(raw); err == nil {
			return decoded
		}
	}
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil {
		return decoded
	}
	if decoded, err := base64.RawStdEncoding.DecodeString(raw); err == nil {
		return decoded
	}
	return []byte(raw)
}
