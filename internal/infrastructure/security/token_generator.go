package security

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"commerce_2checkout/internal/usecase/interfaces"

	"gitee.com/golang-module/dongle"
	"github.com/google/uuid"
)

const randomTokenBytes = 32

var ErrEmptyTokenKey = errors.New("token key is empty")

// RandomTokenGenerator returns base64url-encoded bytes read from a CSPRNG.
type RandomTokenGenerator struct {
	source io.Reader
}

var _ interfaces.ITokenGenerator = (*RandomTokenGenerator)(nil)

func NewRandomTokenGenerator() *RandomTokenGenerator {
	return &RandomTokenGenerator{source: rand.Reader}
}

func (g *RandomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, randomTokenBytes)
	if _, err := io.ReadFull(g.source, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// KeyedTokenGenerator signs a fresh random UUID with a server-side key
// (HMAC-SHA256), so tokens stay unpredictable even to someone who can observe
// the nonces.
type KeyedTokenGenerator struct {
	key   string
	nonce func() (uuid.UUID, error)
}

var _ interfaces.ITokenGenerator = (*KeyedTokenGenerator)(nil)

func NewKeyedTokenGenerator(key string) (*KeyedTokenGenerator, error) {
	if key == "" {
		return nil, ErrEmptyTokenKey
	}
	return &KeyedTokenGenerator{key: key, nonce: uuid.NewRandom}, nil
}

func (g *KeyedTokenGenerator) Generate() (string, error) {
	nonce, err := g.nonce()
	if err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}
	sum := dongle.Encrypt.FromString(nonce.String()).ByHmacSha256(g.key)
	if sum.Error != nil {
		return "", fmt.Errorf("hmac: %w", sum.Error)
	}
	return sum.ToHexString(), nil
}

// NewTokenGenerator picks the keyed generator when a key is configured and the
// random one otherwise.
func NewTokenGenerator(key string) interfaces.ITokenGenerator {
	if key != "" {
		if g, err := NewKeyedTokenGenerator(key); err == nil {
			return g
		}
	}
	return NewRandomTokenGenerator()
}
