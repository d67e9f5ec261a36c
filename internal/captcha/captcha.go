package captcha

import (
	"crypto/rand"
	"math/big"
)

const (
	digits       = "0123456789"
	alphanumeric = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz"
)

// Generator produces fixed-length random verification codes.
type Generator struct {
	length  int
	charset string
}

// New creates a code generator. When numeric is true codes contain digits
// only, otherwise an alphanumeric set with ambiguous characters removed.
func New(length int, numeric bool) *Generator {
	charset := alphanumeric
	if numeric {
		charset = digits
	}
	return &Generator{length: length, charset: charset}
}

// Generate returns a new random code.
func (g *Generator) Generate() (string, error) {
	max := big.NewInt(int64(len(g.charset)))

	code := make([]byte, g.length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = g.charset[n.Int64()]
	}
	return string(code), nil
}
