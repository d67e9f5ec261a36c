package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCapsule is returned for malformed, tampered or expired capsules.
var ErrInvalidCapsule = errors.New("invalid reset capsule")

// Capsule signs short-lived {code hash, subject} pairs that live in a
// client-held cookie during a password reset. The server stays stateless:
// verification reconstructs the hash and compares it against the signed value,
// never trusting unsigned client fields.
type Capsule struct {
	SecretKey string
	Exp       time.Duration
}

// NewCapsule creates a capsule signer with the given secret and TTL.
func NewCapsule(secretKey string, expiration time.Duration) *Capsule {
	return &Capsule{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Issue signs a capsule binding the code hash to the subject username.
func (c *Capsule) Issue(codeHash, subject string) (string, error) {
	claims := jwt.MapClaims{
		"hash": codeHash,
		"sub":  subject,
		"exp":  time.Now().Add(c.Exp).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(c.SecretKey))
}

// Verify checks the capsule signature and expiry and returns the embedded
// code hash and subject username.
func (c *Capsule) Verify(capsule string) (codeHash, subject string, err error) {
	token, err := jwt.Parse(capsule, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(c.SecretKey), nil
	})
	if err != nil {
		return "", "", ErrInvalidCapsule
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", ErrInvalidCapsule
	}

	codeHash, ok = claims["hash"].(string)
	if !ok {
		return "", "", ErrInvalidCapsule
	}
	subject, ok = claims["sub"].(string)
	if !ok {
		return "", "", ErrInvalidCapsule
	}
	return codeHash, subject, nil
}
