// Package blobaccess issues and verifies short-lived, read-only URLs for
// objects in the blob store.
package blobaccess

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/ecovoice-backend/internal/domain"
)

// MinSecretLen is the shortest HS256 key the issuer accepts.
const MinSecretLen = 32

const permRead = "r"

// Issuer signs read handles of the form
// {baseURL}/blobs/{container}/{key}?sig={token}.
type Issuer struct {
	secret  []byte
	issuer  string
	ttl     time.Duration
	baseURL string
	now     func() time.Time
}

// NewIssuer creates an Issuer. Configuration problems are reported when a
// handle is requested, not here, so a misconfigured issuer fails the request
// that needed it.
func NewIssuer(secret, issuer string, ttl time.Duration, publicBaseURL string) *Issuer {
	return &Issuer{
		secret:  []byte(secret),
		issuer:  issuer,
		ttl:     ttl,
		baseURL: publicBaseURL,
		now:     time.Now,
	}
}

// readClaims scopes a token to one object.
type readClaims struct {
	jwt.RegisteredClaims
	Container string `json:"ctr"`
	Key       string `json:"key"`
	Perm      string `json:"perm"`
}

// IssueReadHandle returns a URL granting read access to container/key until
// the configured TTL elapses. The object is not checked for existence.
func (i *Issuer) IssueReadHandle(container, key string) (string, error) {
	if len(i.secret) < MinSecretLen {
		return "", fmt.Errorf("issue read handle: signing secret shorter than %d bytes: %w", MinSecretLen, domain.ErrConfiguration)
	}
	if i.ttl <= 0 {
		return "", fmt.Errorf("issue read handle: non-positive ttl %s: %w", i.ttl, domain.ErrConfiguration)
	}

	token, err := i.sign(container, key)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(i.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("issue read handle: bad public base url %q: %w", i.baseURL, domain.ErrConfiguration)
	}
	u = u.JoinPath("blobs", container, key)
	u.RawQuery = url.Values{"sig": {token}}.Encode()

	return u.String(), nil
}

func (i *Issuer) sign(container, key string) (string, error) {
	now := i.now()
	claims := readClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Container: container,
		Key:       key,
		Perm:      permRead,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign read handle: %w", err)
	}
	return signed, nil
}

// VerifyReadHandle checks that token grants read access to exactly
// container/key at the current time. Failures wrap domain.ErrForbidden.
func (i *Issuer) VerifyReadHandle(token, container, key string) error {
	if token == "" {
		return fmt.Errorf("read handle: missing signature: %w", domain.ErrForbidden)
	}
	if len(i.secret) < MinSecretLen {
		return fmt.Errorf("read handle: %w", domain.ErrConfiguration)
	}

	var claims readClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithIssuer(i.issuer),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return fmt.Errorf("read handle expired: %w", domain.ErrForbidden)
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return fmt.Errorf("read handle not yet valid: %w", domain.ErrForbidden)
		default:
			return fmt.Errorf("read handle: %v: %w", err, domain.ErrForbidden)
		}
	}
	if !parsed.Valid {
		return fmt.Errorf("read handle: invalid token: %w", domain.ErrForbidden)
	}

	if claims.Perm != permRead || claims.Container != container || claims.Key != key {
		return fmt.Errorf("read handle: scoped to %s/%s: %w", claims.Container, claims.Key, domain.ErrForbidden)
	}

	return nil
}
