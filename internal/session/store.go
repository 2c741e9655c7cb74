// Package session holds the per-request trust context: the server-side
// record of an authenticated identity, keyed by an opaque token the client
// carries in a cookie.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	"github.com/mkravets/userhub/internal/domain/entity"
)

// Session is the trust context established at login/registration. Role is a
// snapshot taken at that moment; later role changes do not rewrite live
// sessions.
type Session struct {
	UserID string
	Role   entity.Role
}

// Store manages server-side session state. Get returns (nil, nil) for an
// unknown or expired id; after Destroy an id is unusable immediately.
type Store interface {
	Create(ctx context.Context, s Session) (string, error)
	Get(ctx context.Context, id string) (*Session, error)
	Destroy(ctx context.Context, id string) error
}

// NewID generates an opaque session identifier from 32 bytes of
// crypto/rand entropy.
func NewID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
