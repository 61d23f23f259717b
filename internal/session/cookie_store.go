package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

const (
	keySize   = 32
	nonceSize = 24
)

// Sealer encrypts and authenticates small cookie payloads
type Sealer struct {
	key [keySize]byte
}

// NewSealer derives a sealing key for purpose from secret
func NewSealer(secret, purpose string) (*Sealer, error) {
	if len(secret) < 16 {
		return nil, fmt.Errorf("session secret must be at least 16 characters")
	}
	s := &Sealer{}
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("campusconnect/"+purpose))
	if _, err := io.ReadFull(kdf, s.key[:]); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return s, nil
}

// Seal returns the URL-safe sealed form of plaintext
func (s *Sealer) Seal(plaintext []byte) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], plaintext, &nonce, &s.key)
	return base64.RawURLEncoding.EncodeToString(box), nil
}

// Open reverses Seal. Any tampering yields ErrInvalidSession.
func (s *Sealer) Open(sealed string) ([]byte, error) {
	box, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil || len(box) < nonceSize+secretbox.Overhead {
		return nil, apperrors.ErrInvalidSession
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &s.key)
	if !ok {
		return nil, apperrors.ErrInvalidSession
	}
	return plain, nil
}

// CookieOptions configures the session cookie
type CookieOptions struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// CookieStore keeps the token in a sealed cookie of one request
type CookieStore struct {
	w      http.ResponseWriter
	r      *http.Request
	sealer *Sealer
	opts   CookieOptions
}

// NewCookieStore binds a store to one request/response pair
func NewCookieStore(w http.ResponseWriter, r *http.Request, sealer *Sealer, opts CookieOptions) *CookieStore {
	return &CookieStore{w: w, r: r, sealer: sealer, opts: opts}
}

// Load returns the token from the request cookie. Missing, tampered and
// unreadable cookies all read as no token.
func (c *CookieStore) Load() (string, error) {
	cookie, err := c.r.Cookie(c.opts.Name)
	if err != nil {
		return "", nil
	}
	plain, err := c.sealer.Open(cookie.Value)
	if err != nil {
		return "", nil
	}
	return string(plain), nil
}

// Save sets the sealed cookie on the response
func (c *CookieStore) Save(token string) error {
	value, err := c.sealer.Seal([]byte(token))
	if err != nil {
		return err
	}
	http.SetCookie(c.w, c.cookie(value, int(c.opts.MaxAge.Seconds())))
	return nil
}

// Clear expires the cookie
func (c *CookieStore) Clear() error {
	http.SetCookie(c.w, c.cookie("", -1))
	return nil
}

func (c *CookieStore) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     c.opts.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
