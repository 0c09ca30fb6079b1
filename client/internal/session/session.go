// Package session holds the per-client authentication state.
package session

import (
	"crypto/md5" //nolint:gosec // the service expects an MD5 hex digest of the password
	"encoding/hex"
	"sync"
)

// Session is the token and tenant selector of one client. Reads return a
// snapshot; calls built from a snapshot are unaffected by later changes.
type Session struct {
	mu       sync.RWMutex
	token    string
	tenantID string
}

// Token returns the current access token, empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores the token obtained at sign-in.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear drops the token. The tenant selector is kept so a later sign-in
// targets the same organisation.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}

// ClearIf drops the token only if it is still token, so a sign-out does
// not discard a session established concurrently. It reports whether the
// token was cleared.
func (s *Session) ClearIf(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != token {
		return false
	}
	s.token = ""
	return true
}

// TenantID returns the multi-tenant selector, empty when unset.
func (s *Session) TenantID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tenantID
}

// SetTenant sets the multi-tenant selector used by the next sign-in.
func (s *Session) SetTenant(id string) {
	s.mu.Lock()
	s.tenantID = id
	s.mu.Unlock()
}

// PasswordDigest returns the lowercase hex MD5 of password, the form the
// sign-in endpoint accepts.
func PasswordDigest(password string) string {
	sum := md5.Sum([]byte(password)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
