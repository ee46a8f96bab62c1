// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codeblocks

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-codeblocks/internal/config"
	"github.com/MKhiriev/go-codeblocks/internal/utils"
)

// Authenticator checks the credentials of a request. On success it returns
// the request to hand to the route handler, possibly with the caller
// identity added to its context (see [SubjectFromContext]).
type Authenticator interface {
	Authenticate(r *http.Request) (*http.Request, error)
}

// AuthenticatorFunc adapts a plain function to [Authenticator].
type AuthenticatorFunc func(r *http.Request) (*http.Request, error)

// Authenticate calls f(r).
func (f AuthenticatorFunc) Authenticate(r *http.Request) (*http.Request, error) {
	return f(r)
}

// securitySchemer is implemented by authenticators that can describe
// themselves in the OpenAPI document.
type securitySchemer interface {
	OpenAPISecurityScheme() map[string]any
}

// HeaderToken accepts requests whose Header carries exactly Token.
type HeaderToken struct {
	// Header defaults to "Authorization".
	Header string
	Token  string
}

func (a HeaderToken) header() string {
	if a.Header == "" {
		return config.DefaultAuthHeader
	}
	return a.Header
}

func (a HeaderToken) Authenticate(r *http.Request) (*http.Request, error) {
	value := r.Header.Get(a.header())
	if a.Token == "" || subtle.ConstantTimeCompare([]byte(value), []byte(a.Token)) != 1 {
		return nil, ErrUnauthorized
	}
	return r, nil
}

func (a HeaderToken) OpenAPISecurityScheme() map[string]any {
	return map[string]any{"type": "apiKey", "in": "header", "name": a.header()}
}

// BasicAuth accepts HTTP Basic credentials matching Username and the bcrypt
// PasswordHash. The user name becomes the request subject.
type BasicAuth struct {
	Username     string
	PasswordHash string
}

func (a BasicAuth) Authenticate(r *http.Request) (*http.Request, error) {
	username, password, ok := r.BasicAuth()
	if !ok || a.Username == "" {
		return nil, ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) != 1 {
		return nil, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return r.WithContext(utils.WithSubject(r.Context(), username)), nil
}

func (a BasicAuth) OpenAPISecurityScheme() map[string]any {
	return map[string]any{"type": "http", "scheme": "basic"}
}

// HashPassword returns the bcrypt hash to put in [BasicAuth.PasswordHash].
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// JWTBearer accepts "Authorization: Bearer <jwt>" headers carrying an HS256
// token signed with SignKey and issued by Issuer. The token subject becomes
// the request subject.
type JWTBearer struct {
	SignKey string
	// Issuer defaults to "codeblocks".
	Issuer string
}

func (a JWTBearer) issuer() string {
	if a.Issuer == "" {
		return config.DefaultTokenIssuer
	}
	return a.Issuer
}

func (a JWTBearer) Authenticate(r *http.Request) (*http.Request, error) {
	if a.SignKey == "" {
		return nil, ErrUnauthorized
	}

	raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	token, err := utils.ValidateAndParseJWTToken(raw, a.SignKey, a.issuer())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	subject, err := token.SubjectName()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return r.WithContext(utils.WithSubject(r.Context(), subject)), nil
}

// IssueToken signs a token for subject valid for ttl.
func (a JWTBearer) IssueToken(subject string, ttl time.Duration) (string, error) {
	token, err := utils.GenerateJWTToken(a.issuer(), subject, ttl, a.SignKey)
	if err != nil {
		return "", err
	}
	return token.SignedString, nil
}

func (a JWTBearer) OpenAPISecurityScheme() map[string]any {
	return map[string]any{"type": "http", "scheme": "bearer", "bearerFormat": "JWT"}
}

// SubjectFromContext returns the caller identity set by BasicAuth or
// JWTBearer.
func SubjectFromContext(ctx context.Context) (string, bool) {
	return utils.GetSubjectFromContext(ctx)
}

// AuthCodeBlock is the auth gate of an API. Gated verbs are answered with
// 401 {"message": "Unauthorized"} unless the authenticator accepts the
// request, in which case the handler runs exactly once.
type AuthCodeBlock struct {
	authenticator Authenticator
}

// NewAuthCodeBlock returns a gate checking requests with authenticator.
func NewAuthCodeBlock(authenticator Authenticator) *AuthCodeBlock {
	return &AuthCodeBlock{authenticator: authenticator}
}

// Authenticate runs the authenticator. Every failure is reported as
// [ErrUnauthorized].
func (a *AuthCodeBlock) Authenticate(r *http.Request) (*http.Request, error) {
	if a == nil || a.authenticator == nil {
		return nil, ErrUnauthorized
	}

	authenticated, err := a.authenticator.Authenticate(r)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if authenticated == nil {
		return nil, ErrUnauthorized
	}

	return authenticated, nil
}

// TokenRequired wraps h so it only runs for authenticated requests. It is
// the decorator form of the gate, for handlers registered with RequireAuth
// left empty or executed outside an API.
func (a *AuthCodeBlock) TokenRequired(h Handler) Handler {
	return HandlerFunc(func(r *http.Request, args Args) (any, error) {
		authenticated, err := a.Authenticate(r)
		if err != nil {
			return nil, NewHTTPError(http.StatusUnauthorized, "")
		}
		return h.Exec(authenticated, args)
	})
}

func (a *AuthCodeBlock) securityScheme() map[string]any {
	if s, ok := a.authenticator.(securitySchemer); ok {
		return s.OpenAPISecurityScheme()
	}
	return map[string]any{"type": "apiKey", "in": "header", "name": config.DefaultAuthHeader}
}

// AuthFromConfiguration builds the gate from the auth settings. A static
// token wins over a JWT sign key, which wins over basic auth. It returns
// nil when none is configured.
func AuthFromConfiguration(cfg *Configuration) *AuthCodeBlock {
	if cfg == nil {
		return nil
	}

	auth := cfg.cfg.Auth
	switch {
	case auth.Token != "":
		return NewAuthCodeBlock(HeaderToken{Header: auth.Header, Token: auth.Token})
	case auth.TokenSignKey != "":
		return NewAuthCodeBlock(JWTBearer{SignKey: auth.TokenSignKey, Issuer: auth.TokenIssuer})
	case auth.BasicUser != "":
		return NewAuthCodeBlock(BasicAuth{Username: auth.BasicUser, PasswordHash: auth.BasicPasswordHash})
	default:
		return nil
	}
}
