package jwtauth

import (
	"context"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"

	"github.com/riskibarqy/cricket-league/internal/domain/user"
	idgen "github.com/riskibarqy/cricket-league/internal/platform/id"
	"github.com/riskibarqy/cricket-league/internal/usecase"
)

// DefaultTTL is the lifetime of an access token when none is configured.
const DefaultTTL = 15 * time.Minute

// Manager issues and verifies HS256 access tokens whose subject is the
// decimal user id.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	ids    idgen.Generator
	now    func() time.Time
}

func NewManager(secret, issuer string, ttl time.Duration, ids idgen.Generator) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, crerr.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if ids == nil {
		ids = idgen.NewTimeOrdered()
	}

	return &Manager{
		secret: []byte(secret),
		issuer: strings.TrimSpace(issuer),
		ttl:    ttl,
		ids:    ids,
		now:    time.Now,
	}, nil
}

func (m *Manager) IssueAccessToken(_ context.Context, userID int64) (string, error) {
	if userID <= 0 {
		return "", crerr.Newf("invalid user id %d", userID)
	}

	tokenID, err := m.ids.NewID()
	if err != nil {
		return "", crerr.Wrap(err, "generate token id")
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    m.issuer,
		ID:        tokenID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", crerr.Wrap(err, "sign access token")
	}
	return signed, nil
}

func (m *Manager) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, crerr.Wrap(usecase.ErrUnauthorized, "token is required")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.NewParser(opts...).ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return user.Principal{}, crerr.Wrapf(usecase.ErrUnauthorized, "invalid access token: %v", err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return user.Principal{}, crerr.Wrapf(usecase.ErrUnauthorized, "invalid token subject %q", claims.Subject)
	}

	return user.Principal{
		UserID:  userID,
		TokenID: claims.ID,
	}, nil
}
