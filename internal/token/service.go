package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hexvault/authd/internal/domain"
)

// TTL is the fixed session token lifetime. The ban-list entry written at
// logout uses the same constant so a revocation outlives every token it bans
// without growing the store unboundedly.
const TTL = 10 * time.Minute

const minSecretBytes = 32

var (
	// ErrTokenMalformed is returned for input that is not a JWT at all or
	// carries unusable claims.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrSignatureInvalid is returned when the signature does not verify.
	ErrSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenExpired is returned for a well-formed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the session token claim set: subject = email, issued-at, expiry.
type Claims struct {
	jwt.RegisteredClaims
}

// Email returns the authenticated identity the token asserts.
func (c *Claims) Email() domain.Email { return domain.Email(c.Subject) }

// Config configures a Service.
type Config struct {
	// Secret is the HS256 signing key. Must be at least 32 bytes.
	Secret []byte
	// TTL overrides the fixed token lifetime. Zero means the package default;
	// only tests should set this.
	TTL time.Duration
}

// Service signs and verifies session tokens. Safe for concurrent use.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService validates cfg and returns a Service.
func NewService(cfg Config) (*Service, error) {
	if len(cfg.Secret) < minSecretBytes {
		return nil, errors.New("token secret must be at least 32 bytes")
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = TTL
	}
	return &Service{secret: cfg.Secret, ttl: ttl}, nil
}

// Issue signs a token asserting email, issued now and expiring after the
// fixed TTL.
func (s *Service) Issue(email domain.Email) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate parses and verifies tokenStr and returns its claims. Failures are
// mapped onto the package sentinels; the zero-store purity contract means a
// banned token still validates here.
func (s *Service) Validate(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	claims := &Claims{}
	parsed, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
