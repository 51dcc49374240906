package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"go.uber.org/zap"

	"github.com/hexvault/authd/internal/domain"
	"github.com/hexvault/authd/internal/token"
)

const (
	twoFASubject = "Your verification code"
)

// Service composes the stores, the token service, and the notification port
// into the authentication protocol. Safe for concurrent use; the stores carry
// their own exclusion.
type Service struct {
	users  domain.UserStore
	banned domain.BannedTokenStore
	twoFA  domain.TwoFACodeStore
	tokens *token.Service
	mailer domain.EmailClient
	log    *zap.Logger
}

// NewService wires a Service. All dependencies are required.
func NewService(
	users domain.UserStore,
	banned domain.BannedTokenStore,
	twoFA domain.TwoFACodeStore,
	tokens *token.Service,
	mailer domain.EmailClient,
	log *zap.Logger,
) *Service {
	return &Service{
		users:  users,
		banned: banned,
		twoFA:  twoFA,
		tokens: tokens,
		mailer: mailer,
		log:    log,
	}
}

// LoginResult is the outcome of a successful Login call. Exactly one of the
// two shapes is populated: a session token, or a pending challenge.
type LoginResult struct {
	Token         string
	TwoFARequired bool
	AttemptID     domain.LoginAttemptID
}

// Signup validates the input and persists a new identity.
func (s *Service) Signup(ctx context.Context, rawEmail, rawPassword string, requires2FA bool) error {
	email, err := domain.ParseEmail(rawEmail)
	if err != nil {
		return err
	}
	pw, err := domain.ParsePassword(rawPassword)
	if err != nil {
		return err
	}

	if err := s.users.Add(ctx, email, pw, requires2FA); err != nil {
		return err
	}

	s.log.Info("user created",
		zap.String("email", email.String()),
		zap.Bool("requires_2fa", requires2FA),
	)
	return nil
}

// Login validates credentials and either issues a session token or, for
// identities requiring 2FA, writes a fresh challenge and sends the code.
//
// The challenge write overwrites any outstanding challenge for the identity,
// so a repeated login invalidates the earlier attempt. If the notification
// send fails after the write, Login reports failure while the stored
// challenge stays retrievable until its TTL; the user can retry and receive
// a new code.
func (s *Service) Login(ctx context.Context, rawEmail, rawPassword string) (LoginResult, error) {
	email, err := domain.ParseEmail(rawEmail)
	if err != nil {
		return LoginResult{}, err
	}
	pw, err := domain.ParsePassword(rawPassword)
	if err != nil {
		return LoginResult{}, err
	}

	if err := s.users.Validate(ctx, email, pw); err != nil {
		return LoginResult{}, err
	}
	user, err := s.users.Get(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}

	if !user.Requires2FA {
		tok, err := s.tokens.Issue(email)
		if err != nil {
			return LoginResult{}, fmt.Errorf("%w: issue token: %v", domain.ErrUnexpected, err)
		}
		return LoginResult{Token: tok}, nil
	}

	attemptID := domain.NewLoginAttemptID()
	code, err := domain.NewTwoFACode()
	if err != nil {
		return LoginResult{}, err
	}

	challenge := domain.Challenge{AttemptID: attemptID, Code: code}
	if err := s.twoFA.Add(ctx, email, challenge); err != nil {
		return LoginResult{}, err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	if err := s.mailer.Send(ctx, email, twoFASubject, body); err != nil {
		s.log.Warn("2fa notification failed; challenge remains until TTL",
			zap.String("email", email.String()),
			zap.Error(err),
		)
		return LoginResult{}, fmt.Errorf("%w: send 2fa code: %v", domain.ErrUnexpected, err)
	}

	return LoginResult{TwoFARequired: true, AttemptID: attemptID}, nil
}

// Verify2FA checks the outstanding challenge for the identity and, when both
// the attempt id and the code match, consumes it and issues a session token.
// A mismatch leaves the challenge untouched.
func (s *Service) Verify2FA(ctx context.Context, rawEmail, rawAttemptID, rawCode string) (string, error) {
	email, err := domain.ParseEmail(rawEmail)
	if err != nil {
		return "", err
	}
	attemptID, err := domain.ParseLoginAttemptID(rawAttemptID)
	if err != nil {
		return "", err
	}
	code, err := domain.ParseTwoFACode(rawCode)
	if err != nil {
		return "", err
	}

	stored, err := s.twoFA.Get(ctx, email)
	if err != nil {
		return "", err
	}

	idMatch := subtle.ConstantTimeCompare([]byte(stored.AttemptID), []byte(attemptID))
	codeMatch := subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code))
	if idMatch&codeMatch != 1 {
		return "", domain.ErrChallengeMismatch
	}

	// Consume before issuing so the challenge is single-use even if token
	// signing fails afterwards.
	if err := s.twoFA.Remove(ctx, email); err != nil {
		return "", err
	}

	tok, err := s.tokens.Issue(email)
	if err != nil {
		return "", fmt.Errorf("%w: issue token: %v", domain.ErrUnexpected, err)
	}
	return tok, nil
}

// Logout validates the presented token and bans it for the remainder of its
// lifetime. Banning is idempotent, so racing logouts are harmless.
func (s *Service) Logout(ctx context.Context, tok string) error {
	if tok == "" {
		return domain.ErrMissingToken
	}
	if _, err := s.tokens.Validate(tok); err != nil {
		return err
	}
	return s.banned.Add(ctx, tok)
}

// VerifyToken reports the identity a token asserts, rejecting tokens that are
// malformed, expired, or banned.
func (s *Service) VerifyToken(ctx context.Context, tok string) (domain.Email, error) {
	claims, err := s.tokens.Validate(tok)
	if err != nil {
		return "", err
	}

	banned, err := s.banned.Contains(ctx, tok)
	if err != nil {
		return "", err
	}
	if banned {
		return "", domain.ErrTokenRevoked
	}
	return claims.Email(), nil
}
