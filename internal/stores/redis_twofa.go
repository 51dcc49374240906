package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hexvault/authd/internal/domain"
)

// Namespaced key prefix for challenge records, keyed by email.
const twoFACodeKeyPrefix = "two_fa_code:"

type twoFARecord struct {
	LoginAttemptID string `json:"loginAttemptId"`
	Code           string `json:"code"`
}

// RedisTwoFACodeStore keeps 2FA challenges in Redis under a 10-minute key
// expiry. SET gives last-writer-wins semantics, so concurrent logins for the
// same identity race harmlessly: the most recent challenge is the one that
// survives.
type RedisTwoFACodeStore struct {
	rdb redis.UniversalClient
}

// NewRedisTwoFACodeStore returns a store backed by rdb.
func NewRedisTwoFACodeStore(rdb redis.UniversalClient) *RedisTwoFACodeStore {
	return &RedisTwoFACodeStore{rdb: rdb}
}

func twoFAKey(email domain.Email) string {
	return twoFACodeKeyPrefix + email.String()
}

// Add stores the challenge for email, overwriting any prior record and
// restarting the 10-minute expiry.
func (s *RedisTwoFACodeStore) Add(ctx context.Context, email domain.Email, challenge domain.Challenge) error {
	record := twoFARecord{
		LoginAttemptID: challenge.AttemptID.String(),
		Code:           challenge.Code.String(),
	}
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: encode 2fa record: %v", domain.ErrUnexpected, err)
	}
	if err := s.rdb.Set(ctx, twoFAKey(email), encoded, ChallengeTTL).Err(); err != nil {
		return fmt.Errorf("%w: store 2fa record: %v", domain.ErrUnexpected, err)
	}
	return nil
}

// Get returns the stored challenge or ErrChallengeNotFound once the key has
// expired or was never written.
func (s *RedisTwoFACodeStore) Get(ctx context.Context, email domain.Email) (domain.Challenge, error) {
	data, err := s.rdb.Get(ctx, twoFAKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Challenge{}, domain.ErrChallengeNotFound
		}
		return domain.Challenge{}, fmt.Errorf("%w: fetch 2fa record: %v", domain.ErrUnexpected, err)
	}

	var record twoFARecord
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.Challenge{}, fmt.Errorf("%w: decode 2fa record: %v", domain.ErrUnexpected, err)
	}

	attemptID, err := domain.ParseLoginAttemptID(record.LoginAttemptID)
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("%w: stored attempt id corrupt", domain.ErrUnexpected)
	}
	code, err := domain.ParseTwoFACode(record.Code)
	if err != nil {
		return domain.Challenge{}, fmt.Errorf("%w: stored code corrupt", domain.ErrUnexpected)
	}

	return domain.Challenge{AttemptID: attemptID, Code: code}, nil
}

// Remove deletes the record for email. DEL on a missing key is a no-op.
func (s *RedisTwoFACodeStore) Remove(ctx context.Context, email domain.Email) error {
	if err := s.rdb.Del(ctx, twoFAKey(email)).Err(); err != nil {
		return fmt.Errorf("%w: remove 2fa record: %v", domain.ErrUnexpected, err)
	}
	return nil
}

var _ domain.TwoFACodeStore = (*RedisTwoFACodeStore)(nil)
