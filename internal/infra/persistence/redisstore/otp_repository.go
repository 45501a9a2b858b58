package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"recruit/internal/domain/entity"
	"recruit/internal/domain/repository"
	"recruit/internal/errors"

	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// consumeScript deletes the key only while it still holds the expected hash.
var consumeScript = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
	return 0
end
local record = cjson.decode(raw)
if record['otp_hash'] ~= ARGV[1] then
	return 0
end
return redis.call('DEL', KEYS[1])
`)

type otpPayload struct {
	OTPHash   string    `json:"otp_hash"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type otpRepository struct {
	client redis.Cmdable
	now    func() time.Time
}

// NewOTPRepository stores OTP records as JSON values with a TTL matching
// their expiry.
func NewOTPRepository(client redis.Cmdable) repository.OTPRepository {
	return &otpRepository{client: client, now: time.Now}
}

func otpKey(email string, role entity.Role) string {
	return otpKeyPrefix + string(role) + ":" + entity.NormalizeEmail(email)
}

// Save overwrites any record for the same key. The key outlives ExpiresAt by a
// second so FindValid, not Redis, decides the boundary.
func (repo *otpRepository) Save(ctx context.Context, record *entity.OTPRecord) error {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = repo.now()
	}

	payload, err := json.Marshal(otpPayload{
		OTPHash:   record.OTPHash,
		ExpiresAt: record.ExpiresAt,
		CreatedAt: createdAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode otp")
	}

	ttl := record.ExpiresAt.Sub(repo.now()) + time.Second
	if ttl <= 0 {
		return errors.WithStack(repo.client.Del(ctx, otpKey(record.Email, record.Role)).Err())
	}

	if err := repo.client.Set(ctx, otpKey(record.Email, record.Role), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save otp")
	}

	return nil
}

func (repo *otpRepository) FindValid(ctx context.Context, email string, role entity.Role, now time.Time) (*entity.OTPRecord, error) {
	raw, err := repo.client.Get(ctx, otpKey(email, role)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, errors.Wrap(err, "failed to load otp")
	}

	var payload otpPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode otp")
	}

	record := &entity.OTPRecord{
		Email:     entity.NormalizeEmail(email),
		Role:      role,
		OTPHash:   payload.OTPHash,
		ExpiresAt: payload.ExpiresAt,
		CreatedAt: payload.CreatedAt,
	}
	if record.IsExpired(now) {
		return nil, repository.ErrOTPNotFound
	}

	return record, nil
}

func (repo *otpRepository) ConsumeIfMatch(ctx context.Context, email string, role entity.Role, otpHash string) (bool, error) {
	deleted, err := consumeScript.Run(ctx, repo.client, []string{otpKey(email, role)}, otpHash).Int64()
	if err != nil {
		return false, errors.Wrap(err, "failed to consume otp")
	}

	return deleted == 1, nil
}

func (repo *otpRepository) Delete(ctx context.Context, email string, role entity.Role) error {
	if err := repo.client.Del(ctx, otpKey(email, role)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete otp")
	}

	return nil
}

// DeleteExpired is a no-op: Redis evicts keys on TTL.
func (repo *otpRepository) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}
