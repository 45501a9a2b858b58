//go:build integration

package postgres

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/infra/persistence/migration"
	"recruit/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func startDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("recruit_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrator, err := migration.NewMigrator(connStr)
	require.NoError(t, err)
	require.NoError(t, migrator.Up())
	require.NoError(t, migrator.Close())

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db
}

func createLocalUser(t *testing.T, ctx context.Context, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Role: entity.RoleCandidate, Provider: entity.ProviderTypeLocal, Active: true}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))
	require.NoError(t, NewAuthRepository(db).CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeLocal,
		ProviderUserID: user.Email,
		PasswordHash:   "$2a$10$hash",
	}))

	return user
}

func TestRepositories(t *testing.T) {
	db := startDatabase(t)
	ctx := context.Background()

	t.Run("user email is unique case-insensitively", func(t *testing.T) {
		createLocalUser(t, ctx, db, "dup@example.com")

		err := NewUserRepository(db).Create(ctx, &entity.User{
			Email: "DUP@example.com", Role: entity.RoleRecruiter, Provider: entity.ProviderTypeLocal, Active: true,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("find and list users", func(t *testing.T) {
		user := createLocalUser(t, ctx, db, "list@example.com")
		repo := NewUserRepository(db)

		found, err := repo.FindByEmail(ctx, " List@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)

		_, err = repo.FindByEmail(ctx, "missing@example.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)

		require.NoError(t, repo.SetActive(ctx, user.ID, false))
		inactive := false
		users, total, err := repo.List(ctx, entity.UserFilter{Active: &inactive})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, users, 1)
		assert.Equal(t, user.ID, users[0].ID)
	})

	t.Run("password hash update targets local credential", func(t *testing.T) {
		user := createLocalUser(t, ctx, db, "pw@example.com")
		authRepo := NewAuthRepository(db)

		require.NoError(t, authRepo.UpdatePasswordHash(ctx, user.ID, "$2a$10$new"))
		auth, err := authRepo.FindAuthenticationByUserIDAndProvider(ctx, user.ID, entity.ProviderTypeLocal)
		require.NoError(t, err)
		assert.Equal(t, "$2a$10$new", auth.PasswordHash)

		_, err = authRepo.FindAuthenticationByUserIDAndProvider(ctx, user.ID, entity.ProviderTypeGoogle)
		assert.ErrorIs(t, err, repository.ErrAuthNotFound)
	})

	t.Run("reset token is consumed once", func(t *testing.T) {
		user := createLocalUser(t, ctx, db, "reset@example.com")
		repo := NewPasswordResetRepository(db)
		token := "abcdefghijklmnopqrstuvwxyz0123456789"

		require.NoError(t, repo.Create(ctx, &entity.PasswordReset{
			UserID:    user.ID,
			TokenHash: util.HashToken(token),
			ExpiresAt: time.Now().Add(time.Hour),
		}))

		found, err := repo.FindByToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.UserID)

		var wins atomic.Int32
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := repo.ConsumeByToken(ctx, token)
				assert.NoError(t, err)
				if ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.EqualValues(t, 1, wins.Load())

		_, err = repo.FindByToken(ctx, token)
		assert.ErrorIs(t, err, repository.ErrResetNotFound)
	})

	t.Run("otp save supersedes and consume is conditional", func(t *testing.T) {
		repo := NewOTPRepository(db)
		now := time.Now()

		require.NoError(t, repo.Save(ctx, &entity.OTPRecord{
			Email: "otp@example.com", Role: entity.RoleCandidate, OTPHash: "first", ExpiresAt: now.Add(10 * time.Minute),
		}))
		require.NoError(t, repo.Save(ctx, &entity.OTPRecord{
			Email: "otp@example.com", Role: entity.RoleCandidate, OTPHash: "second", ExpiresAt: now.Add(10 * time.Minute),
		}))

		record, err := repo.FindValid(ctx, "otp@example.com", entity.RoleCandidate, now)
		require.NoError(t, err)
		assert.Equal(t, "second", record.OTPHash)

		_, err = repo.FindValid(ctx, "otp@example.com", entity.RoleRecruiter, now)
		assert.ErrorIs(t, err, repository.ErrOTPNotFound)

		ok, err := repo.ConsumeIfMatch(ctx, "otp@example.com", entity.RoleCandidate, "first")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.ConsumeIfMatch(ctx, "otp@example.com", entity.RoleCandidate, "second")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.ConsumeIfMatch(ctx, "otp@example.com", entity.RoleCandidate, "second")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expired otps are purged", func(t *testing.T) {
		repo := NewOTPRepository(db)
		now := time.Now()

		require.NoError(t, repo.Save(ctx, &entity.OTPRecord{
			Email: "old@example.com", Role: entity.RoleCandidate, OTPHash: "h", ExpiresAt: now.Add(-time.Minute),
		}))

		_, err := repo.FindValid(ctx, "old@example.com", entity.RoleCandidate, now)
		assert.ErrorIs(t, err, repository.ErrOTPNotFound)

		removed, err := repo.DeleteExpired(ctx, now)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, removed, int64(1))
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		txManager := NewTransactionManager(db)
		email := "rollback@example.com"

		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.NewUserRepository().Create(ctx, &entity.User{
				Email: email, Role: entity.RoleCandidate, Provider: entity.ProviderTypeLocal, Active: true,
			}); err != nil {
				return err
			}

			return domainerrors.ErrInternalError
		})
		require.ErrorIs(t, err, domainerrors.ErrInternalError)

		_, err = NewUserRepository(db).FindByEmail(ctx, email)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("activity log accepts anonymous events", func(t *testing.T) {
		event := &entity.ActivityEvent{
			Action:   entity.ActionPasswordResetSent,
			Metadata: map[string]any{"email": "a***@example.com"},
		}
		require.NoError(t, NewActivityRepository(db).Create(ctx, event))
		assert.NotEqual(t, [16]byte{}, [16]byte(event.ID))
	})
}
