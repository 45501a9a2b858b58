package impl

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"recruit/config"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/domain/service"
	"recruit/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		OTP:           &config.OTPConfig{Length: 6, TTL: 10 * time.Minute},
		PasswordReset: &config.PasswordResetConfig{TTL: time.Hour, FrontendBaseURL: "https://app.recruit.dev/"},
	}
}

// memoryStore backs every in-memory repository. Transactions snapshot and
// restore it.
type memoryStore struct {
	mu     sync.Mutex
	users  map[uuid.UUID]entity.User
	auths  map[uuid.UUID]entity.Authentication
	otps   map[string]entity.OTPRecord
	resets map[string]entity.PasswordReset
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:  map[uuid.UUID]entity.User{},
		auths:  map[uuid.UUID]entity.Authentication{},
		otps:   map[string]entity.OTPRecord{},
		resets: map[string]entity.PasswordReset{},
	}
}

func otpStoreKey(email string, role entity.Role) string {
	return string(role) + ":" + entity.NormalizeEmail(email)
}

type memUserRepo struct{ s *memoryStore }

func (r memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &u, nil
}

func (r memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == entity.NormalizeEmail(email) {
			return &u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == entity.NormalizeEmail(user.Email) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
	}
	user.ID = uuid.New()
	user.Email = entity.NormalizeEmail(user.Email)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user

	return nil
}

func (r memUserRepo) UpdateEmail(_ context.Context, id uuid.UUID, email string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email && u.ID != id {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
	}
	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Email = email
	r.s.users[id] = u

	return nil
}

func (r memUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Active = active
	r.s.users[id] = u

	return nil
}

func (r memUserRepo) List(_ context.Context, _ entity.UserFilter) ([]*entity.User, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, &u)
	}

	return users, int64(len(users)), nil
}

type memAuthRepo struct{ s *memoryStore }

func (r memAuthRepo) CreateAuthentication(_ context.Context, auth *entity.Authentication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.auths {
		if a.Provider == auth.Provider && a.ProviderUserID == auth.ProviderUserID {
			return domainerrors.ErrUserAlreadyExists
		}
	}
	auth.ID = uuid.New()
	r.s.auths[auth.ID] = *auth

	return nil
}

func (r memAuthRepo) FindAuthentication(_ context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.auths {
		if a.Provider == provider && a.ProviderUserID == providerUserID {
			return &a, nil
		}
	}

	return nil, repository.ErrAuthNotFound
}

func (r memAuthRepo) FindAuthenticationByUserIDAndProvider(_ context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.auths {
		if a.UserID == userID && a.Provider == provider {
			return &a, nil
		}
	}

	return nil, repository.ErrAuthNotFound
}

func (r memAuthRepo) update(userID uuid.UUID, provider entity.ProviderType, apply func(*entity.Authentication)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, a := range r.s.auths {
		if a.UserID == userID && a.Provider == provider {
			apply(&a)
			r.s.auths[id] = a

			return nil
		}
	}

	return repository.ErrAuthNotFound
}

func (r memAuthRepo) UpdatePasswordHash(_ context.Context, userID uuid.UUID, passwordHash string) error {
	return r.update(userID, entity.ProviderTypeLocal, func(a *entity.Authentication) { a.PasswordHash = passwordHash })
}

func (r memAuthRepo) UpdateProviderUserID(_ context.Context, userID uuid.UUID, provider entity.ProviderType, providerUserID string) error {
	return r.update(userID, provider, func(a *entity.Authentication) { a.ProviderUserID = providerUserID })
}

type memOTPRepo struct{ s *memoryStore }

func (r memOTPRepo) Save(_ context.Context, record *entity.OTPRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.otps[otpStoreKey(record.Email, record.Role)] = *record

	return nil
}

func (r memOTPRepo) FindValid(_ context.Context, email string, role entity.Role, now time.Time) (*entity.OTPRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.otps[otpStoreKey(email, role)]
	if !ok || rec.IsExpired(now) {
		return nil, repository.ErrOTPNotFound
	}

	return &rec, nil
}

func (r memOTPRepo) ConsumeIfMatch(_ context.Context, email string, role entity.Role, otpHash string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := otpStoreKey(email, role)
	rec, ok := r.s.otps[key]
	if !ok || rec.OTPHash != otpHash {
		return false, nil
	}
	delete(r.s.otps, key)

	return true, nil
}

func (r memOTPRepo) Delete(_ context.Context, email string, role entity.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.otps, otpStoreKey(email, role))

	return nil
}

func (r memOTPRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for k, rec := range r.s.otps {
		if rec.IsExpired(now) {
			delete(r.s.otps, k)
			n++
		}
	}

	return n, nil
}

type memResetRepo struct{ s *memoryStore }

func (r memResetRepo) Create(_ context.Context, reset *entity.PasswordReset) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reset.ID = uuid.New()
	r.s.resets[reset.TokenHash] = *reset

	return nil
}

func (r memResetRepo) FindByToken(_ context.Context, token string) (*entity.PasswordReset, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reset, ok := r.s.resets[util.HashToken(token)]
	if !ok {
		return nil, repository.ErrResetNotFound
	}

	return &reset, nil
}

func (r memResetRepo) ConsumeByToken(_ context.Context, token string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	hash := util.HashToken(token)
	if _, ok := r.s.resets[hash]; !ok {
		return false, nil
	}
	delete(r.s.resets, hash)

	return true, nil
}

func (r memResetRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for hash, reset := range r.s.resets {
		if reset.UserID == userID {
			delete(r.s.resets, hash)
		}
	}

	return nil
}

func (r memResetRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for hash, reset := range r.s.resets {
		if reset.IsExpired(now) {
			delete(r.s.resets, hash)
			n++
		}
	}

	return n, nil
}

type memRepoFactory struct{ s *memoryStore }

func (f memRepoFactory) NewUserRepository() repository.UserRepository { return memUserRepo(f) }
func (f memRepoFactory) NewAuthRepository() repository.AuthRepository { return memAuthRepo(f) }
func (f memRepoFactory) NewPasswordResetRepository() repository.PasswordResetRepository {
	return memResetRepo(f)
}

// memTxManager serializes transactions and restores the store when fn fails.
type memTxManager struct {
	s  *memoryStore
	mu sync.Mutex
}

func (tm *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.s.mu.Lock()
	users, auths, resets := maps.Clone(tm.s.users), maps.Clone(tm.s.auths), maps.Clone(tm.s.resets)
	tm.s.mu.Unlock()

	if err := fn(memRepoFactory{s: tm.s}); err != nil {
		tm.s.mu.Lock()
		tm.s.users, tm.s.auths, tm.s.resets = users, auths, resets
		tm.s.mu.Unlock()

		return err
	}

	return nil
}

// fakeHasher is a cheap, deterministic stand-in for bcrypt.
type fakeHasher struct {
	mu      sync.Mutex
	hashed  int
	compare int
}

func (h *fakeHasher) Hash(_ context.Context, secret string) (string, error) {
	h.mu.Lock()
	h.hashed++
	h.mu.Unlock()

	return "hashed:" + secret, nil
}

func (h *fakeHasher) Compare(_ context.Context, secret, hash string) bool {
	h.mu.Lock()
	h.compare++
	h.mu.Unlock()

	return hash != "" && hash == "hashed:"+secret
}

func (h *fakeHasher) comparisons() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.compare
}

func (h *fakeHasher) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must be at least 8 characters long")
	}

	return nil
}

// ctxHasher fails hashing like bcryptHasher does when the context is done,
// and fails the first failHashes calls outright.
type ctxHasher struct {
	*fakeHasher
	failHashes int
}

func (h *ctxHasher) Hash(ctx context.Context, secret string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	h.mu.Lock()
	failing := h.failHashes > 0
	if failing {
		h.failHashes--
	}
	h.mu.Unlock()
	if failing {
		return "", errors.New("semaphore acquire failed")
	}

	return h.fakeHasher.Hash(ctx, secret)
}

// fakeTokens issues opaque strings and remembers their claims.
type fakeTokens struct {
	mu     sync.Mutex
	issued map[string]service.Claims
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{issued: map[string]service.Claims{}}
}

func (f *fakeTokens) issue(subject service.Subject, tokenType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	token := tokenType + "." + uuid.NewString()
	f.issued[token] = service.Claims{UserID: subject.UserID, Role: subject.Role, Type: tokenType}

	return token, nil
}

func (f *fakeTokens) verify(token, tokenType string) (*service.Claims, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	claims, ok := f.issued[token]
	if !ok || claims.Type != tokenType {
		return nil, service.ErrInvalidSignature
	}

	return &claims, nil
}

func (f *fakeTokens) IssueAccessToken(subject service.Subject) (string, error) {
	return f.issue(subject, service.TokenTypeAccess)
}

func (f *fakeTokens) IssueRefreshToken(subject service.Subject) (string, error) {
	return f.issue(subject, service.TokenTypeRefresh)
}

func (f *fakeTokens) VerifyAccessToken(token string) (*service.Claims, error) {
	return f.verify(token, service.TokenTypeAccess)
}

func (f *fakeTokens) VerifyRefreshToken(token string) (*service.Claims, error) {
	return f.verify(token, service.TokenTypeRefresh)
}

// outbox records every mail it is handed, even when it then fails.
type outbox struct {
	mu   sync.Mutex
	sent []*service.Mail
	err  error
}

func (o *outbox) Send(_ context.Context, mail *service.Mail) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.sent = append(o.sent, mail)

	return o.err
}

func (o *outbox) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.sent)
}

func (o *outbox) last() *service.Mail {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.sent) == 0 {
		return nil
	}

	return o.sent[len(o.sent)-1]
}

type trackedEvents struct {
	mu     sync.Mutex
	events []entity.ActivityEvent
}

func (t *trackedEvents) Track(_ context.Context, event entity.ActivityEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.events = append(t.events, event)
}

func (t *trackedEvents) actions() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	actions := make([]string, 0, len(t.events))
	for _, e := range t.events {
		actions = append(actions, e.Action)
	}

	return actions
}

type fakeGoogle struct {
	users map[string]*service.OAuthUser
}

func (g *fakeGoogle) VerifyIDToken(_ context.Context, idToken string) (*service.OAuthUser, error) {
	u, ok := g.users[idToken]
	if !ok {
		return nil, errors.New("invalid id token")
	}

	return u, nil
}

func (g *fakeGoogle) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// clock is a settable time source.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = t
}

// authHarness wires authService to the in-memory fakes.
type authHarness struct {
	srv     *authService
	store   *memoryStore
	hasher  *fakeHasher
	tokens  *fakeTokens
	mail    *outbox
	tracker *trackedEvents
	google  *fakeGoogle
	clock   *clock
}

func newAuthHarness() *authHarness {
	store := newMemoryStore()
	h := &authHarness{
		store:   store,
		hasher:  &fakeHasher{},
		tokens:  newFakeTokens(),
		mail:    &outbox{},
		tracker: &trackedEvents{},
		google:  &fakeGoogle{users: map[string]*service.OAuthUser{}},
		clock:   &clock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
	}

	h.srv = newAuthService(AuthServiceParams{
		TxManager:         &memTxManager{s: store},
		UserRepo:          memUserRepo{s: store},
		AuthRepo:          memAuthRepo{s: store},
		OTPRepo:           memOTPRepo{s: store},
		PasswordResetRepo: memResetRepo{s: store},
		Hasher:            h.hasher,
		TokenService:      h.tokens,
		GoogleAuthService: h.google,
		MailDispatcher:    h.mail,
		ActivityTracker:   h.tracker,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	})
	h.srv.now = h.clock.Now

	return h
}

// lastOtp extracts the code from the most recent verification mail.
func (h *authHarness) lastOtp() string {
	mail := h.mail.last()
	if mail == nil {
		return ""
	}
	for _, field := range strings.Fields(mail.Body) {
		field = strings.TrimSuffix(field, ".")
		if len(field) == 6 && strings.Trim(field, "0123456789") == "" {
			return field
		}
	}

	return ""
}

// lastResetToken extracts the token from the most recent reset mail.
func (h *authHarness) lastResetToken() string {
	mail := h.mail.last()
	if mail == nil {
		return ""
	}
	_, after, ok := strings.Cut(mail.Body, "token=")
	if !ok {
		return ""
	}
	token, _, _ := strings.Cut(after, "\n")

	return token
}
