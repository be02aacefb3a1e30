package vault

import (
	"context"
	"sync"
	"time"

	"github.com/UdayAnalyst/visual-news/internal/common"
	"github.com/UdayAnalyst/visual-news/internal/cryptox"
	"github.com/UdayAnalyst/visual-news/internal/logging"
)

const (
	// maxLoginAttempts consecutive failures arm the lockout.
	maxLoginAttempts = 5
	// lockoutDuration is how long authentication is refused once locked,
	// regardless of password correctness.
	lockoutDuration = 30 * time.Minute

	// userIDBytes of entropy go into each account identifier.
	userIDBytes = 16
)

// Vault owns the encrypted user store. Construct exactly one per store file
// and pass it to callers explicitly; all state lives in the instance.
//
// Every mutating operation runs a full load-modify-save cycle under one
// mutex. The mutex prevents interleaved partial writes from concurrent
// callers in this process; at the business level the outcome is still
// last-writer-wins, matching the single-threaded behavior the web layer
// was built against.
type Vault struct {
	store *Store
	log   logging.Logger

	mu  sync.Mutex
	now func() time.Time // test seam
}

// New loads (or creates on first use) the store encryption key at keyPath
// and returns a Vault over the store file at storePath.
func New(storePath, keyPath string, log logging.Logger) (*Vault, error) {
	key, err := cryptox.LoadOrCreateKey(keyPath)
	if err != nil {
		return nil, err
	}
	return &Vault{
		store: NewStore(storePath, key, log.With("component", "store")),
		log:   log,
		now:   time.Now,
	}, nil
}

// CreateAccount validates and registers a new user, returning the generated
// account identifier.
//
// Checks run in a fixed order — name, phone, password, preferences — and
// the first failure is returned as its own reason. Name and phone are
// sanitized before the duplicate check and before storage. Persistence
// failures come back as the generic ErrSaveFailed; internals are never
// exposed to the caller.
func (v *Vault) CreateAccount(ctx context.Context, name, phone, password string, preferences []string) (string, error) {
	if !ValidateName(name) {
		return "", ErrInvalidName
	}
	if !ValidatePhone(phone) {
		return "", ErrInvalidPhone
	}
	if !ValidatePassword(password) {
		return "", ErrWeakPassword
	}
	for _, t := range preferences {
		if !ValidTopic(t) {
			return "", ErrInvalidTopic
		}
	}

	name = Sanitize(name)
	phone = Sanitize(phone)

	v.mu.Lock()
	defer v.mu.Unlock()

	users := v.store.Load(ctx)
	for _, rec := range users {
		if rec.Phone == phone {
			return "", ErrPhoneRegistered
		}
	}

	id, err := common.MakeURLSafeToken(userIDBytes)
	if err != nil {
		v.log.Error(ctx, "generating account id", "error", err)
		return "", ErrSaveFailed
	}

	hash, err := HashPassword(password)
	if err != nil {
		v.log.Error(ctx, "hashing password", "error", err)
		return "", ErrSaveFailed
	}

	users[id] = &UserRecord{
		Name:         name,
		Phone:        phone,
		PasswordHash: hash,
		Preferences:  append([]string{}, preferences...),
		CreatedAt:    v.now().UTC(),
		LikedTopics:  map[string]int{},
		PassedTopics: map[string]int{},
	}

	if err := v.store.Save(users); err != nil {
		v.log.Error(ctx, "saving user store", "error", err)
		return "", ErrSaveFailed
	}

	v.log.Info(ctx, "account created", "user_id", id)
	return id, nil
}

// Authenticate checks phone and password and returns the account identifier
// and the stored record on success.
//
// An unknown phone and a wrong password produce the identical
// ErrInvalidCredentials. A locked account refuses authentication outright —
// the password is not even checked — until the lockout window passes. The
// fifth consecutive failure locks the account for thirty minutes; success
// clears the failure counter and the lock and stamps last_login.
//
// The returned record includes the password hash; the caller layer is
// trusted to drop it before any external exposure.
func (v *Vault) Authenticate(ctx context.Context, phone, password string) (string, *UserRecord, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	users := v.store.Load(ctx)

	var id string
	var rec *UserRecord
	for uid, r := range users {
		if r.Phone == phone {
			id, rec = uid, r
			break
		}
	}
	if rec == nil {
		return "", nil, ErrInvalidCredentials
	}

	now := v.now()
	if rec.LockedUntil != nil && now.Before(*rec.LockedUntil) {
		return "", nil, ErrAccountLocked
	}

	if !CheckPassword(password, rec.PasswordHash) {
		rec.LoginAttempts++
		if rec.LoginAttempts >= maxLoginAttempts {
			until := now.Add(lockoutDuration).UTC()
			rec.LockedUntil = &until
			v.log.Warn(ctx, "account locked after repeated failures",
				"user_id", id, "locked_until", until)
		}
		// The failure is reported either way; a save error here only loses
		// the attempt counter, it must not change the caller-visible outcome.
		if err := v.store.Save(users); err != nil {
			v.log.Error(ctx, "saving user store", "error", err)
		}
		return "", nil, ErrInvalidCredentials
	}

	rec.LoginAttempts = 0
	rec.LockedUntil = nil
	lastLogin := now.UTC()
	rec.LastLogin = &lastLogin

	if err := v.store.Save(users); err != nil {
		v.log.Error(ctx, "saving user store", "error", err)
	}

	return id, rec, nil
}

// UpdatePreferences replaces the user's topic preferences wholesale. Any
// topic outside the fixed vocabulary rejects the entire request; there is
// no partial application.
func (v *Vault) UpdatePreferences(ctx context.Context, userID string, preferences []string) error {
	for _, t := range preferences {
		if !ValidTopic(t) {
			return ErrInvalidTopic
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	users := v.store.Load(ctx)
	rec, ok := users[userID]
	if !ok {
		return ErrUserNotFound
	}

	rec.Preferences = append([]string{}, preferences...)

	if err := v.store.Save(users); err != nil {
		v.log.Error(ctx, "saving user store", "error", err)
		return ErrSaveFailed
	}

	return nil
}

// Users returns the full identifier-to-record mapping, or an empty mapping
// on any load failure. The result is a fresh snapshot; mutating it does not
// affect the store.
func (v *Vault) Users(ctx context.Context) map[string]*UserRecord {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.store.Load(ctx)
}
