package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/blogforge/apiserver/internal/mq"
	"github.com/blogforge/apiserver/internal/password"
	"github.com/blogforge/apiserver/internal/storage"
	"github.com/blogforge/apiserver/internal/store"
	"github.com/blogforge/apiserver/internal/token"
	"github.com/blogforge/apiserver/types"
	"github.com/google/uuid"
)

const (
	generatedPasswordLength = 25
	defaultUserRole         = "user"
	profileImageContentType = "image/jpeg"
)

// ErrInvalidCredentials is returned by Login for both an unknown email
// and a wrong password. Collapsing the two is deliberate; callers must
// not be able to tell which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dataURIPrefix strips an optional data-URI header from uploaded images.
var dataURIPrefix = regexp.MustCompile(`^data:image/[a-z]+;base64,`)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Update(ctx context.Context, user types.User) (types.User, error)
}

// Credentials is the one-time registration result. The password is the
// only plaintext the caller will ever see; only its hash is stored.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountService orchestrates registration, login, and profile updates.
type AccountService struct {
	repo   UserRepository
	tokens *token.Service
	assets *storage.Storage
	events *mq.MQ
}

// NewAccountService constructs an AccountService. The events broker is
// optional; pass nil to disable event publishing.
func NewAccountService(repo UserRepository, tokens *token.Service, assets *storage.Storage, events *mq.MQ) *AccountService {
	return &AccountService{
		repo:   repo,
		tokens: tokens,
		assets: assets,
		events: events,
	}
}

// Register creates an account with a freshly generated password and
// returns that password exactly once. A duplicate email surfaces as
// store.ErrConflict.
func (s *AccountService) Register(ctx context.Context, name, email string) (Credentials, error) {
	plaintext, err := password.Generate(generatedPasswordLength)
	if err != nil {
		return Credentials{}, fmt.Errorf("generate password: %w", err)
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return Credentials{}, fmt.Errorf("hash password: %w", err)
	}

	user := types.User{
		Name:         name,
		Email:        email,
		Slug:         types.EmailSlug(email),
		Roles:        []string{defaultUserRole},
		PasswordHash: hash,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return Credentials{}, err
	}

	s.publishRegistered(ctx, created)

	return Credentials{Email: created.Email, Password: plaintext}, nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, plaintext string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(user.PasswordHash, plaintext) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user)
}

// UpdateProfileImage decodes the uploaded image, stores it, and points
// the authenticated user's profile at the stored asset's public URL.
// The email comes from validated token claims, never the request body.
func (s *AccountService) UpdateProfileImage(ctx context.Context, email, base64Image string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	data, err := base64.StdEncoding.DecodeString(dataURIPrefix.ReplaceAllString(base64Image, ""))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	key := uuid.New().String() + ".jpg"
	url, err := s.assets.Put(ctx, key, bytes.NewReader(data), int64(len(data)), profileImageContentType)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	user.Image = url
	if _, err := s.repo.Update(ctx, user); err != nil {
		return "", err
	}
	return url, nil
}

// publishRegistered emits the registration event if a broker is wired.
// Failures are swallowed; event delivery never blocks account creation.
func (s *AccountService) publishRegistered(ctx context.Context, user types.User) {
	if s.events == nil {
		return
	}
	payload, err := json.Marshal(mq.AccountRegistered{
		Email: user.Email,
		Name:  user.Name,
		Slug:  user.Slug,
	})
	if err != nil {
		return
	}
	_, _ = s.events.Publish(ctx, mq.ChannelAccountRegistered, payload, nil)
}
