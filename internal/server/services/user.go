// Package services contains the server-side business logic. This file
// implements UserService, which handles registration and login.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/finweave/insight-server/internal/common"
	"github.com/finweave/insight-server/internal/dbx"
	"github.com/finweave/insight-server/internal/server/auth"
	"github.com/finweave/insight-server/internal/server/config"
	"github.com/finweave/insight-server/internal/server/models"
	"github.com/finweave/insight-server/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest carries the fields of a registration attempt.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Contact  string
}

// UserService provides authentication-related operations:
// - Register: create a user together with their default profile
// - Login: verify credentials and mint an access token
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BCryptCost,
	}
}

// Register validates the request, hashes the password, and creates the user
// record together with its default profile inside one transaction. A user
// without a profile (or the reverse) is never left behind on partial failure.
//
// Duplicate emails yield common.ErrEmailTaken both from the pre-check and,
// when two registrations race past it, from the unique index on users.email.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, common.ErrMissingFields
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, common.ErrEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Contact:      req.Contact,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		_, err = s.repomanager.Profiles(tx).Upsert(ctx, models.DefaultProfile(created))
		return err
	}); err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the email/password pair and, on success, returns a signed
// access token together with the user record. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}
