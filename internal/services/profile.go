package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
	"github.com/vibegame/pixey-backend/internal/spl"
)

var (
	// ErrUserNotFound is returned when the wallet has no account.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when the requested username collides
	// with another account.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidUsername is returned for empty or over-long usernames.
	ErrInvalidUsername = errors.New("invalid username")
)

// MaxUsernameLength bounds the display name.
const MaxUsernameLength = 32

// ProfileWriter creates users and updates their profile fields.
type ProfileWriter interface {
	Create(ctx context.Context, walletAddress, username string, freePixels int64) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, walletAddress, username string, profilePicture *string) (*models.UserDB, error)
}

// ProfileService serves user lookups and profile edits.
type ProfileService struct {
	reader UserReader
	writer ProfileWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader UserReader, writer ProfileWriter) *ProfileService {
	return &ProfileService{reader: reader, writer: writer}
}

// GetUser returns the user for the wallet.
func (svc *ProfileService) GetUser(ctx context.Context, walletAddress string) (*models.UserDB, error) {
	if !spl.IsValidWalletAddress(walletAddress) {
		return nil, ErrInvalidWalletAddress
	}

	user, err := svc.reader.GetByWallet(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetOrCreateUser returns the user, creating the account with the
// starting grant and a default username on first sight.
func (svc *ProfileService) GetOrCreateUser(ctx context.Context, walletAddress string) (*models.UserDB, bool, error) {
	if !spl.IsValidWalletAddress(walletAddress) {
		return nil, false, ErrInvalidWalletAddress
	}

	user, err := svc.reader.GetByWallet(ctx, walletAddress)
	if err != nil {
		return nil, false, err
	}
	if user != nil {
		return user, false, nil
	}

	username := "User_" + walletAddress[:6]
	user, err = svc.writer.Create(ctx, walletAddress, username, models.FreePixelsPerUser)
	if err != nil {
		logger.Log.Errorw("failed to create user", "wallet", walletAddress, "err", err)
		return nil, false, err
	}
	if user == nil {
		// Lost a concurrent create; the row exists now.
		user, err = svc.reader.GetByWallet(ctx, walletAddress)
		if err != nil {
			return nil, false, err
		}
		return user, false, nil
	}
	return user, true, nil
}

// UpdateProfile sets the username and optional profile picture.
func (svc *ProfileService) UpdateProfile(ctx context.Context, walletAddress, username string, profilePicture *string) (*models.UserDB, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(username) > MaxUsernameLength {
		return nil, ErrInvalidUsername
	}

	user, err := svc.writer.UpdateProfile(ctx, walletAddress, username, profilePicture)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
