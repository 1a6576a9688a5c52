package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sukomal07/videohub/internal/apperr"
	"github.com/Sukomal07/videohub/internal/model"
	"github.com/Sukomal07/videohub/internal/repository"
	"github.com/Sukomal07/videohub/pkg/token"
)

// UserService owns accounts and sessions: registration, login, token
// refresh with rotation, profile and media updates, and account deletion.
type UserService struct {
	users   *repository.UserRepo
	assets  *AssetService
	access  *token.Manager
	refresh *token.Manager
	cache   *CacheService
}

func NewUserService(users *repository.UserRepo, assets *AssetService, access, refresh *token.Manager, cache *CacheService) *UserService {
	return &UserService{users: users, assets: assets, access: access, refresh: refresh, cache: cache}
}

// Register creates an account. The avatar is required, the cover image
// optional. Username and email collisions surface as conflicts from the
// unique constraints.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest, avatar, cover *FileUpload) (*model.User, error) {
	if avatar == nil {
		return nil, fmt.Errorf("avatar file is required: %w", apperr.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	avatarAsset, err := s.assets.Upload(ctx, "avatars", avatar.Reader, avatar.Size, avatar.ContentType)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:      req.Username,
		FullName:      req.FullName,
		Email:         req.Email,
		PasswordHash:  string(hash),
		AvatarAssetID: avatarAsset.ID,
		AvatarURL:     avatarAsset.URL,
	}

	if cover != nil {
		coverAsset, err := s.assets.Upload(ctx, "covers", cover.Reader, cover.Size, cover.ContentType)
		if err != nil {
			return nil, err
		}
		user.CoverAssetID = coverAsset.ID
		user.CoverURL = coverAsset.URL
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.discardAssets(ctx, avatarAsset.ID, user.CoverAssetID)
		return nil, err
	}
	return user, nil
}

// Login verifies credentials by username or email and opens a session.
// The refresh token is persisted so it can be rotated and revoked.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.users.FindByLogin(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrForbidden)
	}
	return s.openSession(ctx, user)
}

// Refresh trades a valid refresh token for a new token pair. The stored
// token must match the presented one, so a rotated-out token is rejected.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*model.AuthResponse, error) {
	claims, err := s.refresh.Verify(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", apperr.ErrForbidden)
	}
	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, fmt.Errorf("refresh token revoked: %w", apperr.ErrForbidden)
	}
	return s.openSession(ctx, user)
}

// Logout revokes the stored refresh token.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	return s.users.UpdateRefreshToken(ctx, userID, "")
}

// Lookup returns the caller's own account record.
func (s *UserService) Lookup(ctx context.Context, userID string) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}

// ChangePassword verifies the old password before storing the new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID string, req model.ChangePasswordRequest) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return fmt.Errorf("old password does not match: %w", apperr.ErrForbidden)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

// UpdateProfile stores the mutable profile fields and returns the fresh
// record.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req model.UpdateProfileRequest) (*model.User, error) {
	if err := s.users.UpdateProfile(ctx, userID, req.FullName, req.Email); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.invalidateChannel(ctx, user.Username)
	return user, nil
}

// UpdateAvatar replaces the avatar image. The previous object is removed
// from storage after the row update succeeds.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, file *FileUpload) (*model.User, error) {
	return s.replaceImage(ctx, userID, file, "avatars",
		func(u *model.User) string { return u.AvatarAssetID },
		s.users.UpdateAvatar)
}

// UpdateCover replaces the cover image.
func (s *UserService) UpdateCover(ctx context.Context, userID string, file *FileUpload) (*model.User, error) {
	return s.replaceImage(ctx, userID, file, "covers",
		func(u *model.User) string { return u.CoverAssetID },
		s.users.UpdateCover)
}

// DeleteAccount removes the account, everything it owns, and every trace
// of it in other users' playlists and watch histories. Stored media is
// cleaned up after the database work commits.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	owned, err := s.users.OwnedAssetIDs(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	s.discardAssets(ctx, user.AvatarAssetID, user.CoverAssetID)
	s.discardAssets(ctx, owned...)
	s.invalidateChannel(ctx, user.Username)
	return nil
}

func (s *UserService) openSession(ctx context.Context, user *model.User) (*model.AuthResponse, error) {
	accessToken, err := s.access.Mint(user.ID, user.Username, user.FullName, user.Email)
	if err != nil {
		return nil, fmt.Errorf("mint access token: %w", err)
	}
	refreshToken, err := s.refresh.Mint(user.ID, "", "", "")
	if err != nil {
		return nil, fmt.Errorf("mint refresh token: %w", err)
	}
	if err := s.users.UpdateRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}
	user.RefreshToken = refreshToken

	return &model.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *UserService) replaceImage(
	ctx context.Context,
	userID string,
	file *FileUpload,
	category string,
	oldAssetID func(*model.User) string,
	update func(ctx context.Context, userID, assetID, url string) error,
) (*model.User, error) {
	if file == nil {
		return nil, fmt.Errorf("%s file is required: %w", category, apperr.ErrInvalidInput)
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	asset, err := s.assets.Upload(ctx, category, file.Reader, file.Size, file.ContentType)
	if err != nil {
		return nil, err
	}
	if err := update(ctx, userID, asset.ID, asset.URL); err != nil {
		s.discardAssets(ctx, asset.ID)
		return nil, err
	}

	s.discardAssets(ctx, oldAssetID(user))
	s.invalidateChannel(ctx, user.Username)
	return s.users.FindByID(ctx, userID)
}

// discardAssets deletes stored objects best effort. A dangling object is
// preferable to failing a request that already committed.
func (s *UserService) discardAssets(ctx context.Context, assetIDs ...string) {
	for _, id := range assetIDs {
		if id == "" {
			continue
		}
		if err := s.assets.Delete(ctx, id); err != nil {
			log.Printf("asset: delete %s failed: %v", id, err)
		}
	}
}

func (s *UserService) invalidateChannel(ctx context.Context, username string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateChannel(ctx, username); err != nil {
		log.Printf("cache: channel invalidate error: %v", err)
	}
}
