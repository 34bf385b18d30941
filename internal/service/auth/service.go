package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/facilops/facil-backend-go/internal/domain/auth"
	"github.com/facilops/facil-backend-go/internal/domain/user"
	"github.com/facilops/facil-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	userRepo user.Repository
	jwtSvc   jwt.Service
}

func NewAuthService(userRepo user.Repository, jwtSvc jwt.Service) auth.Service {
	return &authServiceImpl{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
	}
}

// Login implements auth.Service.
func (a *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	usr, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(usr)
}

// Refresh implements auth.Service. The presented refresh token is revoked and
// a fresh pair issued, so a token can only be rotated once.
func (a *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	if a.jwtSvc.IsTokenRevoked(refreshToken) {
		return auth.LoginResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := a.jwtSvc.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	usr, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	a.jwtSvc.RevokeToken(refreshToken)

	return a.issueTokens(usr)
}

// Logout implements auth.Service.
func (a *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}
	a.jwtSvc.RevokeToken(refreshToken)
	return nil
}

func (a *authServiceImpl) issueTokens(usr user.User) (auth.LoginResponse, error) {
	accessToken, accessExp, err := a.jwtSvc.GenerateAccessToken(usr.ID, usr.Email, usr.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExp, err := a.jwtSvc.GenerateRefreshToken(usr.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshTokenExpiresIn: refreshExp,
	}, nil
}
