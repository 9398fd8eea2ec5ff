package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/suggestbox/suggestbox/internal/modules/model"
	"github.com/suggestbox/suggestbox/internal/modules/repo"
	"github.com/suggestbox/suggestbox/internal/pkg/permission"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TokenService interface {
	// Authenticate resolves a key to its token. Unknown and empty keys fail with ErrInvalidKey.
	Authenticate(ctx context.Context, key string) (*model.Token, error)
	// Issue creates a token with level perm under the caller's project.
	Issue(ctx context.Context, caller *model.Token, perm permission.Permission) (*model.Token, error)
}

type tokenService struct {
	r     repo.TokenRepo
	cache TokenCache
	log   *zap.Logger
}

func NewTokenService(r repo.TokenRepo, cache TokenCache, log *zap.Logger) TokenService {
	if cache == nil {
		cache = NopTokenCache{}
	}
	return &tokenService{r: r, cache: cache, log: log}
}

func (s *tokenService) Authenticate(ctx context.Context, key string) (*model.Token, error) {
	if key == "" {
		return nil, invalidKey()
	}

	if t, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("token cache get failed", zap.Error(err))
	} else if t != nil {
		return t, nil
	}

	t, err := s.r.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidKey()
		}
		return nil, fmt.Errorf("get token: %w", err)
	}

	if err := s.cache.Set(ctx, t); err != nil {
		s.log.Warn("token cache set failed", zap.Error(err))
	}
	return t, nil
}

func (s *tokenService) Issue(ctx context.Context, caller *model.Token, perm permission.Permission) (*model.Token, error) {
	if !permission.Has(caller.Permission, permission.ViewTokens) {
		return nil, forbidden(msgAdminRequired)
	}
	if !perm.Storable() {
		return nil, validation(fmt.Errorf("Unknown permission %s", perm))
	}

	t := &model.Token{ProjectID: caller.ProjectID, Permission: perm}
	if err := s.r.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}
	return t, nil
}
