package service

import (
	"context"

	"eduguide_backend/internal/config"
	"eduguide_backend/internal/model"
)

// IdentityProvider 提供当前请求的用户身份；接入真实认证时替换实现即可
type IdentityProvider interface {
	Current(ctx context.Context) (*model.User, error)
}

// StaticIdentityProvider 始终返回配置中的模拟用户
type StaticIdentityProvider struct {
	user model.User
}

func NewStaticIdentityProvider(cfg config.IdentityConfig) *StaticIdentityProvider {
	return &StaticIdentityProvider{user: model.User{
		ID:       cfg.UserID,
		Username: cfg.Username,
		Email:    cfg.Email,
	}}
}

func (p *StaticIdentityProvider) Current(ctx context.Context) (*model.User, error) {
	u := p.user
	return &u, nil
}
