package google

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/hoardspace/cmd/config"
	"github.com/muhammadheryan/hoardspace/model"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	oauthapi "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// IdentityProvider runs the authorization-code flow against Google.
type IdentityProvider interface {
	Configured() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*model.ExternalIdentity, error)
}

type provider struct {
	conf *oauth2.Config
}

func NewIdentityProvider(cfg *config.Config) IdentityProvider {
	return &provider{
		conf: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       []string{"openid", oauthapi.UserinfoEmailScope, oauthapi.UserinfoProfileScope},
			Endpoint:     googleoauth.Endpoint,
		},
	}
}

func (p *provider) Configured() bool {
	return p.conf.ClientID != ""
}

func (p *provider) AuthCodeURL(state string) string {
	return p.conf.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

func (p *provider) Exchange(ctx context.Context, code string) (*model.ExternalIdentity, error) {
	tok, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth exchange: %w", err)
	}

	svc, err := oauthapi.NewService(ctx, option.WithTokenSource(p.conf.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("oauth service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("userinfo: no email returned")
	}

	verified := info.VerifiedEmail != nil && *info.VerifiedEmail
	return &model.ExternalIdentity{
		Subject:       info.Id,
		Email:         info.Email,
		Name:          info.Name,
		Picture:       info.Picture,
		EmailVerified: verified,
	}, nil
}
