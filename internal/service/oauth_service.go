package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/soukly/soukly/internal/cache"
	"github.com/soukly/soukly/internal/config"
	"github.com/soukly/soukly/internal/constants"
	"github.com/soukly/soukly/internal/models"
	"github.com/soukly/soukly/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// OAuthService handles third-party login. Google is the only provider
// wired up today.
type OAuthService struct {
	cfg         *config.Config
	userRepo    repository.UserRepository
	authService *UserAuthService
	googleConf  *oauth2.Config
	httpClient  *http.Client
}

// NewOAuthService creates an OAuth service.
func NewOAuthService(cfg *config.Config, userRepo repository.UserRepository, authService *UserAuthService) *OAuthService {
	s := &OAuthService{
		cfg:         cfg,
		userRepo:    userRepo,
		authService: authService,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
	if cfg.OAuth.Google.Enabled {
		s.googleConf = &oauth2.Config{
			ClientID:     cfg.OAuth.Google.ClientID,
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  cfg.OAuth.Google.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return s
}

type oauthStateRecord struct {
	CreatedAt int64 `json:"created_at"`
}

type googleUserinfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func oauthStateKey(state string) string {
	return fmt.Sprintf("oauth:state:%s", state)
}

// AuthURL issues a fresh state token and returns the provider consent URL.
func (s *OAuthService) AuthURL(ctx context.Context) (string, error) {
	if s.googleConf == nil {
		return "", ErrOAuthDisabled
	}
	state := uuid.NewString()
	ttl := time.Duration(s.cfg.OAuth.Google.StateTTL) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if err := cache.SetJSON(ctx, oauthStateKey(state), oauthStateRecord{CreatedAt: time.Now().Unix()}, ttl); err != nil {
		return "", err
	}
	return s.googleConf.AuthCodeURL(state), nil
}

// Exchange validates the callback state, trades the code for a profile
// and logs the matching account in, creating it on first login.
func (s *OAuthService) Exchange(ctx context.Context, state, code, locale string) (*models.User, string, time.Time, error) {
	if s.googleConf == nil {
		return nil, "", time.Time{}, ErrOAuthDisabled
	}
	if err := s.consumeState(ctx, state); err != nil {
		return nil, "", time.Time{}, err
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, "", time.Time{}, ErrOAuthExchangeFailed
	}
	info, err := s.fetchUserinfo(ctx, token)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user, err := s.resolveUser(info, locale)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if strings.ToLower(user.Status) != constants.UserStatusActive {
		return nil, "", time.Time{}, ErrUserDisabled
	}

	sessionToken, expiresAt, err := s.authService.GenerateUserJWT(user, 0)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetUserAuthState(ctx, cache.BuildUserAuthState(user))

	return user, sessionToken, expiresAt, nil
}

func (s *OAuthService) consumeState(ctx context.Context, state string) error {
	state = strings.TrimSpace(state)
	if state == "" {
		return ErrOAuthStateInvalid
	}
	var record oauthStateRecord
	hit, err := cache.GetJSON(ctx, oauthStateKey(state), &record)
	if err != nil {
		return err
	}
	if !hit {
		return ErrOAuthStateInvalid
	}
	return cache.Del(ctx, oauthStateKey(state))
}

func (s *OAuthService) fetchUserinfo(ctx context.Context, token *oauth2.Token) (*googleUserinfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserinfoURL, nil)
	if err != nil {
		return nil, err
	}
	token.SetAuthHeader(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, ErrOAuthExchangeFailed
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ErrOAuthExchangeFailed
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	var info googleUserinfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	if info.ID == "" {
		return nil, ErrOAuthExchangeFailed
	}
	return &info, nil
}

func (s *OAuthService) resolveUser(info *googleUserinfo, locale string) (*models.User, error) {
	provider := constants.AuthProviderGoogle
	user, err := s.userRepo.GetByOAuth(provider, info.ID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	// Link by verified email when the address already has an account.
	if info.Email != "" {
		user, err = s.userRepo.GetByEmail(strings.ToLower(info.Email))
		if err != nil {
			return nil, err
		}
		if user != nil {
			user.OAuthProvider = &provider
			user.OAuthSubject = &info.ID
			user.UpdatedAt = time.Now()
			if err := s.userRepo.Update(user); err != nil {
				return nil, err
			}
			return user, nil
		}
	}

	now := time.Now()
	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = info.Email
	}
	lang := strings.TrimSpace(locale)
	if lang == "" {
		lang = constants.LangFR
	}
	user = &models.User{
		DisplayName:   name,
		Locale:        lang,
		Status:        constants.UserStatusActive,
		OAuthProvider: &provider,
		OAuthSubject:  &info.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if info.Email != "" {
		email := strings.ToLower(info.Email)
		user.Email = &email
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
