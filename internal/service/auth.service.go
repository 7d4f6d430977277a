package service

import (
	"fmt"
	"sync"
	"time"

	"portfoliowatch/internal/domain"
	"portfoliowatch/internal/logger"
	"portfoliowatch/internal/repository"

	"github.com/golang-jwt/jwt"
)

const sessionTokenTTL = 24 * time.Hour

// mockUserID matches the single test user the app has always shipped with
const (
	mockUserID   = "1"
	mockUserName = "Test User"
)

// AuthService is a stub by contract: any credentials succeed after a
// simulated delay. It exists so the surrounding app has a session and a
// profile to render, not to provide security.
type AuthService interface {
	SignIn(input SignInInput) (*Session, error)
	SignUp(input SignUpInput) (*Session, error)
	SignOut() error
	ForgotPassword(email string) error
	GetProfile() (*domain.Profile, error)
	UpdateProfile(update domain.ProfileUpdate) (*domain.Profile, error)
}

type authServiceHandler struct {
	UserRepository repository.UserRepository
	SigningSecret  string
	SimulatedDelay time.Duration

	mu      sync.Mutex
	profile *domain.Profile
}

func NewAuthService(userRepository repository.UserRepository, signingSecret string, simulatedDelay time.Duration) AuthService {
	return &authServiceHandler{
		UserRepository: userRepository,
		SigningSecret:  signingSecret,
		SimulatedDelay: simulatedDelay,
	}
}

type SignInInput struct {
	Email    string
	Password string
}

type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

type Session struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

func (h *authServiceHandler) SignIn(input SignInInput) (*Session, error) {
	time.Sleep(h.SimulatedDelay)

	user := domain.User{
		ID:    mockUserID,
		Name:  mockUserName,
		Email: input.Email,
	}
	return h.openSession(user)
}

func (h *authServiceHandler) SignUp(input SignUpInput) (*Session, error) {
	time.Sleep(h.SimulatedDelay)

	user := domain.User{
		ID:    mockUserID,
		Name:  input.Name,
		Email: input.Email,
	}
	return h.openSession(user)
}

func (h *authServiceHandler) openSession(user domain.User) (*Session, error) {
	if err := h.UserRepository.Set(user); err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.profile = defaultProfile(user)
	h.mu.Unlock()

	token, err := h.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token}, nil
}

func (h *authServiceHandler) issueToken(user domain.User) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(h.SigningSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (h *authServiceHandler) SignOut() error {
	h.mu.Lock()
	h.profile = nil
	h.mu.Unlock()

	return h.UserRepository.Clear()
}

func (h *authServiceHandler) ForgotPassword(email string) error {
	time.Sleep(h.SimulatedDelay)

	// no mail integration exists; the flow only pretends to send
	logger.Infow("password reset requested", "email", email)
	return nil
}

func (h *authServiceHandler) GetProfile() (*domain.Profile, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.profile != nil {
		return h.profile, nil
	}

	// a stored session survives a restart; rebuild the default profile from it
	user, err := h.UserRepository.Get()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("no active session")
	}
	h.profile = defaultProfile(*user)
	return h.profile, nil
}

func (h *authServiceHandler) UpdateProfile(update domain.ProfileUpdate) (*domain.Profile, error) {
	time.Sleep(h.SimulatedDelay)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.profile == nil {
		return nil, fmt.Errorf("no active session")
	}

	profile := *h.profile
	if update.Name != nil {
		profile.Name = *update.Name
	}
	if update.Phone != nil {
		profile.Phone = *update.Phone
	}
	if update.Occupation != nil {
		profile.Occupation = *update.Occupation
	}
	if update.TradingExperience != nil {
		profile.TradingExperience = *update.TradingExperience
	}
	if update.PreferredMarkets != nil {
		profile.PreferredMarkets = update.PreferredMarkets
	}
	if update.Notifications != nil {
		applyNotificationUpdate(&profile.Notifications, *update.Notifications)
	}
	profile.UpdatedAt = time.Now().UTC()

	if update.Name != nil {
		user, err := h.UserRepository.Get()
		if err != nil {
			return nil, err
		}
		if user != nil {
			user.Name = *update.Name
			if err := h.UserRepository.Set(*user); err != nil {
				return nil, err
			}
		}
	}

	h.profile = &profile
	return h.profile, nil
}

func applyNotificationUpdate(prefs *domain.NotificationPreferences, update domain.NotificationPreferencesUpdate) {
	if update.Email != nil {
		prefs.Email = *update.Email
	}
	if update.Push != nil {
		prefs.Push = *update.Push
	}
	if update.PriceAlerts != nil {
		prefs.PriceAlerts = *update.PriceAlerts
	}
	if update.NewsAlerts != nil {
		prefs.NewsAlerts = *update.NewsAlerts
	}
	if update.MarketUpdates != nil {
		prefs.MarketUpdates = *update.MarketUpdates
	}
}

func defaultProfile(user domain.User) *domain.Profile {
	now := time.Now().UTC()
	return &domain.Profile{
		ID:                user.ID,
		Name:              user.Name,
		Email:             user.Email,
		TradingExperience: domain.TradingExperienceBeginner,
		PreferredMarkets:  []string{},
		Notifications: domain.NotificationPreferences{
			Email:         true,
			Push:          true,
			PriceAlerts:   true,
			NewsAlerts:    false,
			MarketUpdates: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
