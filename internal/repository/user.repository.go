package repository

import (
	"encoding/json"
	"fmt"

	"portfoliowatch/internal/domain"
)

const userKey = "user"

// UserRepository holds the current mocked session, mirroring how the host
// environment would remember a signed-in user between visits.
type UserRepository interface {
	Get() (*domain.User, error)
	Set(user domain.User) error
	Clear() error
}

type UserRepositoryHandler struct {
	Store Store
}

func NewUserRepository(store Store) UserRepository {
	return UserRepositoryHandler{Store: store}
}

func (h UserRepositoryHandler) Get() (*domain.User, error) {
	value, ok, err := h.Store.Read(userKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !ok {
		return nil, nil
	}

	user := domain.User{}
	if err := json.Unmarshal(value, &user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &user, nil
}

func (h UserRepositoryHandler) Set(user domain.User) error {
	value, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := h.Store.Write(userKey, value); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (h UserRepositoryHandler) Clear() error {
	return h.Store.Delete(userKey)
}
