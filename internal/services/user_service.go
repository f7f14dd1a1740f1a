package services

import (
	"context"
	"fmt"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"
	"busbooking/internal/utils"
)

// UserService hashes passwords before they reach the users table.
type UserService struct {
	UserRepo  repositories.UserRepository
	RequestID string
}

func (s UserService) Create(ctx context.Context, p models.UserPayload) (int64, error) {
	if p.Password == "" {
		return 0, domain.ValidationError{Field: "password", Msg: "Invalid request payload: password is required"}
	}
	hash, err := HashPassword(p.Password)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	id, err := s.UserRepo.Create(ctx, p, hash)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "user", "create", fmt.Sprintf("user_id=%d role=%s", id, p.Role))
	return id, nil
}

// Update keeps the stored hash when no new password is supplied.
func (s UserService) Update(ctx context.Context, id int64, p models.UserPayload) error {
	var hash string
	if p.Password != "" {
		var err error
		if hash, err = HashPassword(p.Password); err != nil {
			return domain.InternalError{Msg: "failed to hash password", Err: err}
		}
	}
	return s.UserRepo.Update(ctx, id, p, hash)
}
