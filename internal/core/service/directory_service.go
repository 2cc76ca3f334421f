package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillforge/catalog-api/internal/api/metrics"
	"github.com/skillforge/catalog-api/internal/core/domain"
	"github.com/skillforge/catalog-api/internal/core/ports"
)

// DirectoryService manages the users referenced by badge created_by.
type DirectoryService struct {
	users  ports.UserRepository
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewDirectoryService(users ports.UserRepository, audit ports.AuditSink, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{users: users, audit: audit, logger: logger}
}

// CreateUser provisions a directory user. Badges referencing the user may
// only be inserted after this succeeds.
func (s *DirectoryService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, &domain.FieldError{Field: "email", Value: input.Email}
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:       email,
		DisplayName: input.DisplayName,
		IsAdmin:     input.IsAdmin,
		Subject:     input.Subject,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.logger.Error().Err(err).Str("email", email).Msg("failed to create user")
		}
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		Action:    domain.AuditUserCreated,
		EntityID:  created.ID,
		ActorID:   input.ActorID,
		Timestamp: now,
	})

	metrics.UsersCreatedTotal.Inc()
	s.logger.Info().Str("user_id", created.ID).Bool("is_admin", created.IsAdmin).Msg("user created")

	return created, nil
}

// Resolve returns the user for the given ID, for the per-request
// authorization context.
func (s *DirectoryService) Resolve(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve caller: %w", err)
	}
	return user, nil
}
