package domain

import (
	"context"
	"log/slog"
)

type loggingAccountService struct {
	logger *slog.Logger
	next   AccountService
}

func NewLoggingAccountService(logger *slog.Logger, next AccountService) AccountService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingAccountService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingAccountService) Register(ctx context.Context, input RegisterInput) (User, error) {
	user, err := s.next.Register(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "register failed", "username", input.Username, "err", err.Error())
		return User{}, err
	}

	s.logger.InfoContext(ctx, "user registered", "username", user.Username)
	return user, nil
}
