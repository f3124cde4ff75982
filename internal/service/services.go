package service

import (
	"github.com/deppfellow/naga/internal/lib/job"
	"github.com/deppfellow/naga/internal/lib/password"
	"github.com/deppfellow/naga/internal/repository"
	"github.com/deppfellow/naga/internal/server"
)

type Services struct {
	User *UserService
	Job  *job.JobService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	opts := []UserServiceOption{WithMetrics(s.Metrics)}
	if s.Job != nil {
		opts = append(opts, WithWelcomeNotifier(s.Job))
	}

	userService := NewUserService(
		repos.User,
		password.NewBcryptHasher(s.Config.Security.BcryptCost),
		opts...,
	)

	return &Services{
		User: userService,
		Job:  s.Job,
	}, nil
}
