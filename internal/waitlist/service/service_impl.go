package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/clock"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("waitlist.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Signup(ctx context.Context, req domain.SignupRequest) (*domain.Entry, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, domain.ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidEmail
	}

	existing, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	entry := &domain.Entry{
		ID:        s.genID.Generate(),
		Email:     email,
		Plan:      strings.TrimSpace(req.Plan),
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Create(ctx, s.db, entry); err != nil {
		// Two concurrent signups can race past the existence check.
		if db.IsDuplicateKeyErr(err) {
			return s.repo.FindByEmail(ctx, s.db, email)
		}
		s.log.Error("failed to create waitlist entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Entry, error) {
	return s.repo.List(ctx, s.db)
}
