package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"traininghub/internal/cache"
	"traininghub/internal/domain"
	"traininghub/internal/pricing"
)

const (
	cacheKeyServices   = "catalog:services"
	cacheKeySessions   = "catalog:sessions"
	catalogCacheExpiry = 60 * time.Second
)

type catalogService struct {
	serviceRepo    domain.TrainingServiceRepository
	sessionRepo    domain.SessionRepository
	cache          *cache.Cache
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewCatalogService returns the visitor-facing catalog. cache may be nil, in
// which case every read goes to the database.
func NewCatalogService(serviceRepo domain.TrainingServiceRepository,
	sessionRepo domain.SessionRepository,
	c *cache.Cache,
	logger *slog.Logger,
	timeout time.Duration,
) domain.CatalogService {
	return &catalogService{
		serviceRepo:    serviceRepo,
		sessionRepo:    sessionRepo,
		cache:          c,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *catalogService) ListServices(ctx context.Context) ([]*domain.TrainingService, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var cached []*domain.TrainingService
	if s.cacheGet(ctx, cacheKeyServices, &cached) {
		return cached, nil
	}

	services, err := s.serviceRepo.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	if services == nil {
		services = []*domain.TrainingService{}
	}
	s.cacheSet(ctx, cacheKeyServices, services)
	return services, nil
}

func (s *catalogService) ListSessions(ctx context.Context, serviceID string) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	key := cacheKeySessions
	if serviceID != "" {
		key = cacheKeySessions + ":" + serviceID
	}
	var cached []*domain.Session
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	sessions, err := s.sessionRepo.ListUpcoming(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}
	s.cacheSet(ctx, key, sessions)
	return sessions, nil
}

func (s *catalogService) GetSessionQuote(ctx context.Context, sessionRef string) (*domain.SessionQuote, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	session, err := resolveSessionRef(ctx, s.sessionRepo, sessionRef)
	if err != nil {
		return nil, err
	}
	svc, err := s.serviceRepo.GetByID(ctx, session.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service for session: %w", err)
	}
	quote := pricing.Quote(svc, session.Date, s.now())
	return &domain.SessionQuote{Session: session, Service: svc, Quote: quote}, nil
}

// cacheGet reports whether key was found. Cache errors degrade to a miss.
func (s *catalogService) cacheGet(ctx context.Context, key string, result any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, result)
	if err != nil {
		s.logger.WarnContext(ctx, "catalog cache read failed", "key", key, "err", err)
		return false
	}
	return found
}

func (s *catalogService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, catalogCacheExpiry); err != nil {
		s.logger.WarnContext(ctx, "catalog cache write failed", "key", key, "err", err)
	}
}
