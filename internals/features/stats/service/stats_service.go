package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	blogService "bitsa_backend/internals/features/content/blogs/service"
	eventService "bitsa_backend/internals/features/content/events/service"
	"bitsa_backend/internals/features/moderation"
	userService "bitsa_backend/internals/features/users/user/service"
	"bitsa_backend/internals/helpers/cache"
)

const publicStatsKey = "stats:public"

type PublicStats struct {
	TotalUsers  int64     `json:"totalUsers"`
	TotalBlogs  int64     `json:"totalBlogs"`
	TotalEvents int64     `json:"totalEvents"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Backlog is the size of each moderation queue.
type Backlog struct {
	Blogs  int64 `json:"pendingBlogs"`
	Events int64 `json:"pendingEvents"`
}

type StatsService struct {
	DB     *gorm.DB
	Cache  cache.Cache
	TTL    time.Duration
	Users  *userService.UserService
	Blogs  *blogService.BlogService
	Events *eventService.EventService
}

func NewStatsService(db *gorm.DB, c cache.Cache, ttl time.Duration) *StatsService {
	if c == nil {
		c = cache.Noop{}
	}
	return &StatsService{
		DB:     db,
		Cache:  c,
		TTL:    ttl,
		Users:  userService.NewUserService(db),
		Blogs:  blogService.NewBlogService(db),
		Events: eventService.NewEventService(db),
	}
}

// Compute counts users, approved blog posts and approved events straight from the store.
func (s *StatsService) Compute(ctx context.Context) (PublicStats, error) {
	var st PublicStats
	var err error
	if st.TotalUsers, err = s.Users.Total(ctx); err != nil {
		return PublicStats{}, err
	}
	if st.TotalBlogs, err = s.Blogs.Workflow.CountByStatus(ctx, moderation.StatusApproved); err != nil {
		return PublicStats{}, err
	}
	if st.TotalEvents, err = s.Events.Workflow.CountByStatus(ctx, moderation.StatusApproved); err != nil {
		return PublicStats{}, err
	}
	st.GeneratedAt = time.Now().UTC()
	return st, nil
}

// Public serves from the cache and falls back to Compute on a miss.
// Cache failures are logged, never returned.
func (s *StatsService) Public(ctx context.Context) (PublicStats, error) {
	if raw, err := s.Cache.Get(ctx, publicStatsKey); err == nil {
		var st PublicStats
		if err := sonic.Unmarshal(raw, &st); err == nil {
			return st, nil
		}
		log.Printf("[STATS] dropping undecodable cache entry")
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("[STATS] cache read failed: %v", err)
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the public stats and stores them.
func (s *StatsService) Refresh(ctx context.Context) (PublicStats, error) {
	st, err := s.Compute(ctx)
	if err != nil {
		return PublicStats{}, err
	}
	if raw, err := sonic.Marshal(st); err == nil {
		if err := s.Cache.Set(ctx, publicStatsKey, raw, s.TTL); err != nil {
			log.Printf("[STATS] cache write failed: %v", err)
		}
	}
	return st, nil
}

// Invalidate drops the cached value so the next read recomputes.
func (s *StatsService) Invalidate(ctx context.Context) {
	if err := s.Cache.Delete(ctx, publicStatsKey); err != nil {
		log.Printf("[STATS] cache delete failed: %v", err)
	}
}

func (s *StatsService) Backlog(ctx context.Context) (Backlog, error) {
	var b Backlog
	var err error
	if b.Blogs, err = s.Blogs.Workflow.CountByStatus(ctx, moderation.StatusPending); err != nil {
		return Backlog{}, err
	}
	if b.Events, err = s.Events.Workflow.CountByStatus(ctx, moderation.StatusPending); err != nil {
		return Backlog{}, err
	}
	return b, nil
}
