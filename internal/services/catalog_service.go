package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/novalearn/student-portal/internal/cache"
	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/repositories"
	"github.com/novalearn/student-portal/internal/utils"
)

// DailyQuote is shown on the public landing page.
const DailyQuote = "The best way to predict the future is to create it."

const (
	catalogCoursesKey = "courses"
	catalogVideosKey  = "videos"
)

type catalogService struct {
	repo   repositories.Repository
	logger *slog.Logger
	cache  *cache.CacheHelper
}

func NewCatalogService(repo repositories.Repository, logger *slog.Logger, cacheHelper *cache.CacheHelper) CatalogService {
	return &catalogService{
		repo:   repo,
		logger: logger,
		cache:  cacheHelper,
	}
}

// GetCatalog serves the landing page data cache-aside: Redis when
// configured, straight from the store otherwise.
func (s *catalogService) GetCatalog(ctx context.Context) (*CatalogView, error) {
	courses, err := s.getCourses(ctx)
	if err != nil {
		return nil, err
	}

	videos, err := s.getVideos(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*VideoView, 0, len(videos))
	for _, v := range videos {
		embed, ok := utils.EmbedURL(v.YoutubeLink)
		if !ok {
			// Stored links were validated on submit; skip anything that
			// slipped in through older data.
			s.logger.Warn("skipping video with unembeddable link", "video_id", v.ID)
			continue
		}
		views = append(views, &VideoView{Video: v, EmbedURL: embed})
	}

	return &CatalogView{Courses: courses, Videos: views, Quote: DailyQuote}, nil
}

func (s *catalogService) getCourses(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	if err := s.cache.Get(ctx, catalogCoursesKey, &courses); err == nil {
		return courses, nil
	} else if !errors.Is(err, cache.ErrCacheNotFound) && !errors.Is(err, cache.ErrCacheNotAvailable) {
		s.logger.Warn("catalog cache read failed", "key", catalogCoursesKey, "error", err)
	}

	courses, err := s.repo.Course().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	if err := s.cache.Set(ctx, catalogCoursesKey, courses, cache.CatalogTTL); err != nil {
		s.logger.Warn("catalog cache write failed", "key", catalogCoursesKey, "error", err)
	}
	return courses, nil
}

func (s *catalogService) getVideos(ctx context.Context) ([]*models.Video, error) {
	var videos []*models.Video
	if err := s.cache.Get(ctx, catalogVideosKey, &videos); err == nil {
		return videos, nil
	} else if !errors.Is(err, cache.ErrCacheNotFound) && !errors.Is(err, cache.ErrCacheNotAvailable) {
		s.logger.Warn("catalog cache read failed", "key", catalogVideosKey, "error", err)
	}

	videos, err := s.repo.Video().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	if err := s.cache.Set(ctx, catalogVideosKey, videos, cache.CatalogTTL); err != nil {
		s.logger.Warn("catalog cache write failed", "key", catalogVideosKey, "error", err)
	}
	return videos, nil
}
