package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/novalearn/student-portal/internal/cache"
	"github.com/novalearn/student-portal/internal/models"
)

func TestCatalogService_GetCatalog(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("skips videos without an embeddable link", func(t *testing.T) {
		repo := newFakeRepository()
		repo.courses = append(repo.courses, &models.Course{ID: 1, Name: "Core Maths", Price: 50})
		repo.videos = append(repo.videos,
			&models.Video{ID: 2, Title: "Algebra", YoutubeLink: "https://www.youtube.com/watch?v=abc123"},
			&models.Video{ID: 3, Title: "Broken", YoutubeLink: "not a url"},
		)

		service := NewCatalogService(repo, logger, cache.NewCacheHelper(nil, "test"))

		view, err := service.GetCatalog(ctx)
		if err != nil {
			t.Fatalf("catalog load failed: %v", err)
		}
		if view.Quote != DailyQuote {
			t.Errorf("unexpected quote: %q", view.Quote)
		}
		if len(view.Courses) != 1 {
			t.Errorf("expected 1 course, got %d", len(view.Courses))
		}
		if len(view.Videos) != 1 {
			t.Fatalf("expected the broken video to be skipped, got %d videos", len(view.Videos))
		}
		if view.Videos[0].EmbedURL != "https://www.youtube.com/embed/abc123" {
			t.Errorf("unexpected embed URL: %s", view.Videos[0].EmbedURL)
		}
	})

	t.Run("falls back to the store when redis is down", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		mr.Close()

		repo := newFakeRepository()
		repo.courses = append(repo.courses, &models.Course{ID: 1, Name: "Core Maths", Price: 50})

		service := NewCatalogService(repo, logger, cache.NewCacheHelper(client, "test"))

		view, err := service.GetCatalog(ctx)
		if err != nil {
			t.Fatalf("catalog load should degrade, got %v", err)
		}
		if len(view.Courses) != 1 {
			t.Errorf("expected 1 course from the store, got %d", len(view.Courses))
		}
	})

	t.Run("serves the catalog from cache once populated", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

		repo := newFakeRepository()
		repo.courses = append(repo.courses, &models.Course{ID: 1, Name: "Core Maths", Price: 50})

		service := NewCatalogService(repo, logger, cache.NewCacheHelper(client, "test"))

		view, err := service.GetCatalog(ctx)
		if err != nil {
			t.Fatalf("catalog load failed: %v", err)
		}
		if len(view.Courses) != 1 {
			t.Fatalf("expected 1 course, got %d", len(view.Courses))
		}

		// A write that bypasses the admin path is invisible until the TTL
		// expires or the cache is invalidated.
		repo.courses = append(repo.courses, &models.Course{ID: 2, Name: "Physics", Price: 60})

		view, err = service.GetCatalog(ctx)
		if err != nil {
			t.Fatalf("catalog load failed: %v", err)
		}
		if len(view.Courses) != 1 {
			t.Errorf("expected the cached course list, got %d courses", len(view.Courses))
		}
	})
}
