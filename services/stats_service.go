package services

import (
	"log"
	"sync"

	"tour-backend/repositories"
)

// DashboardStats feeds the admin dashboard header cards.
type DashboardStats struct {
	Destinations    int64 `json:"destinations"`
	Packages        int64 `json:"packages"`
	Activities      int64 `json:"activities"`
	BlogPosts       int64 `json:"blog_posts"`
	PublishedPosts  int64 `json:"published_posts"`
	FeaturedContent int64 `json:"featured_content"`
}

type StatsService interface {
	Dashboard() DashboardStats
}

type statsService struct {
	destinations repositories.DestinationRepository
	packages     repositories.PackageRepository
	activities   repositories.ActivityRepository
	blog         repositories.BlogRepository
}

func NewStatsService(
	destinations repositories.DestinationRepository,
	packages repositories.PackageRepository,
	activities repositories.ActivityRepository,
	blog repositories.BlogRepository,
) StatsService {
	return &statsService{
		destinations: destinations,
		packages:     packages,
		activities:   activities,
		blog:         blog,
	}
}

// Dashboard gathers the entity counts concurrently. A failing count is
// logged and reported as zero; one broken table must not blank the whole
// dashboard.
func (s *statsService) Dashboard() DashboardStats {
	var stats DashboardStats
	yes := true

	counts := []struct {
		name  string
		dest  *int64
		fetch func() (int64, error)
	}{
		{"destinations", &stats.Destinations, func() (int64, error) {
			return s.destinations.Count(repositories.ListFilter{})
		}},
		{"packages", &stats.Packages, func() (int64, error) {
			return s.packages.Count(repositories.ListFilter{})
		}},
		{"activities", &stats.Activities, func() (int64, error) {
			return s.activities.Count(repositories.ListFilter{})
		}},
		{"blog posts", &stats.BlogPosts, func() (int64, error) {
			return s.blog.Count(repositories.ListFilter{})
		}},
		{"published posts", &stats.PublishedPosts, func() (int64, error) {
			return s.blog.Count(repositories.ListFilter{Published: &yes})
		}},
	}

	var wg sync.WaitGroup
	for _, c := range counts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := c.fetch()
			if err != nil {
				log.Printf("⚠️ stats: counting %s failed: %v", c.name, err)
				return
			}
			*c.dest = n
		}()
	}

	var featuredPackages, featuredPosts int64
	wg.Add(1)
	go func() {
		defer wg.Done()
		n, err := s.packages.Count(repositories.ListFilter{Featured: &yes})
		if err != nil {
			log.Printf("⚠️ stats: counting featured packages failed: %v", err)
			return
		}
		featuredPackages = n
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		n, err := s.blog.Count(repositories.ListFilter{Featured: &yes})
		if err != nil {
			log.Printf("⚠️ stats: counting featured posts failed: %v", err)
			return
		}
		featuredPosts = n
	}()

	wg.Wait()
	stats.FeaturedContent = featuredPackages + featuredPosts
	return stats
}
