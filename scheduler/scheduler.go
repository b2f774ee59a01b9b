package scheduler

import (
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gradient-catalog/api/colormatch"
	"github.com/gradient-catalog/api/models"
)

type Scheduler struct {
	Engine  *colormatch.Engine
	Palette *colormatch.Palette
	Catalog *colormatch.Catalog
	Limit   int

	mu      sync.RWMutex
	current *models.FeaturedColor

	timer    *time.Timer
	done     chan struct{}
	stopOnce sync.Once
}

func NewScheduler(engine *colormatch.Engine, palette *colormatch.Palette, catalog *colormatch.Catalog, limit int) *Scheduler {
	return &Scheduler{
		Engine:  engine,
		Palette: palette,
		Catalog: catalog,
		Limit:   limit,
		done:    make(chan struct{}),
	}
}

// Start generates today's featured color immediately, then again at every
// local midnight
func (s *Scheduler) Start() {
	now := time.Now()
	if _, err := s.GenerateFeaturedColor(now); err != nil {
		log.Error().Err(err).Msg("Failed to generate featured color")
	}

	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	log.Info().Dur("next_run_in", durationUntilMidnight).Msg("Scheduler started")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = time.AfterFunc(durationUntilMidnight, func() {
		s.runAndLog()

		// After first run, schedule to run every 24 hours
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.runAndLog()
			case <-s.done:
				return
			}
		}
	})
}

func (s *Scheduler) runAndLog() {
	if _, err := s.GenerateFeaturedColor(time.Now()); err != nil {
		log.Error().Err(err).Msg("Failed to generate featured color")
	}
}

// Stop stops the scheduler. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
		}
		s.mu.Unlock()
		close(s.done)
		log.Info().Msg("Scheduler stopped")
	})
}

// ColorForDate returns the featured color for a calendar day. The same day
// always yields the same color.
func ColorForDate(date time.Time) colormatch.RGB {
	seed := int64(date.Year()*10000 + int(date.Month())*100 + date.Day())
	rng := rand.New(rand.NewSource(seed))
	return colormatch.RGB{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}

// GenerateFeaturedColor computes the featured color for the day of now,
// names it against the palette and ranks the catalog around it
func (s *Scheduler) GenerateFeaturedColor(now time.Time) (models.FeaturedColor, error) {
	normalizedToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if existing, ok := s.Current(); ok && existing.Date.Equal(normalizedToday) {
		log.Debug().Str("date", normalizedToday.Format("2006-01-02")).Str("color", existing.ColorName).Msg("Featured color already exists")
		return existing, nil
	}

	color := ColorForDate(normalizedToday)
	swatch, distance, err := s.Engine.NearestNamed(color, s.Palette)
	if err != nil {
		return models.FeaturedColor{}, err
	}

	featured := models.FeaturedColor{
		Date:      normalizedToday,
		Color:     color,
		ColorName: swatch.Name,
		Distance:  distance,
		Similar:   s.Engine.Rank(color, s.Catalog, s.Limit),
	}

	s.mu.Lock()
	s.current = &featured
	s.mu.Unlock()

	log.Info().
		Str("date", normalizedToday.Format("2006-01-02")).
		Str("color", color.Hex()).
		Str("name", swatch.Name).
		Int("similar", len(featured.Similar)).
		Msg("Generated featured color")

	return featured, nil
}

// Current returns the latest featured color, if one was generated
func (s *Scheduler) Current() (models.FeaturedColor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.FeaturedColor{}, false
	}
	return *s.current, true
}
