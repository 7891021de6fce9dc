package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/leaguedata"
	"github.com/zeeneddie/Sports-League-Management-System/internal/normalize"
	"github.com/zeeneddie/Sports-League-Management-System/internal/platform/logging"
	"github.com/zeeneddie/Sports-League-Management-System/internal/snapshot"
	"github.com/zeeneddie/Sports-League-Management-System/internal/views"
)

// CompetitionSource supplies a raw competition payload. Both the live
// API client and the bundled fixture source satisfy it.
type CompetitionSource interface {
	FetchCompetitionData(ctx context.Context) (map[string]any, error)
}

// RefreshService rebuilds the full dashboard document: fetch, normalize,
// derive every view, persist. The snapshot is replaced wholesale.
type RefreshService struct {
	primary  CompetitionSource
	fallback CompetitionSource
	store    *snapshot.Store

	featuredTeam string
	testData     bool

	logger *logging.Logger
	now    func() time.Time
}

func NewRefreshService(
	primary CompetitionSource,
	fallback CompetitionSource,
	store *snapshot.Store,
	featuredTeam string,
	testData bool,
	logger *logging.Logger,
) *RefreshService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RefreshService{
		primary:      primary,
		fallback:     fallback,
		store:        store,
		featuredTeam: featuredTeam,
		testData:     testData,
		logger:       logger,
		now:          time.Now,
	}
}

// Fingerprint identifies the configuration this service builds snapshots
// for.
func (s *RefreshService) Fingerprint() snapshot.Fingerprint {
	return snapshot.Fingerprint{FeaturedTeam: s.featuredTeam, TestData: s.testData}
}

// Refresh builds and persists a new dashboard document.
func (s *RefreshService) Refresh(ctx context.Context) (leaguedata.Document, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RefreshService.Refresh")
	defer span.End()

	raw, err := s.fetch(ctx)
	if err != nil {
		return leaguedata.Document{}, err
	}

	data := normalize.Normalize(raw)
	if data.IsEmpty() {
		return leaguedata.Document{}, fmt.Errorf("%w: competition payload yielded no rows", ErrNoData)
	}

	now := s.now()
	doc := leaguedata.Document{
		RawData:             data,
		LeagueTable:         data.LeagueTable,
		PeriodStandings:     views.FilterPeriodStandings(data),
		LastWeekResults:     views.LastWeekResults(data, now, s.testData),
		NextWeekMatches:     views.NextWeekMatches(data, now),
		FeaturedTeamMatches: views.FeaturedTeamMatches(data, s.featuredTeam),
		WeeklyResults:       views.WeeklyResults(data),
		TeamMatrix:          views.CreateTeamMatrix(data),
		AllMatches:          views.AllMatches(data),
		LastUpdated:         now.UTC().Format(time.RFC3339),
	}

	if err := s.store.Save(doc, s.Fingerprint()); err != nil {
		return leaguedata.Document{}, fmt.Errorf("save snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "dashboard refreshed",
		"teams", len(doc.LeagueTable),
		"results", len(data.Results),
		"program", len(data.Program),
		"featured_team", s.featuredTeam,
		"test_data", s.testData,
	)
	return doc, nil
}

func (s *RefreshService) fetch(ctx context.Context) (map[string]any, error) {
	if s.testData {
		raw, err := s.fallback.FetchCompetitionData(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch test data: %w", err)
		}
		return raw, nil
	}

	raw, err := s.primary.FetchCompetitionData(ctx)
	if err == nil {
		return raw, nil
	}
	if s.fallback == nil {
		return nil, fmt.Errorf("fetch competition data: %w", err)
	}

	s.logger.WarnContext(ctx, "competition API unavailable, using bundled data", "error", err)
	raw, fbErr := s.fallback.FetchCompetitionData(ctx)
	if fbErr != nil {
		return nil, fmt.Errorf("fetch competition data: %w (fallback: %v)", err, fbErr)
	}
	return raw, nil
}
