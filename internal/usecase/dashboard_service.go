package usecase

import (
	"context"
	"fmt"

	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/leaguedata"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/standing"
	"github.com/zeeneddie/Sports-League-Management-System/internal/snapshot"
)

// DashboardService serves read-only views from the persisted snapshot.
// When no snapshot exists yet it asks the refresher to build one.
type DashboardService struct {
	store     *snapshot.Store
	refresher *RefreshService
}

func NewDashboardService(store *snapshot.Store, refresher *RefreshService) *DashboardService {
	return &DashboardService{store: store, refresher: refresher}
}

// Data returns the whole dashboard document.
func (s *DashboardService) Data(ctx context.Context) (leaguedata.Document, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Data")
	defer span.End()

	return s.document(ctx)
}

// Standings returns the overall league table.
func (s *DashboardService) Standings(ctx context.Context) ([]standing.TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Standings")
	defer span.End()

	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	if len(doc.LeagueTable) == 0 {
		return nil, fmt.Errorf("%w: league table is empty", ErrNoData)
	}
	return doc.LeagueTable, nil
}

// PeriodStandings returns the period tables that have actually been
// played.
func (s *DashboardService) PeriodStandings(ctx context.Context) ([]standing.Period, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.PeriodStandings")
	defer span.End()

	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	return doc.PeriodStandings, nil
}

func (s *DashboardService) LastWeekResults(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.LastWeekResults")
	defer span.End()

	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	return doc.LastWeekResults, nil
}

func (s *DashboardService) NextWeekMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.NextWeekMatches")
	defer span.End()

	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	return doc.NextWeekMatches, nil
}

func (s *DashboardService) FeaturedTeamMatches(ctx context.Context) (leaguedata.FeaturedMatches, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.FeaturedTeamMatches")
	defer span.End()

	doc, err := s.document(ctx)
	if err != nil {
		return leaguedata.FeaturedMatches{}, err
	}
	return doc.FeaturedTeamMatches, nil
}

func (s *DashboardService) WeeklyResults(ctx context.Context) (map[string][]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.WeeklyResults")
	defer span.End()

	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	return doc.WeeklyResults, nil
}

func (s *DashboardService) TeamMatrix(ctx context.Context) (leaguedata.TeamMatrix, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.TeamMatrix")
	defer span.End()

	doc, err := s.document(ctx)
	if err != nil {
		return leaguedata.TeamMatrix{}, err
	}
	return doc.TeamMatrix, nil
}

func (s *DashboardService) AllMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.AllMatches")
	defer span.End()

	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	return doc.AllMatches, nil
}

func (s *DashboardService) document(ctx context.Context) (leaguedata.Document, error) {
	fp := s.refresher.Fingerprint()

	doc, ok, err := s.store.Load(fp)
	if err != nil {
		return leaguedata.Document{}, fmt.Errorf("load snapshot: %w", err)
	}
	if ok {
		return doc, nil
	}

	doc, err = s.refresher.Refresh(ctx)
	if err != nil {
		return leaguedata.Document{}, err
	}
	return doc, nil
}
