package usecase

import (
	"context"
	"fmt"

	"github.com/zeeneddie/Sports-League-Management-System/internal/domain/match"
	"github.com/zeeneddie/Sports-League-Management-System/internal/livemerge"
	"github.com/zeeneddie/Sports-League-Management-System/internal/platform/logging"
)

// LiveScoreSource scrapes live scores filtered to the given target
// teams.
type LiveScoreSource interface {
	FetchLiveScores(ctx context.Context, targetTeams []string) ([]match.LiveScore, error)
}

// LiveScoreMerger folds scores into the given target files.
type LiveScoreMerger interface {
	MergeFiles(ctx context.Context, paths []string, scores []match.LiveScore) map[string]livemerge.Result
}

// LiveScoreService runs one scrape-and-merge cycle for the featured
// team across every configured target file.
type LiveScoreService struct {
	source LiveScoreSource
	merger LiveScoreMerger

	featuredTeam string
	targetFiles  []string

	logger *logging.Logger
}

func NewLiveScoreService(
	source LiveScoreSource,
	merger LiveScoreMerger,
	featuredTeam string,
	targetFiles []string,
	logger *logging.Logger,
) *LiveScoreService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LiveScoreService{
		source:       source,
		merger:       merger,
		featuredTeam: featuredTeam,
		targetFiles:  targetFiles,
		logger:       logger,
	}
}

// Update scrapes the live page and merges any scores found. No live
// scores is a normal outcome outside match hours.
func (s *LiveScoreService) Update(ctx context.Context) (map[string]livemerge.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveScoreService.Update")
	defer span.End()

	if len(s.targetFiles) == 0 {
		return nil, fmt.Errorf("%w: no live merge target files configured", ErrInvalidInput)
	}

	var targets []string
	if s.featuredTeam != "" {
		targets = []string{s.featuredTeam}
	}

	scores, err := s.source.FetchLiveScores(ctx, targets)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch live scores: %v", ErrDependencyUnavailable, err)
	}
	if len(scores) == 0 {
		s.logger.DebugContext(ctx, "no live scores on page", "featured_team", s.featuredTeam)
		return map[string]livemerge.Result{}, nil
	}

	results := s.merger.MergeFiles(ctx, s.targetFiles, scores)
	for path, result := range results {
		if result.Err != nil {
			s.logger.WarnContext(ctx, "live merge failed for target", "file", path, "error", result.Err)
		}
	}
	return results, nil
}
