package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// RawFetcher returns an upstream JSON document unchanged.
type RawFetcher interface {
	FetchRaw(ctx context.Context, path string, query url.Values) ([]byte, error)
}

// CompetitionResource is a per-competition collection exposed by the passthrough API.
type CompetitionResource string

const (
	ResourceTeams     CompetitionResource = "teams"
	ResourceMatches   CompetitionResource = "matches"
	ResourceScorers   CompetitionResource = "scorers"
	ResourceStandings CompetitionResource = "standings"
)

func (r CompetitionResource) valid() bool {
	switch r {
	case ResourceTeams, ResourceMatches, ResourceScorers, ResourceStandings:
		return true
	default:
		return false
	}
}

// PassthroughService validates identifiers and forwards to a fixed allow-list of
// upstream paths, so callers can never reach arbitrary upstream URLs.
type PassthroughService struct {
	fetcher RawFetcher
}

func NewPassthroughService(fetcher RawFetcher) *PassthroughService {
	return &PassthroughService{fetcher: fetcher}
}

func (s *PassthroughService) Competitions(ctx context.Context, query url.Values) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PassthroughService.Competitions")
	defer span.End()

	return s.fetch(ctx, "/competitions", query)
}

func (s *PassthroughService) CompetitionCollection(ctx context.Context, competitionID string, resource CompetitionResource, query url.Values) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PassthroughService.CompetitionCollection", competitionAttr(competitionID))
	defer span.End()

	id, err := normalizeCompetitionID(competitionID)
	if err != nil {
		return nil, err
	}
	if !resource.valid() {
		return nil, fmt.Errorf("%w: unknown competition resource %q", ErrInvalidInput, resource)
	}
	return s.fetch(ctx, "/competitions/"+url.PathEscape(id)+"/"+string(resource), query)
}

func (s *PassthroughService) TeamStatistics(ctx context.Context, competitionID, teamID string, query url.Values) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PassthroughService.TeamStatistics", competitionAttr(competitionID), entityAttr("team", teamID))
	defer span.End()

	id, err := normalizeCompetitionID(competitionID)
	if err != nil {
		return nil, err
	}
	tid, err := parseEntityID("team", teamID)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, "/competitions/"+url.PathEscape(id)+"/teams/"+strconv.FormatInt(tid, 10)+"/statistics", query)
}

func (s *PassthroughService) Matches(ctx context.Context, query url.Values) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PassthroughService.Matches")
	defer span.End()

	return s.fetch(ctx, "/matches", query)
}

func (s *PassthroughService) Team(ctx context.Context, teamID string, query url.Values) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PassthroughService.Team", entityAttr("team", teamID))
	defer span.End()

	id, err := parseEntityID("team", teamID)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, "/teams/"+strconv.FormatInt(id, 10), query)
}

func (s *PassthroughService) Person(ctx context.Context, personID string, query url.Values) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PassthroughService.Person", entityAttr("person", personID))
	defer span.End()

	id, err := parseEntityID("person", personID)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, "/persons/"+strconv.FormatInt(id, 10), query)
}

func (s *PassthroughService) fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	raw, err := s.fetcher.FetchRaw(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	return raw, nil
}
