package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/riskibarqy/football-pulse/internal/usecase"
)

func (h *Handler) ProxyCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProxyCompetitions")
	defer span.End()

	h.proxy(ctx, w, r, func(ctx context.Context, query url.Values) ([]byte, error) {
		return h.passthrough.Competitions(ctx, query)
	})
}

func (h *Handler) ProxyCompetitionCollection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProxyCompetitionCollection")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	resource := usecase.CompetitionResource(r.PathValue("resource"))
	h.proxy(ctx, w, r, func(ctx context.Context, query url.Values) ([]byte, error) {
		return h.passthrough.CompetitionCollection(ctx, competitionID, resource, query)
	})
}

func (h *Handler) ProxyTeamStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProxyTeamStatistics")
	defer span.End()

	competitionID := r.PathValue("competitionID")
	teamID := r.PathValue("teamID")
	h.proxy(ctx, w, r, func(ctx context.Context, query url.Values) ([]byte, error) {
		return h.passthrough.TeamStatistics(ctx, competitionID, teamID, query)
	})
}

func (h *Handler) ProxyMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProxyMatches")
	defer span.End()

	h.proxy(ctx, w, r, func(ctx context.Context, query url.Values) ([]byte, error) {
		return h.passthrough.Matches(ctx, query)
	})
}

func (h *Handler) ProxyTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProxyTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	h.proxy(ctx, w, r, func(ctx context.Context, query url.Values) ([]byte, error) {
		return h.passthrough.Team(ctx, teamID, query)
	})
}

func (h *Handler) ProxyPerson(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProxyPerson")
	defer span.End()

	personID := r.PathValue("personID")
	h.proxy(ctx, w, r, func(ctx context.Context, query url.Values) ([]byte, error) {
		return h.passthrough.Person(ctx, personID, query)
	})
}

func (h *Handler) proxy(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
	fetch func(context.Context, url.Values) ([]byte, error),
) {
	raw, err := fetch(ctx, r.URL.Query())
	if err != nil {
		h.logger.WarnContext(ctx, "proxy request failed", "path", r.URL.Path, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeRawJSON(ctx, w, http.StatusOK, raw)
}
