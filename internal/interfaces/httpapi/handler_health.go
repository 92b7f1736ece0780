package httpapi

import "net/http"

type healthDTO struct {
	Status   string `json:"status"`
	Service  string `json:"service,omitempty"`
	Version  string `json:"version,omitempty"`
	Upstream string `json:"upstreamCircuit"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	upstream := "unknown"
	if h.upstream != nil {
		upstream = h.upstream.CircuitState()
	}

	writeSuccess(ctx, w, http.StatusOK, healthDTO{
		Status:   "ok",
		Service:  h.service.ServiceName,
		Version:  h.service.ServiceVersion,
		Upstream: upstream,
	})
}
