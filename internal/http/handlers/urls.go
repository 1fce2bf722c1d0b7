package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/url-shortener/internal/http/errors"
)

func (h *Handlers) CreateURL(w http.ResponseWriter, r *http.Request) {
	var in createURLRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, malformedBody())
		return
	}

	url, err := h.svc.CreateURL(r.Context(), in.LongURL, in.ExpiresAt)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, urlResponse{URL: toURLDTO(url)})
}

// ResolveURL отдаёт исходный адрес по коду. Редирект не выполняется:
// клиент сам решает, что делать с longUrl.
func (h *Handlers) ResolveURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.ResolveURL(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{URL: resolvedURL{LongURL: url.LongURL}})
}

func (h *Handlers) UpdateURL(w http.ResponseWriter, r *http.Request) {
	var in updateURLRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, malformedBody())
		return
	}

	url, err := h.svc.UpdateURL(r.Context(), in.ShortURLCode, in.ExpiresAt)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, urlResponse{URL: toURLDTO(url)})
}

func (h *Handlers) DeleteURL(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteURL(r.Context(), chi.URLParam(r, "code")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListURLs(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.ListURLs(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

func (h *Handlers) ListActiveURLs(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.ListActiveURLs(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

func (h *Handlers) URLVisits(w http.ResponseWriter, r *http.Request) {
	visits, err := h.svc.URLVisits(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, visitsResponse{Visits: visits})
}
