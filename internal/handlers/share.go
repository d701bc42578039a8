package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/Chethumuniraju/stockfolio/internal/common"
	"github.com/Chethumuniraju/stockfolio/internal/models"
	"github.com/Chethumuniraju/stockfolio/internal/quotes"
	"github.com/Chethumuniraju/stockfolio/internal/share"
)

// ShareHandler issues share links for the user's portfolio.
type ShareHandler struct {
	logger *common.Logger
	issuer *share.Issuer
}

// NewShareHandler creates a new share handler.
func NewShareHandler(logger *common.Logger, issuer *share.Issuer) *ShareHandler {
	return &ShareHandler{logger: logger, issuer: issuer}
}

// ServeHTTP handles POST /api/share.
func (h *ShareHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	link, err := h.issuer.Issue(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("Share link issue failed")
		WriteAPIError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, link)
}

// SharedAPI is the slice of the stock API the shared-view handler depends on.
type SharedAPI interface {
	GetSharedPortfolio(ctx context.Context, shareID string) (*models.SharedPortfolio, error)
}

// SharedResponse is the payload for GET /api/shared/{shareId}: the owner's
// identity plus the same summary shape the live portfolio view uses.
type SharedResponse struct {
	UserName  string `json:"userName"`
	ExpiresAt string `json:"expiresAt"`
	SummaryResponse
}

// SharedHandler serves read-only shared portfolio views. Expiry is enforced
// by the backend — an expired or unknown share id comes back as not found
// and is passed through as 404.
type SharedHandler struct {
	logger   *common.Logger
	api      SharedAPI
	resolver *quotes.Resolver
}

// NewSharedHandler creates a new shared-view handler.
func NewSharedHandler(logger *common.Logger, api SharedAPI, resolver *quotes.Resolver) *SharedHandler {
	return &SharedHandler{logger: logger, api: api, resolver: resolver}
}

// ServeHTTP handles GET /api/shared/{shareId}.
func (h *SharedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	shareID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/shared"), "/")
	if shareID == "" || strings.Contains(shareID, "/") {
		WriteError(w, http.StatusBadRequest, "share id required")
		return
	}

	shared, err := h.api.GetSharedPortfolio(r.Context(), shareID)
	if err != nil {
		h.logger.Warn().Str("shareId", shareID).Err(err).Msg("Shared portfolio fetch failed")
		WriteAPIError(w, err)
		return
	}

	resp := SharedResponse{
		UserName:        shared.UserName,
		ExpiresAt:       shared.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
		SummaryResponse: BuildSummary(r.Context(), shared.Holdings, h.resolver),
	}
	WriteJSON(w, http.StatusOK, resp)
}
