package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/joaquinrs/poker-league/internal/usecase"
)

func (h *Handler) GetTournamentRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournamentRanking")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	req := getRankingRequest{TournamentID: strings.TrimSpace(tournamentID)}

	rawUpToDate := strings.TrimSpace(r.URL.Query().Get("upToDate"))
	if rawUpToDate != "" {
		upToDate, err := strconv.Atoi(rawUpToDate)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: upToDate must be an integer", usecase.ErrInvalidInput))
			return
		}
		req.UpToDate = upToDate
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if req.UpToDate > 0 {
		item, err := h.rankingService.GetTournamentRankingUpToDate(ctx, req.TournamentID, req.UpToDate)
		if err != nil {
			h.logger.WarnContext(ctx, "get ranking up to date failed", "tournament_id", tournamentID, "up_to_date", req.UpToDate, "error", err)
			writeError(ctx, w, err)
			return
		}

		writeSuccess(ctx, w, http.StatusOK, tournamentRankingToDTO(ctx, item))
		return
	}

	item, err := h.rankingService.GetTournamentRanking(ctx, req.TournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get ranking failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentRankingToDTO(ctx, item))
}

func (h *Handler) GetPlayerRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRanking")
	defer span.End()

	tournamentID := r.PathValue("tournamentID")
	playerID := r.PathValue("playerID")
	item, err := h.rankingService.GetPlayerRanking(ctx, tournamentID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player ranking failed", "tournament_id", tournamentID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerRankingToDTO(item))
}
