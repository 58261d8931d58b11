package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"soberPathAPI/internal/trophy"
	"soberPathAPI/middleware"
	"soberPathAPI/services"
)

type TrophyHandler struct {
	trophyService *services.TrophyService
}

func NewTrophyHandler(trophyService *services.TrophyService) *TrophyHandler {
	return &TrophyHandler{
		trophyService: trophyService,
	}
}

func (h *TrophyHandler) GetTrophies(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	progression, err := h.trophyService.GetProgression(ctx, clerkID, time.Now().UTC())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error getting trophies")
		return
	}

	respondWithJSON(w, http.StatusOK, progression)
}

func (h *TrophyHandler) GetPendingTrophies(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	pending, err := h.trophyService.GetPendingTrophies(ctx, clerkID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error getting pending trophies")
		return
	}

	respondWithJSON(w, http.StatusOK, pending)
}

func (h *TrophyHandler) MarkTrophiesShown(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req trophy.MarkShownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.IDs) == 0 {
		respondWithError(w, http.StatusBadRequest, "No trophy ids provided")
		return
	}

	if err := h.trophyService.MarkTrophiesShownForUser(ctx, clerkID, req.IDs); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Trophies marked as shown"})
}

func (h *TrophyHandler) GetTrophyPath(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	path, err := h.trophyService.GetPath(ctx, clerkID, time.Now().UTC())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error getting trophy path")
		return
	}

	respondWithJSON(w, http.StatusOK, path)
}
