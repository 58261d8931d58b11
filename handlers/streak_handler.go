package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"soberPathAPI/middleware"
	"soberPathAPI/services"
)

type StreakHandler struct {
	streakService *services.StreakService
	trophyService *services.TrophyService
}

func NewStreakHandler(streakService *services.StreakService, trophyService *services.TrophyService) *StreakHandler {
	return &StreakHandler{
		streakService: streakService,
		trophyService: trophyService,
	}
}

func (h *StreakHandler) GetStreak(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	overview, err := h.streakService.GetOverview(ctx, clerkID, time.Now().UTC())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error getting streak")
		return
	}

	// A failed pending fetch degrades to an empty list; the streak screen
	// must still render.
	pending, err := h.trophyService.GetPendingTrophies(ctx, clerkID)
	if err != nil {
		log.Printf("GetStreak Handler: failed to fetch pending trophies: %v", err)
	} else {
		overview.PendingTrophies = pending
	}

	respondWithJSON(w, http.StatusOK, overview)
}

func (h *StreakHandler) StartStreak(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req struct {
		StartedAt *time.Time `json:"started_at"`
	}
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	startedAt := time.Now().UTC()
	if req.StartedAt != nil {
		startedAt = req.StartedAt.UTC()
	}

	st, err := h.streakService.StartStreak(ctx, clerkID, startedAt)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, st)
}

func (h *StreakHandler) ResetStreak(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clerkID, ok := middleware.GetClerkID(ctx)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.streakService.ResetStreak(ctx, clerkID); err != nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Streak reset successfully"})
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
