package main

import (
	"errors"
	"fmt"
	"net/http"

	"subfun-backend/internal/app/consume"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type consumeRequest struct {
	SessionKey    string `json:"sessionKey"`
	WalletAddress string `json:"walletAddress"`
	Dose          string `json:"dose"`
}

func consumeHandler(svc *consume.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req consumeRequest
		if err := decodeBody(r, &req); err != nil {
			writeAPIError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		res, err := svc.Consume(r.Context(), id, consume.ConsumeInput{
			SessionKey:    req.SessionKey,
			WalletAddress: req.WalletAddress,
			Dose:          req.Dose,
		})
		if err != nil {
			var tolErr *consume.ToleranceError
			var balErr *consume.InsufficientBalanceError
			switch {
			case errors.Is(err, consume.ErrSubstanceNotFound):
				writeAPIError(w, http.StatusNotFound, fmt.Sprintf("Substance '%s' not found", id))
			case errors.Is(err, consume.ErrSessionKeyRequired):
				writeAPIError(w, http.StatusBadRequest, "Session key required")
			case errors.As(err, &tolErr):
				writeEnvelope(w, http.StatusTooManyRequests, map[string]any{
					"success":           false,
					"error":             "Tolerance too high. Wait for cooldown or use stronger variant.",
					"currentTolerance":  tolErr.Tolerance,
					"cooldownRemaining": tolErr.CooldownRemaining,
				})
			case errors.As(err, &balErr):
				writeEnvelope(w, http.StatusPaymentRequired, map[string]any{
					"success":  false,
					"error":    "Insufficient balance",
					"required": fmt.Sprintf("%.4f", balErr.Required),
					"current":  fmt.Sprintf("%.4f", balErr.Current),
				})
			default:
				log.Error().Err(err).Str("substance", id).Msg("consume failed")
				writeAPIError(w, http.StatusInternalServerError, "Failed to consume substance")
			}
			return
		}
		writeData(w, res)
	}
}

func consumeStatusHandler(svc *consume.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionKey := chi.URLParam(r, "sessionKey")
		res, err := svc.Status(r.Context(), sessionKey)
		if err != nil {
			log.Error().Err(err).Msg("status failed")
			writeAPIError(w, http.StatusInternalServerError, "Failed to get status")
			return
		}
		writeData(w, res)
	}
}

func clearSubstancesHandler(svc *consume.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionKey := chi.URLParam(r, "sessionKey")
		res, err := svc.ClearAll(r.Context(), sessionKey)
		if err != nil {
			if errors.Is(err, consume.ErrSessionNotFound) {
				writeAPIError(w, http.StatusNotFound, "Session not found")
				return
			}
			log.Error().Err(err).Msg("clear failed")
			writeAPIError(w, http.StatusInternalServerError, "Failed to clear substances")
			return
		}
		writeData(w, res)
	}
}
