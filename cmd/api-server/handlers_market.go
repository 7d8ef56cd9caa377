package main

import (
	"errors"
	"fmt"
	"net/http"

	"subfun-backend/internal/app/market"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func purchaseHandler(svc *market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req market.PurchaseInput
		if err := decodeBody(r, &req); err != nil {
			writeAPIError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		res, err := svc.Purchase(r.Context(), id, req)
		if err != nil {
			switch {
			case errors.Is(err, market.ErrSubstanceNotFound):
				writeAPIError(w, http.StatusNotFound, fmt.Sprintf("Substance '%s' not found", id))
			case errors.Is(err, market.ErrWalletRequired):
				writeAPIError(w, http.StatusBadRequest, "Wallet address required")
			default:
				log.Error().Err(err).Str("substance", id).Msg("purchase failed")
				writeAPIError(w, http.StatusInternalServerError, "Failed to process purchase")
			}
			return
		}
		writeData(w, res)
	}
}

func purchaseHistoryHandler(svc *market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.History(r.Context(), r.URL.Query().Get("walletAddress"))
		if err != nil {
			if errors.Is(err, market.ErrWalletRequired) {
				writeAPIError(w, http.StatusBadRequest, "Wallet address required")
				return
			}
			log.Error().Err(err).Msg("history failed")
			writeAPIError(w, http.StatusInternalServerError, "Failed to fetch purchase history")
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"count":   res.Count,
			"data":    res.Items,
		})
	}
}

func getInventoryHandler(svc *market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Inventory(r.Context(), r.URL.Query().Get("walletAddress"))
		if err != nil {
			if errors.Is(err, market.ErrWalletRequired) {
				writeAPIError(w, http.StatusBadRequest, "Wallet address required")
				return
			}
			log.Error().Err(err).Msg("inventory fetch failed")
			writeAPIError(w, http.StatusInternalServerError, "Failed to fetch inventory")
			return
		}
		writeData(w, res)
	}
}

func addInventoryHandler(svc *market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req market.AddInventoryInput
		if err := decodeBody(r, &req); err != nil {
			writeAPIError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		res, err := svc.AddToInventory(r.Context(), req)
		if err != nil {
			if errors.Is(err, market.ErrWalletRequired) {
				writeAPIError(w, http.StatusBadRequest, "Wallet address and substance ID required")
				return
			}
			log.Error().Err(err).Msg("inventory add failed")
			writeAPIError(w, http.StatusInternalServerError, "Failed to add to inventory")
			return
		}
		writeData(w, res)
	}
}

func getBalanceHandler(svc *market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		res, err := svc.Balance(r.Context(), q.Get("walletAddress"), q.Get("sessionKey"))
		if err != nil {
			if errors.Is(err, market.ErrWalletRequired) {
				writeAPIError(w, http.StatusBadRequest, "Wallet address required")
				return
			}
			log.Error().Err(err).Msg("balance fetch failed")
			writeAPIError(w, http.StatusInternalServerError, "Failed to fetch balance")
			return
		}
		writeData(w, res)
	}
}

func topupHandler(svc *market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req market.TopupInput
		if err := decodeBody(r, &req); err != nil {
			writeAPIError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		res, err := svc.Topup(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, market.ErrWalletRequired):
				writeAPIError(w, http.StatusBadRequest, "Wallet address, amount, and signature required")
			case errors.Is(err, market.ErrInvalidAmount):
				writeAPIError(w, http.StatusBadRequest, "Amount must be positive")
			default:
				log.Error().Err(err).Msg("topup failed")
				writeAPIError(w, http.StatusInternalServerError, "Failed to process topup")
			}
			return
		}
		writeData(w, res)
	}
}
