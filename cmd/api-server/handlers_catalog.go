package main

import (
	"fmt"
	"net/http"

	"subfun-backend/internal/catalog"

	"github.com/go-chi/chi/v5"
)

func listSubstancesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs := catalog.All()
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"count":   len(subs),
			"data":    subs,
		})
	}
}

func listCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeData(w, catalog.Categories())
	}
}

func substancesByCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		subs := catalog.ByCategory(category)
		if len(subs) == 0 {
			writeAPIError(w, http.StatusNotFound, fmt.Sprintf("Category '%s' not found", category))
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success":  true,
			"category": category,
			"count":    len(subs),
			"data":     subs,
		})
	}
}

func getSubstanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		sub, ok := catalog.ByID(id)
		if !ok {
			writeAPIError(w, http.StatusNotFound, fmt.Sprintf("Substance '%s' not found", id))
			return
		}
		writeData(w, sub)
	}
}
