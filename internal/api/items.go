package api

import (
	"net/http"

	"github.com/Abdullah403/lost-and-found/internal/items"
	"github.com/Abdullah403/lost-and-found/internal/model"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	Service *items.Service
}

type verificationRequest struct {
	Verified *bool `json:"verified"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.ItemFilter{
		Search:       q.Get("search"),
		Category:     q.Get("category"),
		Location:     q.Get("location"),
		Status:       q.Get("status"),
		VerifiedOnly: q.Get("verified") == "true",
	}

	list, err := h.Service.List(r.Context(), filter)
	if err != nil {
		serviceError(w, err, "Failed to fetch items")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"items": list})
}

// Categories handles GET /api/categories.
func (h *ItemsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]any{"categories": model.Categories})
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft model.ItemDraft
	if err := decodeJSON(w, r, &draft); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.Create(r.Context(), principal(r), draft)
	if err != nil {
		serviceError(w, err, "Failed to create item")
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]any{
		"message": "Item created successfully",
		"item":    item,
	})
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		serviceError(w, err, "Failed to fetch item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"item": item})
}

// Update handles PUT /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ItemPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.Update(r.Context(), principal(r), r.PathValue("id"), patch)
	if err != nil {
		serviceError(w, err, "Failed to update item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Item updated successfully",
		"item":    item,
	})
}

// SetVerified handles PUT /api/items/{id}/verification.
func (h *ItemsHandler) SetVerified(w http.ResponseWriter, r *http.Request) {
	var req verificationRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Verified == nil {
		jsonError(w, http.StatusBadRequest, "verified (boolean) required")
		return
	}

	item, err := h.Service.SetVerified(r.Context(), principal(r), r.PathValue("id"), *req.Verified)
	if err != nil {
		serviceError(w, err, "Failed to update item")
		return
	}

	message := "Item unverified successfully"
	if item.Verified {
		message = "Item verified successfully"
	}
	jsonResponse(w, http.StatusOK, map[string]any{"message": message, "item": item})
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context(), principal(r), r.PathValue("id")); err != nil {
		serviceError(w, err, "Failed to delete item")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
}
