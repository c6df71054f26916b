// Package api exposes an HTTP surface for requesting presigned URLs
// on demand, for operators who need a link after the transfer-time
// notification has scrolled away.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/tendant/transfer-notify/pkg/transfernotify"
)

// PresignHandler handles HTTP requests for presigned URLs. It applies
// the same expiration rule as the transfer-time notifier: with a zero
// expiration window issuance is disabled.
type PresignHandler struct {
	store         *transfernotify.StorageContext
	hoursToExpire int
	clock         transfernotify.Clock
}

// NewPresignHandler creates a new presign handler. The storage
// context must be non-nil and carry a signer; negative expiration
// windows are clamped to zero.
func NewPresignHandler(store *transfernotify.StorageContext, hoursToExpire int) (*PresignHandler, error) {
	if store == nil {
		return nil, transfernotify.ErrNilStorageContext
	}
	if store.Signer == nil {
		return nil, transfernotify.ErrNilSigner
	}
	return &PresignHandler{
		store:         store,
		hoursToExpire: max(hoursToExpire, 0),
		clock:         time.Now,
	}, nil
}

// Routes returns the routes for presigning
func (h *PresignHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/presign", h.Presign)
	r.Get("/health", h.Health)

	return r
}

// PresignRequest is the request body for presigning a resource
type PresignRequest struct {
	Resource string `json:"resource"`
}

// PresignResponse is the response body for a presigned URL
type PresignResponse struct {
	Resource  string    `json:"resource"`
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Presign generates a presigned URL for an already-uploaded resource
func (h *PresignHandler) Presign(w http.ResponseWriter, r *http.Request) {
	var req PresignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Resource == "" {
		http.Error(w, "resource is required", http.StatusBadRequest)
		return
	}

	if h.hoursToExpire == 0 {
		http.Error(w, "presigned URL generation is disabled", http.StatusConflict)
		return
	}

	expiresAt := h.clock().Add(time.Duration(h.hoursToExpire) * time.Hour)
	key := h.store.KeyPrefix + req.Resource

	url, err := h.store.Signer.SignURL(r.Context(), h.store.Bucket, key, expiresAt)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	render.JSON(w, r, PresignResponse{
		Resource:  req.Resource,
		Key:       key,
		URL:       url,
		ExpiresAt: expiresAt,
	})
}

// Health reports readiness
func (h *PresignHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}
