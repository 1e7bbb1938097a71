package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Abdullah403/lost-and-found/internal/imaging"
	"github.com/Abdullah403/lost-and-found/internal/model"
)

// UploadsHandler accepts item photos and serves them back.
type UploadsHandler struct {
	Uploads  UploadStore
	MaxBytes int64
}

// Upload handles POST /api/upload.
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)
	if err := r.ParseMultipartForm(h.MaxBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	photo, err := imaging.Inspect(file, imaging.DefaultOptions)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			jsonError(w, http.StatusBadRequest, "image must be JPEG, PNG or WebP")
			return
		}
		if errors.Is(err, imaging.ErrTooLarge) {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to process image", "error", err)
		jsonError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	upload := &model.Upload{
		Name:       uuid.NewString() + photo.Ext,
		Data:       photo.Data,
		MIME:       photo.MIME,
		UploadedBy: claims.UserID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.Uploads.CreateUpload(r.Context(), upload); err != nil {
		slog.Error("failed to store upload", "error", err)
		jsonError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	slog.Info("image uploaded", "user", claims.Email, "name", upload.Name, "bytes", len(upload.Data))
	jsonResponse(w, http.StatusOK, map[string]string{"url": upload.URL()})
}

// Serve handles GET /uploads/{name}.
func (h *UploadsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	upload, err := h.Uploads.GetUpload(r.Context(), r.PathValue("name"))
	if err != nil {
		slog.Error("failed to get upload", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if upload == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", upload.MIME)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if _, err := w.Write(upload.Data); err != nil {
		slog.Error("failed to write upload response", "error", err)
	}
}
