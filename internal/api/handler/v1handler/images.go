package v1handler

import (
	"maike/pkg/domain"
	"net/http"

	"github.com/google/uuid"
)

// UserImages handles GET /api/images/user/{userId}.
func (h *Handler) UserImages(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathUUID(r, "userId")
	if err != nil {
		writeError(w, r, err)

		return
	}

	images, err := h.deps.Gallery.UserCollection(r.Context(), GetUserIDFromContext(r.Context()), domain.UserID(ownerID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, ToImagesResponse(images))
}

// SaveImage handles POST /api/images.
func (h *Handler) SaveImage(w http.ResponseWriter, r *http.Request) {
	var req SaveImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	img, err := h.deps.Gallery.Save(r.Context(),
		GetUserIDFromContext(r.Context()),
		domain.ListID(uuid.MustParse(req.ListID)),
		req.URL)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, ToImageResponse(img))
}

// UpdateImage handles PATCH /api/images/{id}.
func (h *Handler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req UpdateImageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	img, err := h.deps.Gallery.SetSaved(r.Context(), GetUserIDFromContext(r.Context()), domain.ImageID(id), *req.Saved)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, ToImageResponse(img))
}

// DeleteImage handles DELETE /api/images/{id}.
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Gallery.Delete(r.Context(), GetUserIDFromContext(r.Context()), domain.ImageID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
