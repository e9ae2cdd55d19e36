package v1handler

import (
	"maike/internal/lists"
	"maike/pkg/domain"
	"net/http"
)

// CreateList handles POST /api/lists.
func (h *Handler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req CreateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.deps.Lists.Create(r.Context(), GetUserIDFromContext(r.Context()), domain.Attributes{
		ClothingAccessory: req.ClothingAccessory,
		HairColor:         req.HairColor,
		Gender:            req.Gender,
		Background:        req.Background,
		ArtStyle:          req.ArtStyle,
		WebsiteStyle:      req.WebsiteStyle,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, ToListResponse(l))
}

// UserLists handles GET /api/lists/user/{userId}.
func (h *Handler) UserLists(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathUUID(r, "userId")
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Lists.UserLists(r.Context(), GetUserIDFromContext(r.Context()), domain.UserID(ownerID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, ToListsResponse(res))
}

// GetList handles GET /api/lists/{id}.
func (h *Handler) GetList(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	l, err := h.deps.Lists.Get(r.Context(), GetUserIDFromContext(r.Context()), domain.ListID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, ToListResponse(l))
}

// UpdateList handles PATCH /api/lists/{id}.
func (h *Handler) UpdateList(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	var req UpdateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l, err := h.deps.Lists.Update(r.Context(), GetUserIDFromContext(r.Context()), domain.ListID(id), lists.Patch{
		ClothingAccessory: req.ClothingAccessory,
		HairColor:         req.HairColor,
		Gender:            req.Gender,
		Background:        req.Background,
		ArtStyle:          req.ArtStyle,
		WebsiteStyle:      req.WebsiteStyle,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, ToListResponse(l))
}

// DeleteList handles DELETE /api/lists/{id}.
func (h *Handler) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	if err := h.deps.Lists.Delete(r.Context(), GetUserIDFromContext(r.Context()), domain.ListID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GenerateImages handles POST /api/lists/{id}/images.
func (h *Handler) GenerateImages(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	l, err := h.deps.Lists.Generate(r.Context(), GetUserIDFromContext(r.Context()), domain.ListID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusAccepted, ToListResponse(l))
}

// ListImages handles GET /api/lists/{id}/images.
func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)

		return
	}

	images, err := h.deps.Lists.Images(r.Context(), GetUserIDFromContext(r.Context()), domain.ListID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, ToImagesResponse(images))
}
