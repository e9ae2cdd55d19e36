package v1handler

import (
	"maike/pkg/domain"
	"strings"
	"time"
)

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID           domain.UserID    `json:"_id"`
	Username     string           `json:"username"`
	Email        string           `json:"email"`
	Lists        []domain.ListID  `json:"lists"`
	Images       []domain.ImageID `json:"images"`
	ProfileImage *domain.BlobID   `json:"profileImage"`
}

func ToUserResponse(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	out := &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Lists:        u.Lists,
		Images:       u.Images,
		ProfileImage: u.ProfileImage,
	}
	if out.Lists == nil {
		out.Lists = []domain.ListID{}
	}
	if out.Images == nil {
		out.Images = []domain.ImageID{}
	}

	return out
}

// SessionResponse is answered by register and login.
type SessionResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=30"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
}

func (r *RegisterRequest) normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
}

func (r *LoginRequest) normalize() { r.Email = strings.TrimSpace(r.Email) }

type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitnil,min=2,max=30"`
	Email    *string `json:"email"    validate:"omitnil,email"`
}

func (r *UpdateUserRequest) normalize() {
	for _, f := range []*string{r.Username, r.Email} {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// UploadResponse is answered by the profile picture upload.
type UploadResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

type CreateListRequest struct {
	ClothingAccessory string `json:"clothingAccessory" validate:"required,catalog=clothingAccessory"`
	HairColor         string `json:"hairColor"         validate:"required,catalog=hairColor"`
	Gender            string `json:"gender"            validate:"required,catalog=gender"`
	Background        string `json:"background"        validate:"required,catalog=background"`
	ArtStyle          string `json:"artStyle"          validate:"required,catalog=artStyle"`
	WebsiteStyle      string `json:"websiteStyle"      validate:"required,catalog=websiteStyle"`
}

type UpdateListRequest struct {
	ClothingAccessory string `json:"clothingAccessory" validate:"omitempty,catalog=clothingAccessory"`
	HairColor         string `json:"hairColor"         validate:"omitempty,catalog=hairColor"`
	Gender            string `json:"gender"            validate:"omitempty,catalog=gender"`
	Background        string `json:"background"        validate:"omitempty,catalog=background"`
	ArtStyle          string `json:"artStyle"          validate:"omitempty,catalog=artStyle"`
	WebsiteStyle      string `json:"websiteStyle"      validate:"omitempty,catalog=websiteStyle"`
}

// ListResponse is the public shape of an attribute list.
type ListResponse struct {
	ID     domain.ListID `json:"_id"`
	UserID domain.UserID `json:"user"`
	domain.Attributes
	GenerationStatus   domain.GenerationStatus `json:"generationStatus"`
	GenerationAttempts uint                    `json:"generationAttempts"`
	CreatedAt          time.Time               `json:"createdAt"`
	UpdatedAt          time.Time               `json:"updatedAt"`
}

func ToListResponse(l *domain.List) *ListResponse {
	return &ListResponse{
		ID:                 l.ID,
		UserID:             l.UserID,
		Attributes:         l.Attributes,
		GenerationStatus:   l.GenerationStatus,
		GenerationAttempts: l.GenerationAttempts,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

func ToListsResponse(in []domain.List) []*ListResponse {
	out := make([]*ListResponse, 0, len(in))
	for i := range in {
		out = append(out, ToListResponse(&in[i]))
	}

	return out
}

type SaveImageRequest struct {
	ListID string `json:"listId" validate:"required,uuid"`
	URL    string `json:"url"    validate:"required,http_url"`
}

type UpdateImageRequest struct {
	Saved *bool `json:"saved" validate:"required"`
}

// ImageResponse is the public shape of an image.
type ImageResponse struct {
	ID        domain.ImageID `json:"_id"`
	UserID    domain.UserID  `json:"user"`
	ListID    domain.ListID  `json:"list"`
	URL       string         `json:"url"`
	Prompt    string         `json:"prompt"`
	Saved     bool           `json:"saved"`
	CreatedAt time.Time      `json:"createdAt"`
}

func ToImageResponse(img *domain.Image) *ImageResponse {
	return &ImageResponse{
		ID:        img.ID,
		UserID:    img.UserID,
		ListID:    img.ListID,
		URL:       img.URL,
		Prompt:    img.Prompt,
		Saved:     img.Saved,
		CreatedAt: img.CreatedAt,
	}
}

// ImagesResponse wraps a set of images.
type ImagesResponse struct {
	Images []*ImageResponse `json:"images"`
}

func ToImagesResponse(in []domain.Image) ImagesResponse {
	out := make([]*ImageResponse, 0, len(in))
	for i := range in {
		out = append(out, ToImageResponse(&in[i]))
	}

	return ImagesResponse{Images: out}
}
