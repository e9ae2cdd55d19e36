package postgres

import (
	"database/sql"
	"maike/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID             uuid.UUID     `db:"id"              goqu:"skipinsert"`
	Username       string        `db:"username"`
	Email          string        `db:"email"`
	HashedPassword []byte        `db:"hashed_password"`
	ProfileImage   uuid.NullUUID `db:"profile_image"   goqu:"skipinsert"`
	CreatedAt      time.Time     `db:"created_at"      goqu:"skipinsert"`
	UpdatedAt      sql.NullTime  `db:"updated_at"      goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	u := &domain.User{
		ID:             domain.UserID(p.ID),
		Username:       p.Username,
		Email:          p.Email,
		HashedPassword: p.HashedPassword,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}
	if p.ProfileImage.Valid {
		id := domain.BlobID(p.ProfileImage.UUID)
		u.ProfileImage = &id
	}

	return u
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:             uuid.UUID(user.ID),
		Username:       user.Username,
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
		CreatedAt:      user.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  user.UpdatedAt,
			Valid: !user.UpdatedAt.IsZero(),
		},
	}
	if user.ProfileImage != nil {
		p.ProfileImage = uuid.NullUUID{UUID: uuid.UUID(*user.ProfileImage), Valid: true}
	}
}

type PgList struct {
	ID                 uuid.UUID      `db:"id"                  goqu:"skipinsert"`
	UserID             uuid.UUID      `db:"user_id"`
	ClothingAccessory  string         `db:"clothing_accessory"`
	HairColor          string         `db:"hair_color"`
	Gender             string         `db:"gender"`
	Background         string         `db:"background"`
	ArtStyle           string         `db:"art_style"`
	WebsiteStyle       string         `db:"website_style"`
	GenerationStatus   string         `db:"generation_status"`
	GenerationAttempts uint           `db:"generation_attempts" goqu:"skipinsert"`
	LastError          sql.NullString `db:"last_error"          goqu:"skipinsert"`
	CreatedAt          time.Time      `db:"created_at"          goqu:"skipinsert"`
	UpdatedAt          sql.NullTime   `db:"updated_at"          goqu:"skipinsert"`
	DeletedAt          sql.NullTime   `db:"deleted_at"          goqu:"skipinsert"`
}

func (p *PgList) ToDomain() *domain.List {
	return &domain.List{
		ID:     domain.ListID(p.ID),
		UserID: domain.UserID(p.UserID),
		Attributes: domain.Attributes{
			ClothingAccessory: p.ClothingAccessory,
			HairColor:         p.HairColor,
			Gender:            p.Gender,
			Background:        p.Background,
			ArtStyle:          p.ArtStyle,
			WebsiteStyle:      p.WebsiteStyle,
		},
		GenerationStatus:   domain.GenerationStatus(p.GenerationStatus),
		GenerationAttempts: p.GenerationAttempts,
		LastError:          p.LastError.String,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt.Time,
		DeletedAt:          p.DeletedAt.Time,
	}
}

func (p *PgList) FromDomain(list domain.List) {
	status := list.GenerationStatus
	if status == "" {
		status = domain.GenerationStatusNone
	}
	*p = PgList{
		ID:                 uuid.UUID(list.ID),
		UserID:             uuid.UUID(list.UserID),
		ClothingAccessory:  list.Attributes.ClothingAccessory,
		HairColor:          list.Attributes.HairColor,
		Gender:             list.Attributes.Gender,
		Background:         list.Attributes.Background,
		ArtStyle:           list.Attributes.ArtStyle,
		WebsiteStyle:       list.Attributes.WebsiteStyle,
		GenerationStatus:   string(status),
		GenerationAttempts: list.GenerationAttempts,
		LastError: sql.NullString{
			String: list.LastError,
			Valid:  list.LastError != "",
		},
		CreatedAt: list.CreatedAt,
	}
}

func pgListsToDomain(lists []PgList) []domain.List {
	out := make([]domain.List, 0, len(lists))
	for i := range lists {
		out = append(out, *lists[i].ToDomain())
	}

	return out
}

type PgImage struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	UserID    uuid.UUID `db:"user_id"`
	ListID    uuid.UUID `db:"list_id"`
	URL       string    `db:"url"`
	Prompt    string    `db:"prompt"`
	Saved     bool      `db:"saved"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgImage) ToDomain() *domain.Image {
	return &domain.Image{
		ID:        domain.ImageID(p.ID),
		UserID:    domain.UserID(p.UserID),
		ListID:    domain.ListID(p.ListID),
		URL:       p.URL,
		Prompt:    p.Prompt,
		Saved:     p.Saved,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgImage) FromDomain(image domain.Image) {
	*p = PgImage{
		ID:        uuid.UUID(image.ID),
		UserID:    uuid.UUID(image.UserID),
		ListID:    uuid.UUID(image.ListID),
		URL:       image.URL,
		Prompt:    image.Prompt,
		Saved:     image.Saved,
		CreatedAt: image.CreatedAt,
	}
}

func domainImagesToPg(images []domain.Image) []PgImage {
	out := make([]PgImage, len(images))
	for i := range out {
		out[i].FromDomain(images[i])
	}

	return out
}

func pgImagesToDomain(images []PgImage) []domain.Image {
	out := make([]domain.Image, 0, len(images))
	for i := range images {
		out = append(out, *images[i].ToDomain())
	}

	return out
}

type PgBlobFile struct {
	ID          uuid.UUID `db:"id"`
	Filename    string    `db:"filename"`
	ContentType string    `db:"content_type"`
	Length      int64     `db:"length"`
	ChunkSize   int       `db:"chunk_size"`
	UploadedAt  time.Time `db:"uploaded_at" goqu:"skipinsert"`
}

func (p *PgBlobFile) ToDomain() *domain.BlobFile {
	return &domain.BlobFile{
		ID:          domain.BlobID(p.ID),
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Length:      p.Length,
		ChunkSize:   p.ChunkSize,
		UploadedAt:  p.UploadedAt,
	}
}

type PgBlobChunk struct {
	FileID uuid.UUID `db:"file_id"`
	N      int       `db:"n"`
	Data   []byte    `db:"data"`
}
