package v1handler_test

import (
	"net/http"
	"testing"

	"maike/internal/api/handler/v1handler"
	"maike/internal/lists"
	"maike/pkg/domain"
	"maike/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validAttributes() domain.Attributes {
	return domain.Attributes{
		ClothingAccessory: "Hoodie",
		HairColor:         "Silver",
		Gender:            "girl",
		Background:        "Night",
		ArtStyle:          "Digital Art",
		WebsiteStyle:      "Pixiv",
	}
}

func TestCreateList(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t, v1handler.Options{})
		attrs := validAttributes()
		list := &domain.List{
			ID:               domain.ListID(uuid.New()),
			UserID:           f.userID(),
			Attributes:       attrs,
			GenerationStatus: domain.GenerationStatusNone,
		}
		f.lists.EXPECT().Create(gomock.Any(), f.userID(), attrs).Return(list, nil)

		rec := f.do(t, http.MethodPost, "/api/lists", attrs, true)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		res := decode[v1handler.ListResponse](t, rec)
		require.Equal(t, list.ID, res.ID)
		require.Equal(t, f.userID(), res.UserID)
		require.Equal(t, "Hoodie", res.ClothingAccessory)
	})

	t.Run("rejects values outside the catalog", func(t *testing.T) {
		f := newFixture(t, v1handler.Options{})
		attrs := validAttributes()
		attrs.HairColor = "Plaid"
		attrs.Gender = ""

		rec := f.do(t, http.MethodPost, "/api/lists", attrs, true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, map[string]string{
			"hairColor": "hairColor is not a valid option",
			"gender":    "Gender field is required",
		}, decode[v1handler.ErrorResponse](t, rec).Errors)
	})
}

func TestUserLists(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	other := domain.UserID(uuid.New())

	f.lists.EXPECT().UserLists(gomock.Any(), f.userID(), f.userID()).Return(nil, nil)
	rec := f.do(t, http.MethodGet, "/api/lists/user/"+f.userID().String(), nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())

	f.lists.EXPECT().UserLists(gomock.Any(), f.userID(), other).
		Return(nil, serrors.With(serrors.ErrForbidden, "lists belong to another user"))
	rec = f.do(t, http.MethodGet, "/api/lists/user/"+other.String(), nil, true)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/lists/user/nope", nil, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decode[v1handler.ErrorResponse](t, rec).Errors, "userId")
}

func TestGetList(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "found", want: http.StatusOK},
		{name: "missing", err: serrors.With(serrors.ErrNotFound, "list not found"), want: http.StatusNotFound},
		{name: "foreign", err: serrors.With(serrors.ErrForbidden, "list belongs to another user"), want: http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t, v1handler.Options{})
			id := domain.ListID(uuid.New())

			var list *domain.List
			if c.err == nil {
				list = &domain.List{ID: id, UserID: f.userID(), Attributes: validAttributes()}
			}
			f.lists.EXPECT().Get(gomock.Any(), f.userID(), id).Return(list, c.err)

			rec := f.do(t, http.MethodGet, "/api/lists/"+id.String(), nil, true)
			require.Equal(t, c.want, rec.Code)
		})
	}
}

func TestUpdateList(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	id := domain.ListID(uuid.New())
	attrs := validAttributes()
	attrs.Background = "Beach"

	f.lists.EXPECT().Update(gomock.Any(), f.userID(), id, lists.Patch{Background: "Beach"}).
		Return(&domain.List{ID: id, UserID: f.userID(), Attributes: attrs}, nil)

	rec := f.do(t, http.MethodPatch, "/api/lists/"+id.String(), map[string]string{"background": "Beach"}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Beach", decode[v1handler.ListResponse](t, rec).Background)

	rec = f.do(t, http.MethodPatch, "/api/lists/"+id.String(), map[string]string{"background": "Moon"}, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteList(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	id := domain.ListID(uuid.New())

	f.lists.EXPECT().Delete(gomock.Any(), f.userID(), id).Return(nil)
	rec := f.do(t, http.MethodDelete, "/api/lists/"+id.String(), nil, true)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestGenerateImages(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	id := domain.ListID(uuid.New())

	f.lists.EXPECT().Generate(gomock.Any(), f.userID(), id).Return(&domain.List{
		ID:               id,
		UserID:           f.userID(),
		Attributes:       validAttributes(),
		GenerationStatus: domain.GenerationStatusPending,
	}, nil)

	rec := f.do(t, http.MethodPost, "/api/lists/"+id.String()+"/images", nil, true)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, domain.GenerationStatusPending, decode[v1handler.ListResponse](t, rec).GenerationStatus)
}

func TestListImages(t *testing.T) {
	f := newFixture(t, v1handler.Options{})
	id := domain.ListID(uuid.New())

	f.lists.EXPECT().Images(gomock.Any(), f.userID(), id).Return([]domain.Image{
		{ID: domain.ImageID(uuid.New()), UserID: f.userID(), ListID: id, URL: "https://cdn.example.com/a.png"},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/lists/"+id.String()+"/images", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[v1handler.ImagesResponse](t, rec)
	require.Len(t, res.Images, 1)
	require.Equal(t, "https://cdn.example.com/a.png", res.Images[0].URL)
}
