package postgres

import (
	"context"
	"fmt"
	"maike/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	imagesTable = "images"
)

func (p *PgSQL) StoreImages(ctx context.Context, images ...domain.Image) ([]domain.Image, error) {
	if len(images) == 0 {
		return nil, nil
	}

	var result []PgImage
	if err := p.Builder.Insert(imagesTable).
		Rows(domainImagesToPg(images)).
		Returning(&PgImage{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store images into pg: %w", err)
	}

	return pgImagesToDomain(result), nil
}

func (p *PgSQL) ImageByID(ctx context.Context, id domain.ImageID) (*domain.Image, error) {
	var row PgImage
	found, err := p.Builder.From(imagesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch image by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ListImages(ctx context.Context, listID domain.ListID) ([]domain.Image, error) {
	var rows []PgImage
	if err := p.Builder.From(imagesTable).
		Where(goqu.I("list_id").Eq(uuid.UUID(listID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch list images from pg: %w", err)
	}

	return pgImagesToDomain(rows), nil
}

func (p *PgSQL) UserSavedImages(ctx context.Context, userID domain.UserID) ([]domain.Image, error) {
	var rows []PgImage
	if err := p.Builder.From(imagesTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("saved").IsTrue(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch saved images from pg: %w", err)
	}

	return pgImagesToDomain(rows), nil
}

func (p *PgSQL) SetImageSaved(ctx context.Context, id domain.ImageID, saved bool) (*domain.Image, error) {
	var row PgImage
	found, err := p.Builder.Update(imagesTable).
		Set(goqu.Record{"saved": saved}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgImage{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update image in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteImage(ctx context.Context, userID domain.UserID, id domain.ImageID) (*domain.Image, error) {
	var row PgImage
	found, err := p.Builder.Delete(imagesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Returning(&PgImage{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete image in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
