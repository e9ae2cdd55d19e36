package postgres

import (
	"context"
	"fmt"
	"maike/pkg/domain"
	"maike/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	listsTable = "lists"
)

func (p *PgSQL) StoreList(ctx context.Context, list domain.List) (*domain.List, error) {
	var row PgList
	row.FromDomain(list)

	var stored PgList
	if _, err := p.Builder.Insert(listsTable).
		Rows(row).
		Returning(&PgList{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store list into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

// ListByID returns a list by its ID, excluding soft-deleted rows.
func (p *PgSQL) ListByID(ctx context.Context, id domain.ListID) (*domain.List, error) {
	var row PgList
	found, err := p.Builder.From(listsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch list by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserLists returns every live list of a user ordered by created_at DESC, id DESC.
func (p *PgSQL) UserLists(ctx context.Context, userID domain.UserID) ([]domain.List, error) {
	var rows []PgList
	if err := p.Builder.From(listsTable).
		Where(
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user lists from pg: %w", err)
	}

	return pgListsToDomain(rows), nil
}

// UpdateList updates a single live list. updated_at is always set.
func (p *PgSQL) UpdateList(ctx context.Context, id domain.ListID, updates storage.ListUpdates) (*domain.List, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if a := updates.Attributes; a != nil {
		rec["clothing_accessory"] = a.ClothingAccessory
		rec["hair_color"] = a.HairColor
		rec["gender"] = a.Gender
		rec["background"] = a.Background
		rec["art_style"] = a.ArtStyle
		rec["website_style"] = a.WebsiteStyle
	}
	if updates.Status != "" {
		rec["generation_status"] = string(updates.Status)
	}
	if updates.IncrementAttempts {
		rec["generation_attempts"] = goqu.L("generation_attempts + 1")
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgList
	found, err := p.Builder.Update(listsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgList{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update list in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteList performs a soft delete by setting deleted_at for the given list
// and owner, returning the deleted record.
func (p *PgSQL) DeleteList(ctx context.Context, userID domain.UserID, id domain.ListID) (*domain.List, error) {
	var row PgList
	found, err := p.Builder.Update(listsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgList{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete list in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
