package postgres

import (
	"context"
	"fmt"
	"maike/pkg/domain"
	"maike/pkg/storage"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable = "users"
)

func lowerEmailEq(email string) goqu.Expression {
	return goqu.Func("lower", goqu.I("email")).Eq(strings.ToLower(email))
}

// withRelations fills in the IDs of the user's lists and saved images.
func (p *PgSQL) withRelations(ctx context.Context, row *PgUser) (*domain.User, error) {
	user := row.ToDomain()

	var listIDs []uuid.UUID
	if err := p.Builder.From(listsTable).
		Select("id").
		Where(
			goqu.I("user_id").Eq(row.ID),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanValsContext(ctx, &listIDs); err != nil {
		return nil, fmt.Errorf("could not fetch user list ids from pg: %w", err)
	}

	var imageIDs []uuid.UUID
	if err := p.Builder.From(imagesTable).
		Select("id").
		Where(
			goqu.I("user_id").Eq(row.ID),
			goqu.I("saved").IsTrue(),
		).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanValsContext(ctx, &imageIDs); err != nil {
		return nil, fmt.Errorf("could not fetch user image ids from pg: %w", err)
	}

	user.Lists = make([]domain.ListID, 0, len(listIDs))
	for _, id := range listIDs {
		user.Lists = append(user.Lists, domain.ListID(id))
	}
	user.Images = make([]domain.ImageID, 0, len(imageIDs))
	for _, id := range imageIDs {
		user.Images = append(user.Images, domain.ImageID(id))
	}

	return user, nil
}

func (p *PgSQL) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", translateError(err))
	}

	out := stored.ToDomain()
	out.Lists = []domain.ListID{}
	out.Images = []domain.ImageID{}

	return out, nil
}

func (p *PgSQL) userWhere(ctx context.Context, where ...goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return p.withRelations(ctx, &row)
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, lowerEmailEq(email))
}

func (p *PgSQL) UsersByEmailOrUsername(ctx context.Context, email, username string) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(goqu.Or(
			lowerEmailEq(email),
			goqu.I("username").Eq(username),
		)).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// UpdateUser sets the provided fields and updated_at, returning the updated user.
func (p *PgSQL) UpdateUser(ctx context.Context, id domain.UserID, updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Username != nil {
		rec["username"] = *updates.Username
	}
	if updates.Email != nil {
		rec["email"] = *updates.Email
	}
	if updates.ProfileImage != nil {
		rec["profile_image"] = uuid.UUID(*updates.ProfileImage)
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return p.withRelations(ctx, &row)
}
