package item

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/AnotherWeak/prova/internal/entities/game"
	"github.com/AnotherWeak/prova/internal/errors"
	"github.com/AnotherWeak/prova/internal/pkg/clock"
)

const itemsTable = "items"

var itemColumns = []string{
	"id", "name", "type", "strength", "defense", "owner_id", "created_at", "updated_at",
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite item repository.
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewSQLite creates a new SQLite-backed item repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &sqliteRepository{
		db:    cfg.DB,
		clock: c,
	}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument("item cannot be nil")
	}

	now := r.clock.Now().Unix()

	query, args, err := sq.
		Insert(itemsTable).
		Columns("name", "type", "strength", "defense", "owner_id", "created_at", "updated_at").
		Values(input.Item.Name, string(input.Item.Type),
			input.Item.Strength, input.Item.Defense, input.Item.OwnerID, now, now).
		ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build insert query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create item")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read assigned item ID")
	}

	created := *input.Item
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now

	slog.DebugContext(ctx, "created item",
		"item_id", id,
		"type", created.Type,
	)

	return &CreateOutput{Item: &created}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	query, args, err := sq.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"id": input.ID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build select query")
	}

	it, err := scanItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("item with ID %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get item")
	}

	return &GetOutput{Item: it}, nil
}

func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	builder := sq.
		Select(itemColumns...).
		From(itemsTable).
		OrderBy("id")
	if input.Limit > 0 {
		builder = builder.Limit(uint64(input.Limit))
	}
	if input.Skip > 0 {
		// SQLite requires LIMIT when OFFSET is present
		if input.Limit <= 0 {
			builder = builder.Limit(^uint64(0) >> 1)
		}
		builder = builder.Offset(uint64(input.Skip))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build list query")
	}

	return r.queryItems(ctx, query, args, "failed to list items")
}

func (r *sqliteRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	query, args, err := sq.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"owner_id": input.OwnerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build list query")
	}

	out, err := r.queryItems(ctx, query, args, "failed to list items by owner")
	if err != nil {
		return nil, err
	}
	return &ListByOwnerOutput{Items: out.Items}, nil
}

func (r *sqliteRepository) ListByOwners(ctx context.Context, input ListByOwnersInput) (*ListByOwnersOutput, error) {
	if len(input.OwnerIDs) == 0 {
		return &ListByOwnersOutput{}, nil
	}

	query, args, err := sq.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"owner_id": input.OwnerIDs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build list query")
	}

	out, err := r.queryItems(ctx, query, args, "failed to list items by owners")
	if err != nil {
		return nil, err
	}
	return &ListByOwnersOutput{Items: out.Items}, nil
}

func (r *sqliteRepository) SetOwner(ctx context.Context, input SetOwnerInput) (*SetOwnerOutput, error) {
	// Conditional update: only lands while the item is unowned or already
	// owned by this character, so two racing attaches cannot both win.
	query, args, err := sq.
		Update(itemsTable).
		Set("owner_id", input.OwnerID).
		Set("updated_at", r.clock.Now().Unix()).
		Where(sq.Eq{"id": input.ItemID}).
		Where(sq.Or{sq.Eq{"owner_id": nil}, sq.Eq{"owner_id": input.OwnerID}}).
		ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build update query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		// The partial unique index on amulet ownership is the storage-level
		// backstop for the per-character amulet limit.
		if strings.Contains(err.Error(), "idx_items_owner_amulet") {
			return nil, errors.FailedPrecondition("character already has an amulet")
		}
		return nil, errors.Wrapf(err, "failed to assign item")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read affected rows")
	}

	if affected == 0 {
		// Distinguish a missing item from one owned elsewhere
		out, err := r.Get(ctx, GetInput{ID: input.ItemID})
		if err != nil {
			return nil, err
		}
		slog.DebugContext(ctx, "rejected item assignment",
			"item_id", input.ItemID,
			"requested_owner", input.OwnerID,
			"current_owner", out.Item.OwnerID,
		)
		return nil, errors.FailedPrecondition("item is already assigned to another character")
	}

	out, err := r.Get(ctx, GetInput{ID: input.ItemID})
	if err != nil {
		return nil, err
	}

	return &SetOwnerOutput{Item: out.Item}, nil
}

func (r *sqliteRepository) ClearOwner(ctx context.Context, input ClearOwnerInput) (*ClearOwnerOutput, error) {
	query, args, err := sq.
		Update(itemsTable).
		Set("owner_id", nil).
		Set("updated_at", r.clock.Now().Unix()).
		Where(sq.Eq{"id": input.ItemID, "owner_id": input.OwnerID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build update query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to release item")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read affected rows")
	}
	if affected == 0 {
		return nil, errors.NotFoundf("item with ID %d not found in character %d's inventory", input.ItemID, input.OwnerID)
	}

	return &ClearOwnerOutput{}, nil
}

func (r *sqliteRepository) queryItems(ctx context.Context, query string, args []any, failMsg string) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, failMsg)
	}
	defer func() { _ = rows.Close() }()

	var items []*game.MagicItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan item")
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate items")
	}

	return &ListOutput{Items: items}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*game.MagicItem, error) {
	var it game.MagicItem
	var itemType string
	var ownerID sql.NullInt64
	err := row.Scan(
		&it.ID, &it.Name, &itemType, &it.Strength, &it.Defense,
		&ownerID, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	it.Type = game.ItemType(itemType)
	if ownerID.Valid {
		it.OwnerID = &ownerID.Int64
	}
	return &it, nil
}
