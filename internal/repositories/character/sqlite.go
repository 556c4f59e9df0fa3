package character

import (
	"context"
	"database/sql"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"github.com/AnotherWeak/prova/internal/entities/game"
	"github.com/AnotherWeak/prova/internal/errors"
	"github.com/AnotherWeak/prova/internal/pkg/clock"
)

const charactersTable = "characters"

var characterColumns = []string{
	"id", "name", "adventurer_name", "class", "level",
	"base_strength", "base_defense", "created_at", "updated_at",
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite character repository.
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

// NewSQLite creates a new SQLite-backed character repository
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
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
	if input.Character == nil {
		return nil, errors.InvalidArgument("character cannot be nil")
	}

	now := r.clock.Now().Unix()

	query, args, err := sq.
		Insert(charactersTable).
		Columns("name", "adventurer_name", "class", "level",
			"base_strength", "base_defense", "created_at", "updated_at").
		Values(input.Character.Name, input.Character.AdventurerName,
			string(input.Character.Class), input.Character.Level,
			input.Character.BaseStrength, input.Character.BaseDefense, now, now).
		ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build insert query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read assigned character ID")
	}

	created := *input.Character
	created.ID = id
	created.CreatedAt = now
	created.UpdatedAt = now

	slog.DebugContext(ctx, "created character",
		"character_id", id,
		"class", created.Class,
	)

	return &CreateOutput{Character: &created}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	query, args, err := sq.
		Select(characterColumns...).
		From(charactersTable).
		Where(sq.Eq{"id": input.ID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build select query")
	}

	char, err := scanCharacter(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("character with ID %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	return &GetOutput{Character: char}, nil
}

func (r *sqliteRepository) UpdateAdventurerName(ctx context.Context, input UpdateAdventurerNameInput) (*UpdateAdventurerNameOutput, error) {
	query, args, err := sq.
		Update(charactersTable).
		Set("adventurer_name", input.AdventurerName).
		Set("updated_at", r.clock.Now().Unix()).
		Where(sq.Eq{"id": input.ID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build update query")
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update adventurer name")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read affected rows")
	}
	if affected == 0 {
		return nil, errors.NotFoundf("character with ID %d not found", input.ID)
	}

	out, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &UpdateAdventurerNameOutput{Character: out.Character}, nil
}

// Delete releases the character's items and removes the character record
// in a single transaction so a failed delete never strands ownership.
func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	releaseQuery, releaseArgs, err := sq.
		Update("items").
		Set("owner_id", nil).
		Set("updated_at", r.clock.Now().Unix()).
		Where(sq.Eq{"owner_id": input.ID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build release query")
	}

	releaseResult, err := tx.ExecContext(ctx, releaseQuery, releaseArgs...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to release character items")
	}
	released, err := releaseResult.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read released item count")
	}

	deleteQuery, deleteArgs, err := sq.
		Delete(charactersTable).
		Where(sq.Eq{"id": input.ID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build delete query")
	}

	deleteResult, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	affected, err := deleteResult.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read affected rows")
	}
	if affected == 0 {
		return nil, errors.NotFoundf("character with ID %d not found", input.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit delete")
	}

	slog.DebugContext(ctx, "deleted character",
		"character_id", input.ID,
		"released_items", released,
	)

	return &DeleteOutput{ReleasedItems: released}, nil
}

func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	builder := sq.
		Select(characterColumns...).
		From(charactersTable).
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

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	defer func() { _ = rows.Close() }()

	var characters []*game.Character
	for rows.Next() {
		char, err := scanCharacter(rows)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to scan character")
		}
		characters = append(characters, char)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to iterate characters")
	}

	return &ListOutput{Characters: characters}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row rowScanner) (*game.Character, error) {
	var char game.Character
	var class string
	err := row.Scan(
		&char.ID, &char.Name, &char.AdventurerName, &class, &char.Level,
		&char.BaseStrength, &char.BaseDefense, &char.CreatedAt, &char.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	char.Class = game.Class(class)
	return &char, nil
}
