package persistence

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/felixgeelhaar/catalog/internal/catalog/domain"
	sharedDomain "github.com/felixgeelhaar/catalog/internal/shared/domain"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/database"
)

const categoryColumns = "category_id, name, description, is_active, created_at, updated_at"

// sqliteTimeLayout is fixed width so text ordering is chronological.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLCategoryRepository implements domain.Repository on PostgreSQL or SQLite.
type SQLCategoryRepository struct {
	conn database.Connection
}

// NewSQLCategoryRepository creates a repository over conn.
func NewSQLCategoryRepository(conn database.Connection) *SQLCategoryRepository {
	return &SQLCategoryRepository{conn: conn}
}

var _ domain.Repository = (*SQLCategoryRepository)(nil)

func (r *SQLCategoryRepository) driver() database.Driver {
	return r.conn.Driver()
}

func (r *SQLCategoryRepository) executor(ctx context.Context) database.Executor {
	return database.ExecutorFromContext(ctx, r.conn)
}

// Insert stores a new category.
func (r *SQLCategoryRepository) Insert(ctx context.Context, category *domain.Category) error {
	args := database.NewArgs(r.driver())
	query := fmt.Sprintf(
		"INSERT INTO categories (%s) VALUES (%s, %s, %s, %s, %s, %s)",
		categoryColumns,
		args.Add(category.EntityID().String()),
		args.Add(category.Name()),
		args.Add(category.Description()),
		args.Add(category.IsActive()),
		args.Add(r.encodeTime(category.CreatedAt())),
		args.Add(r.encodeTime(category.UpdatedAt())),
	)

	if _, err := r.executor(ctx).Exec(ctx, query, args.Values()...); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("insert %s %s: %w: %w", domain.Kind, category.EntityID(),
				sharedDomain.NewAlreadyExistsError(domain.Kind, category.EntityID()), err)
		}
		return fmt.Errorf("insert %s %s: %w", domain.Kind, category.EntityID(), err)
	}
	return nil
}

// BulkInsert stores categories in order, all or none.
func (r *SQLCategoryRepository) BulkInsert(ctx context.Context, categories []*domain.Category) error {
	return r.inTransaction(ctx, func(ctx context.Context) error {
		for _, category := range categories {
			if err := r.Insert(ctx, category); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update replaces the stored state of category.
func (r *SQLCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	args := database.NewArgs(r.driver())
	query := fmt.Sprintf(
		"UPDATE categories SET name = %s, description = %s, is_active = %s, updated_at = %s WHERE category_id = %s",
		args.Add(category.Name()),
		args.Add(category.Description()),
		args.Add(category.IsActive()),
		args.Add(r.encodeTime(category.UpdatedAt())),
		args.Add(category.EntityID().String()),
	)

	result, err := r.executor(ctx).Exec(ctx, query, args.Values()...)
	if err != nil {
		return fmt.Errorf("update %s %s: %w", domain.Kind, category.EntityID(), err)
	}
	return requireAffected(result, category.EntityID())
}

// Delete removes the category with id.
func (r *SQLCategoryRepository) Delete(ctx context.Context, id sharedDomain.Identifier) error {
	args := database.NewArgs(r.driver())
	query := "DELETE FROM categories WHERE category_id = " + args.Add(id.String())

	result, err := r.executor(ctx).Exec(ctx, query, args.Values()...)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", domain.Kind, id, err)
	}
	return requireAffected(result, id)
}

func requireAffected(result database.Result, id sharedDomain.Identifier) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sharedDomain.NewNotFoundError(domain.Kind, id)
	}
	return nil
}

// Find returns the category with id.
func (r *SQLCategoryRepository) Find(ctx context.Context, id sharedDomain.Identifier) (*domain.Category, bool, error) {
	args := database.NewArgs(r.driver())
	query := "SELECT " + categoryColumns + " FROM categories WHERE category_id = " + args.Add(id.String())

	category, err := r.scanCategory(r.executor(ctx).QueryRow(ctx, query, args.Values()...))
	if err != nil {
		if database.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return category, true, nil
}

// FindAll returns every category in insertion order.
func (r *SQLCategoryRepository) FindAll(ctx context.Context) ([]*domain.Category, error) {
	return r.query(ctx, "SELECT "+categoryColumns+" FROM categories ORDER BY seq ASC")
}

// SortableFields returns the columns Search may order by.
func (r *SQLCategoryRepository) SortableFields() []string {
	return slices.Clone(domain.Sortable.Fields)
}

// Search filters by name, orders and returns one page. Names sort byte-wise
// and rows that tie keep insertion order in either direction.
func (r *SQLCategoryRepository) Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error) {
	args := database.NewArgs(r.driver())

	var where string
	if filter, ok := params.Filter(); ok {
		pattern := "%" + escapeLike(strings.ToLower(filter)) + "%"
		where = " WHERE LOWER(name) LIKE " + args.Add(pattern) + ` ESCAPE '\'`
	}

	var total int
	countArgs := slices.Clone(args.Values())
	if err := r.executor(ctx).QueryRow(ctx, "SELECT COUNT(*) FROM categories"+where, countArgs...).Scan(&total); err != nil {
		return domain.SearchResult{}, fmt.Errorf("count categories: %w", err)
	}

	query := "SELECT " + categoryColumns + " FROM categories" + where +
		" ORDER BY " + r.orderBy(params.Ordering(domain.Sortable)) +
		" LIMIT " + args.Add(params.PerPage()) +
		" OFFSET " + args.Add(params.Offset())

	categories, err := r.query(ctx, query, args.Values()...)
	if err != nil {
		return domain.SearchResult{}, err
	}
	return sharedDomain.NewSearchResult(categories, total, params.Page(), params.PerPage()), nil
}

func (r *SQLCategoryRepository) orderBy(o sharedDomain.Ordering) string {
	column := pq.QuoteIdentifier(o.Field)
	if o.Field == domain.SortName {
		column += " " + r.driver().BinaryCollation()
	}
	direction := "ASC"
	if o.Direction == sharedDomain.SortDesc {
		direction = "DESC"
	}
	return column + " " + direction + ", seq ASC"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *SQLCategoryRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Category, error) {
	rows, err := r.executor(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := r.scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func (r *SQLCategoryRepository) scanCategory(row database.Row) (*domain.Category, error) {
	var (
		rawID       string
		name        string
		description *string
		isActive    bool
		createdAt   any
		updatedAt   any
	)
	if err := row.Scan(&rawID, &name, &description, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	id, err := sharedDomain.ParseIdentifier(rawID)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", domain.Kind, err)
	}
	created, err := decodeTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("load %s %s: created_at: %w", domain.Kind, id, err)
	}
	updated, err := decodeTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("load %s %s: updated_at: %w", domain.Kind, id, err)
	}

	return domain.RehydrateCategory(domain.Properties{
		ID:          id,
		Name:        name,
		Description: description,
		IsActive:    &isActive,
		CreatedAt:   created,
		UpdatedAt:   updated,
	})
}

func (r *SQLCategoryRepository) encodeTime(t time.Time) any {
	if r.driver() == database.DriverSQLite {
		return t.UTC().Format(sqliteTimeLayout)
	}
	return t.UTC()
}

func decodeTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		return parseTime(t)
	case []byte:
		return parseTime(string(t))
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// inTransaction runs fn inside the caller's transaction, or a new one.
func (r *SQLCategoryRepository) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if database.TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	uow := database.NewUnitOfWork(r.conn)
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(txCtx); err != nil {
		_ = uow.Rollback(txCtx)
		return err
	}
	return uow.Commit(txCtx)
}
