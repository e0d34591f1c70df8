package repository

import (
	"context"
	"errors"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ListStoresOptions are the untrusted query-string filters for store
// listings. SortBy is validated against a whitelist before it touches
// the query.
type ListStoresOptions struct {
	Search string
	SortBy string
	Order  string
}

var (
	ErrOwnerNotFound       = errors.New("owner user not found")
	ErrStoreEmailExists    = errors.New("store email already exists")
	uniqueViolationSQLCode = "23505"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)
	FindAllWithRating(ctx context.Context, opts ListStoresOptions) ([]*entity.StoreWithRating, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, opts ListStoresOptions) ([]*entity.StoreForUser, error)
	CountAll(ctx context.Context) (int64, error)
}

type storeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoreRepository(db database.PgxIface, log *zap.Logger) StoreRepository {
	return &storeRepository{
		db:  db,
		log: log.With(zap.String("repository", "store")),
	}
}

// Create inserts a store and, when the assigned owner is still a plain
// USER, upgrades them to STORE_OWNER. Both statements run in one
// transaction so a crash cannot leave an owner without a store or a
// silent role upgrade.
func (sr *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	tx, err := sr.db.Begin(ctx)
	if err != nil {
		sr.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin store create: %w", err)
	}
	defer tx.Rollback(ctx)

	var role entity.UserRole
	err = tx.QueryRow(ctx, `SELECT role FROM users WHERE id = $1 FOR UPDATE`, store.OwnerID).Scan(&role)
	if err == pgx.ErrNoRows {
		return ErrOwnerNotFound
	}
	if err != nil {
		sr.log.Error("Failed to check store owner",
			zap.Error(err),
			zap.String("owner_id", store.OwnerID.String()),
		)
		return fmt.Errorf("check store owner %s: %w", store.OwnerID.String(), err)
	}

	if role == entity.RoleUser {
		_, err = tx.Exec(ctx, `UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`,
			store.OwnerID, entity.RoleStoreOwner)
		if err != nil {
			sr.log.Error("Failed to upgrade owner role",
				zap.Error(err),
				zap.String("owner_id", store.OwnerID.String()),
			)
			return fmt.Errorf("upgrade owner role %s: %w", store.OwnerID.String(), err)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO stores (id, name, email, address, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		store.ID,
		store.Name,
		store.Email,
		store.Address,
		store.OwnerID,
		store.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationSQLCode {
			return ErrStoreEmailExists
		}
		sr.log.Error("Failed to create store",
			zap.Error(err),
			zap.String("email", store.Email),
		)
		return fmt.Errorf("create store %s: %w", store.Email, err)
	}

	if err := tx.Commit(ctx); err != nil {
		sr.log.Error("Failed to commit store create", zap.Error(err))
		return fmt.Errorf("commit store create: %w", err)
	}

	return nil
}

func (sr *storeRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at
		FROM stores
		WHERE owner_id = $1
	`

	var store entity.Store
	// the dashboard flow assumes a single store per owner
	err := sr.db.QueryRow(ctx, query, ownerID).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find store by owner %s: %w", ownerID.String(), err)
	}

	return &store, nil
}

// FindAllWithRating retrieves stores with their live average rating
// for the admin listing
func (sr *storeRepository) FindAllWithRating(ctx context.Context, opts ListStoresOptions) ([]*entity.StoreWithRating, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address,
		       COALESCE(AVG(r.rating), 0) AS "averageRating"
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		WHERE 1=1
	`
	var args []any

	if opts.Search != "" {
		term := "%" + opts.Search + "%"
		args = append(args, term)
		query += fmt.Sprintf(" AND (s.name ILIKE $%d OR s.email ILIKE $%d OR s.address ILIKE $%d)",
			len(args), len(args), len(args))
	}

	query += " GROUP BY s.id"
	query += fmt.Sprintf(" ORDER BY %s %s",
		safeSortField(opts.SortBy, adminStoreSortFields), safeOrder(opts.Order))

	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to get all stores",
			zap.Error(err),
			zap.String("search", opts.Search),
		)
		return nil, fmt.Errorf("find all stores: %w", err)
	}
	defer rows.Close()

	var stores []*entity.StoreWithRating
	for rows.Next() {
		var store entity.StoreWithRating
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Email,
			&store.Address,
			&store.AverageRating,
		)
		if err != nil {
			sr.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate stores rows: %w", err)
	}

	return stores, nil
}

// FindAllForUser retrieves stores for the end-user listing. Ratings
// are joined twice: once for the overall average and once for the
// requesting user's own rating.
func (sr *storeRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, opts ListStoresOptions) ([]*entity.StoreForUser, error) {
	query := `
		SELECT s.id, s.name, s.address,
		       COALESCE(AVG(all_r.rating), 0) AS "overallRating",
		       user_r.rating AS "myRating"
		FROM stores s
		LEFT JOIN ratings all_r ON s.id = all_r.store_id
		LEFT JOIN ratings user_r ON s.id = user_r.store_id AND user_r.user_id = $1
		WHERE 1=1
	`
	args := []any{userID}

	if opts.Search != "" {
		term := "%" + opts.Search + "%"
		args = append(args, term)
		query += fmt.Sprintf(" AND (s.name ILIKE $%d OR s.address ILIKE $%d)",
			len(args), len(args))
	}

	query += " GROUP BY s.id, user_r.rating"
	query += fmt.Sprintf(" ORDER BY %s %s",
		safeSortField(opts.SortBy, userStoreSortFields), safeOrder(opts.Order))

	rows, err := sr.db.Query(ctx, query, args...)
	if err != nil {
		sr.log.Error("Failed to get stores for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("search", opts.Search),
		)
		return nil, fmt.Errorf("find stores for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var stores []*entity.StoreForUser
	for rows.Next() {
		var store entity.StoreForUser
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Address,
			&store.OverallRating,
			&store.MyRating,
		)
		if err != nil {
			sr.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate stores rows: %w", err)
	}

	return stores, nil
}

func (sr *storeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stores`

	var count int64
	err := sr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		sr.log.Error("Database error counting stores", zap.Error(err))
		return 0, fmt.Errorf("count all stores: %w", err)
	}

	return count, nil
}
