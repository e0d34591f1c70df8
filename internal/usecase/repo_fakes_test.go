package usecase

import (
	"context"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. Each one records enough of the calls it
// receives for tests to assert on what the services did.

type fakeUserRepo struct {
	usersByEmail map[string]*entity.User
	usersByID    map[uuid.UUID]*entity.User
	created      []*entity.User
	passwords    map[uuid.UUID]string
	findAllOpts  *repository.ListUsersOptions
	count        int64

	createErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		usersByEmail: make(map[string]*entity.User),
		usersByID:    make(map[uuid.UUID]*entity.User),
		passwords:    make(map[uuid.UUID]string),
	}
}

func (f *fakeUserRepo) add(user *entity.User) {
	f.usersByEmail[user.Email] = user
	f.usersByID[user.ID] = user
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, user)
	f.add(user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.usersByID[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.usersByEmail[email], nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, opts repository.ListUsersOptions) ([]*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.findAllOpts = &opts
	var users []*entity.User
	for _, u := range f.created {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	f.passwords[id] = passwordHash
	return nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	return f.count, nil
}

type fakeStoreRepo struct {
	created     []*entity.Store
	byOwner     map[uuid.UUID]*entity.Store
	withRating  []*entity.StoreWithRating
	forUser     []*entity.StoreForUser
	forUserID   uuid.UUID
	forUserOpts *repository.ListStoresOptions
	count       int64

	createErr error
	findErr   error
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{
		byOwner: make(map[uuid.UUID]*entity.Store),
	}
}

func (f *fakeStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, store)
	f.byOwner[store.OwnerID] = store
	return nil
}

func (f *fakeStoreRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byOwner[ownerID], nil
}

func (f *fakeStoreRepo) FindAllWithRating(ctx context.Context, opts repository.ListStoresOptions) ([]*entity.StoreWithRating, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.withRating, nil
}

func (f *fakeStoreRepo) FindAllForUser(ctx context.Context, userID uuid.UUID, opts repository.ListStoresOptions) ([]*entity.StoreForUser, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.forUserID = userID
	f.forUserOpts = &opts
	return f.forUser, nil
}

func (f *fakeStoreRepo) CountAll(ctx context.Context) (int64, error) {
	return f.count, nil
}

type fakeRatingRepo struct {
	upserts []*entity.Rating
	raters  []*entity.StoreRater
	avg     float64
	count   int64

	upsertErr error
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{}
}

func (f *fakeRatingRepo) Upsert(ctx context.Context, rating *entity.Rating) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	// Resubmission overwrites the existing entry for the same key
	for i, existing := range f.upserts {
		if existing.UserID == rating.UserID && existing.StoreID == rating.StoreID {
			f.upserts[i] = rating
			return nil
		}
	}
	f.upserts = append(f.upserts, rating)
	return nil
}

func (f *fakeRatingRepo) FindRatersByStoreID(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreRater, error) {
	return f.raters, nil
}

func (f *fakeRatingRepo) GetStoreAverageRating(ctx context.Context, storeID uuid.UUID) (float64, error) {
	return f.avg, nil
}

func (f *fakeRatingRepo) CountAll(ctx context.Context) (int64, error) {
	return f.count, nil
}

type fakeRepos struct {
	user   *fakeUserRepo
	store  *fakeStoreRepo
	rating *fakeRatingRepo
	repo   *repository.Repository
}

func newFakeRepos() *fakeRepos {
	user := newFakeUserRepo()
	store := newFakeStoreRepo()
	rating := newFakeRatingRepo()
	return &fakeRepos{
		user:   user,
		store:  store,
		rating: rating,
		repo: &repository.Repository{
			User:   user,
			Store:  store,
			Rating: rating,
		},
	}
}
