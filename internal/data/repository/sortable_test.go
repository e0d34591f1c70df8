package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeSortField_Users(t *testing.T) {
	assert.Equal(t, "name", safeSortField("name", userSortFields))
	assert.Equal(t, "email", safeSortField("email", userSortFields))
	assert.Equal(t, "role", safeSortField("role", userSortFields))

	// Anything outside the whitelist falls back to name
	assert.Equal(t, "name", safeSortField("password", userSortFields))
	assert.Equal(t, "name", safeSortField("id; DROP TABLE users", userSortFields))
	assert.Equal(t, "name", safeSortField("", userSortFields))
}

func TestSafeSortField_AdminStores(t *testing.T) {
	assert.Equal(t, "s.name", safeSortField("name", adminStoreSortFields))
	assert.Equal(t, "s.email", safeSortField("email", adminStoreSortFields))
	assert.Equal(t, `"averageRating"`, safeSortField("averageRating", adminStoreSortFields))

	assert.Equal(t, "s.name", safeSortField("owner_id", adminStoreSortFields))
}

func TestSafeSortField_UserStores(t *testing.T) {
	assert.Equal(t, "s.name", safeSortField("name", userStoreSortFields))
	assert.Equal(t, `"overallRating"`, safeSortField("overallRating", userStoreSortFields))

	// email is not sortable in the end-user listing
	assert.Equal(t, "s.name", safeSortField("email", userStoreSortFields))
}

func TestSafeOrder(t *testing.T) {
	assert.Equal(t, "DESC", safeOrder("DESC"))
	assert.Equal(t, "DESC", safeOrder("desc"))
	assert.Equal(t, "DESC", safeOrder("Desc"))

	assert.Equal(t, "ASC", safeOrder("ASC"))
	assert.Equal(t, "ASC", safeOrder("asc"))
	assert.Equal(t, "ASC", safeOrder(""))
	assert.Equal(t, "ASC", safeOrder("random"))
	assert.Equal(t, "ASC", safeOrder("DESC; DROP TABLE users"))
}
