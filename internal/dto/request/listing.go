package request

// ListUsersQuery carries the optional query-string parameters of the
// admin user listing. All fields are untrusted input.
type ListUsersQuery struct {
	Search string
	Role   string
	SortBy string
	Order  string
}

// ListStoresQuery carries the optional query-string parameters of the
// store listings (admin and end-user).
type ListStoresQuery struct {
	Search string
	SortBy string
	Order  string
}
