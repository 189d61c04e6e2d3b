package repositories

// RepositoryProvider bundles the concrete repositories handed to the
// service container.
type RepositoryProvider struct {
	UserRepo    UserRepository
	AccountRepo AccountRepository
	TagRepo     TagRepository
	EntryRepo   EntryRepository
}
