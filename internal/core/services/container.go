package services

import (
	portsrepo "github.com/budgie-app/budgie/internal/core/ports/repositories"
	portssvc "github.com/budgie-app/budgie/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized
// dependencies.
func NewContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:    NewUserService(repos.UserRepo),
		Account: NewAccountService(repos.AccountRepo),
		Tag:     NewTagService(repos.TagRepo),
		Ledger:  NewLedgerService(repos.EntryRepo, repos.AccountRepo, repos.TagRepo),
	}
}

// Compile-time facade checks
var (
	_ portssvc.UserSvcFacade    = (*UserService)(nil)
	_ portssvc.AccountSvcFacade = (*AccountService)(nil)
	_ portssvc.TagSvcFacade     = (*TagService)(nil)
	_ portssvc.LedgerSvcFacade  = (*LedgerService)(nil)
)
