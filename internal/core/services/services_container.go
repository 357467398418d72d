package services

import (
	portsevents "github.com/SscSPs/walleto/internal/core/ports/events"
	portsrepo "github.com/SscSPs/walleto/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/walleto/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, dispatcher portsevents.EventDispatcher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Category = NewCategoryService(
		repos.CategoryRepo,
		WithCategoryDispatcher(dispatcher),
	)

	// Bank accounts consult categories when recording transactions
	container.BankAccount = NewBankAccountService(
		repos.BankAccountRepo,
		WithBankAccountDispatcher(dispatcher),
		WithCategoryReader(repos.CategoryRepo),
	)

	container.Currency = NewCurrencyService()

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)
	_ portssvc.CategorySvcFacade    = (*categoryService)(nil)
	_ portssvc.CurrencySvcFacade    = (*CurrencyService)(nil)
)
