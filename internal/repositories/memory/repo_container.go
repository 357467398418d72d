package memory

import (
	"slices"
	"sync"

	"github.com/SscSPs/walleto/internal/core/domain"
	portsrepo "github.com/SscSPs/walleto/internal/core/ports/repositories"
)

// eventLog keeps every event the repositories persisted, in write order.
type eventLog struct {
	mu     sync.Mutex
	events []domain.Event
}

func (l *eventLog) append(events []domain.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, events...)
}

func (l *eventLog) all() []domain.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.events)
}

// Store bundles the in-memory repositories and the events they persisted.
type Store struct {
	BankAccounts *BankAccountRepository
	Categories   *CategoryRepository
	log          *eventLog
}

func NewStore() *Store {
	log := &eventLog{}
	return &Store{
		BankAccounts: newBankAccountRepository(log),
		Categories:   newCategoryRepository(log),
		log:          log,
	}
}

// PersistedEvents returns every event written alongside an aggregate, oldest first.
func (s *Store) PersistedEvents() []domain.Event {
	return s.log.all()
}

func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BankAccountRepo: s.BankAccounts,
		CategoryRepo:    s.Categories,
	}
}
