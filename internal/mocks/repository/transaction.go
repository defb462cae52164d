package repository

import (
	"context"

	domainrepo "quill/internal/domain/repository"
)

// FakeRepositoryFactory hands out preconfigured repositories, standing in for
// a transaction-bound factory in tests.
type FakeRepositoryFactory struct {
	UserRepo    domainrepo.UserRepository
	AccountRepo domainrepo.AccountRepository
	SessionRepo domainrepo.SessionRepository
	PostRepo    domainrepo.PostRepository
}

func (f *FakeRepositoryFactory) NewUserRepository() domainrepo.UserRepository {
	return f.UserRepo
}

func (f *FakeRepositoryFactory) NewAccountRepository() domainrepo.AccountRepository {
	return f.AccountRepo
}

func (f *FakeRepositoryFactory) NewSessionRepository() domainrepo.SessionRepository {
	return f.SessionRepo
}

func (f *FakeRepositoryFactory) NewPostRepository() domainrepo.PostRepository {
	return f.PostRepo
}

// FakeTransactionManager runs the transactional function directly against the
// factory, recording whether a transaction was attempted. BeginErr simulates
// a failure to open the transaction.
type FakeTransactionManager struct {
	Factory  *FakeRepositoryFactory
	BeginErr error
	Calls    int
}

func (f *FakeTransactionManager) Execute(_ context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	f.Calls++
	if f.BeginErr != nil {
		return f.BeginErr
	}

	return fn(f.Factory)
}
