package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/kirinyoku/travelease/internal/domain"
	postgresrepo "github.com/kirinyoku/travelease/internal/repository/postgres"
	"github.com/kirinyoku/travelease/internal/uow"
)

// Accounts is the user store behind the provider.
type Accounts interface {
	// CreateAccount stores the user and their profile row together.
	CreateAccount(ctx context.Context, id uuid.UUID, email string, passwordHash []byte, name string) error
	GetByEmail(ctx context.Context, email string) (*postgresrepo.Credentials, error)
	GetByID(ctx context.Context, id uuid.UUID) (*postgresrepo.Credentials, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash []byte) error
}

type PostgresAccounts struct {
	store *postgresrepo.Store
	uow   *uow.UoW
}

func NewPostgresAccounts(store *postgresrepo.Store) *PostgresAccounts {
	return &PostgresAccounts{store: store, uow: uow.NewUoW(store)}
}

func (a *PostgresAccounts) CreateAccount(
	ctx context.Context,
	id uuid.UUID,
	email string,
	passwordHash []byte,
	name string,
) error {
	return a.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, _ func(uow.AfterCommit)) error {
		if err := a.store.Users().With(tx).Create(ctx, id, email, passwordHash); err != nil {
			return err
		}

		return a.store.Profiles().With(tx).Create(ctx, domain.Profile{UserID: id, Name: name})
	})
}

func (a *PostgresAccounts) GetByEmail(ctx context.Context, email string) (*postgresrepo.Credentials, error) {
	return a.store.Users().GetByEmail(ctx, email)
}

func (a *PostgresAccounts) GetByID(ctx context.Context, id uuid.UUID) (*postgresrepo.Credentials, error) {
	return a.store.Users().GetByID(ctx, id)
}

func (a *PostgresAccounts) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash []byte) error {
	return a.store.Users().UpdatePassword(ctx, id, passwordHash)
}
