package repository

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/ent/user"
	"context"

	"github.com/google/uuid"
)

type UserRepository struct {
	client *ent.Client
}

func NewUserRepository(client *ent.Client) *UserRepository {
	return &UserRepository{
		client: client,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	return r.client.User.Get(ctx, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	return r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
}

func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (*ent.User, error) {
	return r.client.User.Create().
		SetName(name).
		SetEmail(email).
		SetPasswordHash(passwordHash).
		Save(ctx)
}
