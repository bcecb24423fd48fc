package repository

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/ent/officer"
	"context"

	"github.com/google/uuid"
)

type OfficerRepository struct {
	client *ent.Client
}

func NewOfficerRepository(client *ent.Client) *OfficerRepository {
	return &OfficerRepository{
		client: client,
	}
}

func (r *OfficerRepository) List(ctx context.Context) ([]*ent.Officer, error) {
	return r.client.Officer.Query().
		Order(ent.Asc(officer.FieldDepartment), ent.Asc(officer.FieldName)).
		All(ctx)
}

func (r *OfficerRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Officer, error) {
	return r.client.Officer.Get(ctx, id)
}
