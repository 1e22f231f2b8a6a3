package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/myrecords/internal/client/client"
	"github.com/dmitrijs2005/myrecords/internal/client/models"
)

// RecordService is record CRUD against the backend.
type RecordService interface {
	List(ctx context.Context) ([]models.Record, error)
	Find(ctx context.Context, id int64) (*models.Record, error)
	Create(ctx context.Context, in models.RecordPayload) (*models.Record, error)
	Update(ctx context.Context, id int64, in models.RecordPayload) (*models.Record, error)
	Delete(ctx context.Context, id int64) error
}

type recordService struct {
	client client.Client
}

func NewRecordService(c client.Client) RecordService {
	return &recordService{client: c}
}

func (s *recordService) List(ctx context.Context) ([]models.Record, error) {
	items, err := s.client.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if items == nil {
		items = []models.Record{}
	}
	return items, nil
}

func (s *recordService) Find(ctx context.Context, id int64) (*models.Record, error) {
	r, err := s.client.GetRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find record %d: %w", id, err)
	}
	return r, nil
}

func (s *recordService) Create(ctx context.Context, in models.RecordPayload) (*models.Record, error) {
	r, err := s.client.CreateRecord(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	return r, nil
}

func (s *recordService) Update(ctx context.Context, id int64, in models.RecordPayload) (*models.Record, error) {
	r, err := s.client.UpdateRecord(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("update record %d: %w", id, err)
	}
	return r, nil
}

func (s *recordService) Delete(ctx context.Context, id int64) error {
	if err := s.client.DeleteRecord(ctx, id); err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}
	return nil
}
