package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"greenhire-backend/internal/domain"
	"greenhire-backend/internal/logger"
	"greenhire-backend/internal/repository"
)

type machineRepository struct {
	client *firestore.Client
}

func NewMachineRepository(client *firestore.Client) repository.MachineRepository {
	return &machineRepository{client: client}
}

func (r *machineRepository) Create(ctx context.Context, machine *domain.Machine) error {
	ref := r.client.Collection(machinesCollection).NewDoc()
	logger.ExternalServiceCall("firestore", "machines.create", "doc_id", ref.ID)

	if _, err := ref.Set(ctx, machine); err != nil {
		logger.ExternalServiceResult("firestore", "machines.create", err)
		return &domain.PersistenceError{Op: "create machine", Err: err}
	}
	machine.ID = ref.ID
	logger.ExternalServiceResult("firestore", "machines.create", nil)
	return nil
}

func (r *machineRepository) GetByID(ctx context.Context, id string) (*domain.Machine, error) {
	snap, err := r.client.Collection(machinesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.PersistenceError{Op: "get machine", Err: err}
	}

	var m domain.Machine
	if err := snap.DataTo(&m); err != nil {
		return nil, &domain.PersistenceError{Op: "decode machine", Err: err}
	}
	m.ID = snap.Ref.ID
	return &m, nil
}

func (r *machineRepository) List(ctx context.Context) ([]domain.Machine, error) {
	return r.query(ctx, r.client.Collection(machinesCollection).Query)
}

func (r *machineRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Machine, error) {
	q := r.client.Collection(machinesCollection).Where("ownerId", "==", ownerID)
	return r.query(ctx, q)
}

func (r *machineRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	machines, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return len(machines), nil
}

func (r *machineRepository) query(ctx context.Context, q firestore.Query) ([]domain.Machine, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	machines := make([]domain.Machine, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &domain.PersistenceError{Op: "list machines", Err: err}
		}

		var m domain.Machine
		if err := snap.DataTo(&m); err != nil {
			return nil, &domain.PersistenceError{Op: "decode machine", Err: err}
		}
		m.ID = snap.Ref.ID
		machines = append(machines, m)
	}
	return machines, nil
}
