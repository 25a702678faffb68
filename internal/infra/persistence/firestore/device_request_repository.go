package firestore

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"headend/internal/domain/constants"
	"headend/internal/domain/entity"
	domainerrors "headend/internal/domain/errors"
	"headend/internal/domain/repository"
	"headend/internal/errors"
	"headend/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// deviceRequestRepository implements the repository.DeviceRequestRepository interface.
type deviceRequestRepository struct {
	client *fs.Client
	logger *slog.Logger
}

// NewDeviceRequestRepository is the constructor for deviceRequestRepository.
func NewDeviceRequestRepository(client *fs.Client, logger *slog.Logger) repository.DeviceRequestRepository {
	return &deviceRequestRepository{
		client: client,
		logger: logger,
	}
}

func (repo *deviceRequestRepository) collection() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionDeviceRequests)
}

// FindRequestByID retrieves a pending request by its document id.
func (repo *deviceRequestRepository) FindRequestByID(ctx context.Context, id string) (*entity.DeviceRequest, error) {
	doc, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find device request by ID")
	}

	var requestM model.DeviceRequestModel
	if err := doc.DataTo(&requestM); err != nil {
		return nil, errors.Wrap(err, "failed to decode device request document")
	}

	return model.ToDeviceRequestDomain(doc.Ref.ID, &requestM, time.Now()), nil
}

// ListRequests retrieves all pending requests, newest first.
func (repo *deviceRequestRepository) ListRequests(ctx context.Context) ([]*entity.DeviceRequest, error) {
	docs, err := repo.collection().Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device requests")
	}

	now := time.Now()
	requests := make([]*entity.DeviceRequest, 0, len(docs))
	for _, doc := range docs {
		var requestM model.DeviceRequestModel
		if err := doc.DataTo(&requestM); err != nil {
			repo.logger.Warn("skipping malformed device request document",
				slog.String("id", doc.Ref.ID),
				slog.Any("error", err),
			)

			continue
		}
		requests = append(requests, model.ToDeviceRequestDomain(doc.Ref.ID, &requestM, now))
	}

	sortRequests(requests)

	return requests, nil
}

// DeleteRequest removes a request document. Deleting a missing id is a no-op.
func (repo *deviceRequestRepository) DeleteRequest(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete device request")
	}

	return nil
}

// WatchRequests delivers the full request collection on every store change.
func (repo *deviceRequestRepository) WatchRequests(ctx context.Context) (<-chan []*entity.DeviceRequest, error) {
	ch := watchCollection(ctx, repo.logger, repo.collection().Query, constants.CollectionDeviceRequests,
		func(doc *fs.DocumentSnapshot, now time.Time) (*entity.DeviceRequest, error) {
			var requestM model.DeviceRequestModel
			if err := doc.DataTo(&requestM); err != nil {
				return nil, errors.Wrap(err, "failed to decode device request document")
			}

			return model.ToDeviceRequestDomain(doc.Ref.ID, &requestM, now), nil
		},
		sortRequests,
	)

	return ch, nil
}

// sortRequests orders newest requests first, matching the console list view.
func sortRequests(requests []*entity.DeviceRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].RequestTime.After(requests[j].RequestTime)
	})
}
