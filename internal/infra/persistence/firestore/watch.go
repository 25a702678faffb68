package firestore

import (
	"context"
	"log/slog"
	"time"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// watchCollection turns a Firestore snapshot listener into a channel that
// delivers the full, mapped collection contents on every store change. The
// channel is closed when ctx is cancelled or the listener fails. Malformed
// documents are skipped instead of failing the whole snapshot.
func watchCollection[T any](
	ctx context.Context,
	logger *slog.Logger,
	query fs.Query,
	collection string,
	mapDoc func(doc *fs.DocumentSnapshot, now time.Time) (T, error),
	sortItems func(items []T),
) <-chan []T {
	out := make(chan []T, 1)
	snapshots := query.Snapshots(ctx)

	go func() {
		defer close(out)
		defer snapshots.Stop()

		for {
			snapshot, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled && ctx.Err() == nil {
					logger.Error("collection watch terminated",
						slog.String("collection", collection),
						slog.Any("error", err),
					)
				}

				return
			}

			docs, err := snapshot.Documents.GetAll()
			if err != nil {
				logger.Error("failed to read snapshot documents",
					slog.String("collection", collection),
					slog.Any("error", err),
				)

				continue
			}

			now := time.Now()
			items := make([]T, 0, len(docs))
			for _, doc := range docs {
				item, err := mapDoc(doc, now)
				if err != nil {
					logger.Warn("skipping malformed document",
						slog.String("collection", collection),
						slog.String("id", doc.Ref.ID),
						slog.Any("error", err),
					)

					continue
				}
				items = append(items, item)
			}

			if sortItems != nil {
				sortItems(items)
			}

			// Drop an undelivered snapshot so the consumer always sees the latest.
			select {
			case <-out:
			default:
			}

			select {
			case out <- items:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
