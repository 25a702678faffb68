// Package firestore contains the concrete implementation of the persistence
// layer backed by Google Cloud Firestore through the Firebase Admin SDK.
package firestore

import (
	"context"
	"log/slog"

	"headend/config"

	fs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client backing every collection repository.
func New(params ClientParams) (*fs.Client, error) {
	cfg := params.Config.Firestore
	if cfg == nil {
		return nil, errors.New("firestore configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
