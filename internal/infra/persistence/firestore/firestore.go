// Package firestore contains the document-store implementation of the
// persistence layer, initialized through the Firebase admin SDK.
package firestore

import (
	"context"
	"log/slog"

	"dirbot/config"
	"dirbot/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Context context.Context
	Config  *config.Config
	Logger  *slog.Logger
}

// New creates the Firestore client through a Firebase app and registers a
// shutdown hook.
func New(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firestore

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Context, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Context)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
