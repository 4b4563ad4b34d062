package bootstrap

import (
	"go.uber.org/fx"

	"github.com/parsewell/excel-gateway/domain/app"
	storage_client "github.com/parsewell/excel-gateway/internal/clients/storage"
	unstructured_client "github.com/parsewell/excel-gateway/internal/clients/unstructured"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			storage_client.New,
			fx.Annotate(storage_client.NewStore, fx.As(new(app.BlobStore))),
			unstructured_client.New,
		),
	)
}
