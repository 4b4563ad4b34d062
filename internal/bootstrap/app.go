package bootstrap

import (
	converter_module "github.com/parsewell/excel-gateway/internal/app/converter"
	"go.uber.org/fx"
)

func appOptions() fx.Option {
	return fx.Options(
		converter_module.Register(),
	)
}
