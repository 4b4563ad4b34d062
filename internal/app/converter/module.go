package converter_module

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/parsewell/excel-gateway/domain/app"
	converter_service "github.com/parsewell/excel-gateway/internal/app/converter/service"
	converter_event_consumer "github.com/parsewell/excel-gateway/internal/app/converter/transports/amqp"
	converter_http_handler "github.com/parsewell/excel-gateway/internal/app/converter/transports/http"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(converter_service.New, fx.As(new(app.ConversionService))),
			converter_http_handler.New,
			converter_event_consumer.New,
		),
		fx.Invoke(
			registerTransports,
		),
	)
}

func registerTransports(
	lc fx.Lifecycle,
	mainApp *fiber.App,
	handler *converter_http_handler.ConverterHttpHandler,
	consumer *converter_event_consumer.EventConsumer,
) {
	handler.Register(mainApp)

	lc.Append(fx.Hook{
		OnStart: consumer.Start,
		OnStop:  consumer.Stop,
	})
}
