package converter_http_handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/parsewell/excel-gateway/domain/app"
	"github.com/parsewell/excel-gateway/domain/dtos"
)

type ConverterHttpHandler struct {
	service app.ConversionService
}

func New(service app.ConversionService) *ConverterHttpHandler {
	return &ConverterHttpHandler{service}
}

func (this *ConverterHttpHandler) Register(mainApp *fiber.App) {
	var group = mainApp.Group("/conversions")

	group.Post("/", this.convert)
}

func (this *ConverterHttpHandler) convert(fctx fiber.Ctx) error {
	var req dtos.ConvertRequest
	if err := fctx.Bind().Body(&req); err != nil {
		return fctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON payload"})
	}

	if req.Bucket == "" || req.Name == "" {
		return fctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required parameters"})
	}

	ref := app.SpreadsheetRef{Bucket: req.Bucket, Key: req.Name}
	message, err := this.service.Convert(fctx.Context(), ref)
	if err != nil {
		// Surfaced as a 500 by the app error handler.
		return err
	}

	return fctx.JSON(fiber.Map{"message": message})
}
