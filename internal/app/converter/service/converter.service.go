package converter_service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/parsewell/excel-gateway/domain/app"
	unstructured_client "github.com/parsewell/excel-gateway/internal/clients/unstructured"
)

const (
	msgSuccess = "JSON file successfully created in storage."
	msgFailure = "Failed to process XLSX file."
)

type ConverterService struct {
	store  app.BlobStore
	remote *unstructured_client.UnstructuredClient
	errlog *ErrorLog
	log    *slog.Logger
}

var _ app.ConversionService = &ConverterService{}

func New(store app.BlobStore, remote *unstructured_client.UnstructuredClient, log *slog.Logger) *ConverterService {
	return &ConverterService{
		store:  store,
		remote: remote,
		errlog: NewErrorLog(store, log),
		log:    log,
	}
}

// Convert runs the parse-or-forward pipeline for one file. Every failure is
// appended to the per-file error log and collapsed into the generic failure
// message; callers never see internal error detail.
func (this *ConverterService) Convert(ctx context.Context, ref app.SpreadsheetRef) (string, error) {
	if err := this.convert(ctx, ref); err != nil {
		this.errlog.Append(ctx, ref.Bucket, ref.ErrorLogKey(),
			fmt.Sprintf("Error processing file %s: %v", ref.Key, err))
		return msgFailure, nil
	}

	this.log.Info("JSON file successfully created", "bucket", ref.Bucket, "key", ref.DestinationKey())
	return msgSuccess, nil
}

func (this *ConverterService) convert(ctx context.Context, ref app.SpreadsheetRef) error {
	ok, err := this.store.Exists(ctx, ref.Bucket, ref.Key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", ref.Key, ErrNotFound)
	}

	data, err := this.store.Download(ctx, ref.Bucket, ref.Key)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return ErrEmptyFile
	}

	wb, err := decodeWorkbook(ref.Key, data)
	if err != nil {
		return err
	}
	defer wb.Close()

	needsRemote, sheet, reason, err := detectComplexity(wb)
	if err != nil {
		return err
	}
	if needsRemote {
		this.log.Info("complexity detected, forwarding to unstructured parser",
			"key", ref.Key, "sheet", sheet, "reason", reason)
		payload, rerr := this.remote.Parse(ctx, ref.Bucket, ref.Key)
		if rerr == nil {
			return this.store.Upload(ctx, ref.Bucket, ref.DestinationKey(), payload, "application/json")
		}
		this.log.Warn("unstructured parser failed, falling back to local parsing",
			"key", ref.Key, "error", rerr)
	}

	result := app.NewConversionResult()
	for _, name := range wb.SheetNames() {
		rows, err := wb.Rows(name)
		if err != nil {
			return &SheetError{Sheet: name, Err: err}
		}
		records := buildTable(rows)
		if len(records) == 0 {
			this.log.Warn("sheet is empty, skipping", "key", ref.Key, "sheet", name)
			continue
		}
		result.Set(name, records)
	}
	if result.Len() == 0 {
		return ErrNoData
	}

	js, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return err
	}
	return this.store.Upload(ctx, ref.Bucket, ref.DestinationKey(), js, "application/json")
}
