package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atomixxxx/cuisine-app/internal/models"
	"github.com/atomixxxx/cuisine-app/internal/storage"
)

// BuildPayload assembles an export-ready snapshot of every collection.
// Decoding through the typed models strips everything that must not
// leave the device: product photos, invoice page images and the stored
// OCR key carry "-" JSON tags and so never reach the payload.
func (s *Service) BuildPayload(ctx context.Context) (*models.BackupPayload, error) {
	repo := storage.NewCollectionRepository(s.db)
	p := &models.BackupPayload{
		Version:    models.BackupVersion,
		ExportedAt: s.now().UTC(),
	}

	if err := loadCollection(ctx, repo, models.CollectionEquipment, &p.Equipment); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, repo, models.CollectionTemperatureRecords, &p.TemperatureRecords); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, repo, models.CollectionOilChangeRecords, &p.OilChangeRecords); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, repo, models.CollectionTasks, &p.Tasks); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, repo, models.CollectionProductTraces, &p.ProductTraces); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, repo, models.CollectionInvoices, &p.Invoices); err != nil {
		return nil, err
	}
	// A stored invoice may lack an items key; exports carry an empty
	// list so re-validating an export reproduces it exactly.
	for i := range p.Invoices {
		if p.Invoices[i].Items == nil {
			p.Invoices[i].Items = []models.InvoiceItem{}
		}
	}
	if err := loadCollection(ctx, repo, models.CollectionPriceHistory, &p.PriceHistory); err != nil {
		return nil, err
	}
	if err := loadCollection(ctx, repo, models.CollectionSettings, &p.Settings); err != nil {
		return nil, err
	}
	return p, nil
}

func loadCollection[T any](ctx context.Context, repo *storage.CollectionRepository, name string, dst *[]T) error {
	docs, err := repo.GetAll(ctx, name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		var t T
		if err := json.Unmarshal(d.Doc, &t); err != nil {
			return fmt.Errorf("decode %s/%s: %w", name, d.ID, err)
		}
		out = append(out, t)
	}
	*dst = out
	return nil
}
