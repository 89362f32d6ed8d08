package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/atomixxxx/cuisine-app/internal/common"
	"github.com/atomixxxx/cuisine-app/internal/cryptox"
	"github.com/atomixxxx/cuisine-app/internal/dbx"
	"github.com/atomixxxx/cuisine-app/internal/models"
	"github.com/atomixxxx/cuisine-app/internal/storage"
	"github.com/atomixxxx/cuisine-app/internal/validate"
)

// ImportSummary reports what a successful restore replaced.
type ImportSummary struct {
	Version    int
	ExportedAt string
	Counts     map[string]int
}

// Import restores a backup file. Encrypted files are recognized by
// their magic and decrypted first; the document is then validated as a
// whole and, only when wholly trustworthy, applied as a single
// transaction replacing all eight collections. Any failure leaves the
// local dataset untouched.
func (s *Service) Import(ctx context.Context, data []byte, password string) (*ImportSummary, error) {
	if cryptox.IsEncrypted(data) {
		if password == "" {
			return nil, common.ErrPasswordRequired
		}
		plain, err := cryptox.Decrypt(data, password)
		if err != nil {
			return nil, err
		}
		data = plain
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, common.ErrInvalidBackup
	}
	p, err := validate.Payload(raw)
	if err != nil {
		return nil, err
	}

	if err := s.applyPayload(ctx, p); err != nil {
		return nil, fmt.Errorf("apply backup: %w", err)
	}

	summary := summarize(p)
	s.log.Info(ctx, "backup restored",
		"version", p.Version,
		"exportedAt", summary.ExportedAt,
		"records", totalRecords(summary))
	return summary, nil
}

// applyPayload replaces every collection inside one transaction, so no
// reader can observe a half-restored dataset.
func (s *Service) applyPayload(ctx context.Context, p *models.BackupPayload) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewCollectionRepository(tx)
		if err := storeCollection(ctx, repo, models.CollectionEquipment, p.Equipment); err != nil {
			return err
		}
		if err := storeCollection(ctx, repo, models.CollectionTemperatureRecords, p.TemperatureRecords); err != nil {
			return err
		}
		if err := storeCollection(ctx, repo, models.CollectionOilChangeRecords, p.OilChangeRecords); err != nil {
			return err
		}
		if err := storeCollection(ctx, repo, models.CollectionTasks, p.Tasks); err != nil {
			return err
		}
		if err := storeCollection(ctx, repo, models.CollectionProductTraces, p.ProductTraces); err != nil {
			return err
		}
		if err := storeCollection(ctx, repo, models.CollectionInvoices, p.Invoices); err != nil {
			return err
		}
		if err := storeCollection(ctx, repo, models.CollectionPriceHistory, p.PriceHistory); err != nil {
			return err
		}
		return storeCollection(ctx, repo, models.CollectionSettings, p.Settings)
	})
}

func storeCollection[T interface{ EntityID() string }](ctx context.Context, repo *storage.CollectionRepository, name string, items []T) error {
	docs := make([]storage.Document, 0, len(items))
	for _, item := range items {
		body, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode %s/%s: %w", name, item.EntityID(), err)
		}
		docs = append(docs, storage.Document{ID: item.EntityID(), Doc: body})
	}
	if err := repo.ReplaceAll(ctx, name, docs); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

func summarize(p *models.BackupPayload) *ImportSummary {
	return &ImportSummary{
		Version:    p.Version,
		ExportedAt: p.ExportedAt.Format(time.RFC3339),
		Counts: map[string]int{
			models.CollectionEquipment:          len(p.Equipment),
			models.CollectionTemperatureRecords: len(p.TemperatureRecords),
			models.CollectionOilChangeRecords:   len(p.OilChangeRecords),
			models.CollectionTasks:              len(p.Tasks),
			models.CollectionProductTraces:      len(p.ProductTraces),
			models.CollectionInvoices:           len(p.Invoices),
			models.CollectionPriceHistory:       len(p.PriceHistory),
			models.CollectionSettings:           len(p.Settings),
		},
	}
}

func totalRecords(s *ImportSummary) int {
	n := 0
	for _, c := range s.Counts {
		n += c
	}
	return n
}
