package validate

import (
	"github.com/atomixxxx/cuisine-app/internal/common"
	"github.com/atomixxxx/cuisine-app/internal/models"
)

// parseAll decodes one collection. A missing value is an empty list
// (older exports lacked some collections); a non-list rejects; a list
// with any unparseable element rejects wholesale.
func parseAll[T any](v any, parse func(any) (T, bool)) ([]T, bool) {
	if v == nil {
		return []T{}, true
	}
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]T, 0, len(list))
	for _, item := range list {
		t, ok := parse(item)
		if !ok {
			return nil, false
		}
		out = append(out, t)
	}
	return out, true
}

// Payload validates an entire untyped backup document. The decision is
// all-or-nothing: a backup is either wholly trustworthy or wholly
// refused, so a single bad record anywhere yields ErrInvalidBackup.
// Unknown top-level keys are ignored.
func Payload(raw any) (*models.BackupPayload, error) {
	obj, ok := asObject(raw)
	if !ok {
		return nil, common.ErrInvalidBackup
	}

	version, ok := Integer(obj["version"])
	if !ok || version < 1 {
		return nil, common.ErrInvalidBackup
	}
	exportedAt, ok := Date(obj["exportedAt"])
	if !ok {
		return nil, common.ErrInvalidBackup
	}

	p := &models.BackupPayload{Version: version, ExportedAt: exportedAt}
	if p.Equipment, ok = parseAll(obj[models.CollectionEquipment], Equipment); !ok {
		return nil, common.ErrInvalidBackup
	}
	if p.TemperatureRecords, ok = parseAll(obj[models.CollectionTemperatureRecords], TemperatureRecord); !ok {
		return nil, common.ErrInvalidBackup
	}
	if p.OilChangeRecords, ok = parseAll(obj[models.CollectionOilChangeRecords], OilChangeRecord); !ok {
		return nil, common.ErrInvalidBackup
	}
	if p.Tasks, ok = parseAll(obj[models.CollectionTasks], Task); !ok {
		return nil, common.ErrInvalidBackup
	}
	if p.ProductTraces, ok = parseAll(obj[models.CollectionProductTraces], ProductTrace); !ok {
		return nil, common.ErrInvalidBackup
	}
	if p.Invoices, ok = parseAll(obj[models.CollectionInvoices], Invoice); !ok {
		return nil, common.ErrInvalidBackup
	}
	if p.PriceHistory, ok = parseAll(obj[models.CollectionPriceHistory], PriceHistory); !ok {
		return nil, common.ErrInvalidBackup
	}
	if p.Settings, ok = parseAll(obj[models.CollectionSettings], AppSettings); !ok {
		return nil, common.ErrInvalidBackup
	}
	return p, nil
}
