package models

import "time"

// BackupVersion is the current export format version. Imports accept
// any integer version >= 1.
const BackupVersion = 1

// Collection names double as JSON keys in backup payloads and as
// collection identifiers in the local store.
const (
	CollectionEquipment          = "equipment"
	CollectionTemperatureRecords = "temperatureRecords"
	CollectionOilChangeRecords   = "oilChangeRecords"
	CollectionTasks              = "tasks"
	CollectionProductTraces      = "productTraces"
	CollectionInvoices           = "invoices"
	CollectionPriceHistory       = "priceHistory"
	CollectionSettings           = "settings"
)

// CollectionNames lists every collection carried by a backup, in
// payload order.
var CollectionNames = []string{
	CollectionEquipment,
	CollectionTemperatureRecords,
	CollectionOilChangeRecords,
	CollectionTasks,
	CollectionProductTraces,
	CollectionInvoices,
	CollectionPriceHistory,
	CollectionSettings,
}

// BackupPayload is the full exportable snapshot of local data. It is
// built on demand and reconstructed transiently during import; only its
// collections are ever persisted.
type BackupPayload struct {
	Version            int                 `json:"version"`
	ExportedAt         time.Time           `json:"exportedAt"`
	Equipment          []Equipment         `json:"equipment"`
	TemperatureRecords []TemperatureRecord `json:"temperatureRecords"`
	OilChangeRecords   []OilChangeRecord   `json:"oilChangeRecords"`
	Tasks              []Task              `json:"tasks"`
	ProductTraces      []ProductTrace      `json:"productTraces"`
	Invoices           []Invoice           `json:"invoices"`
	PriceHistory       []PriceHistory      `json:"priceHistory"`
	Settings           []AppSettings       `json:"settings"`
}
