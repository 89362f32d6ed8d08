package backup

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atomixxxx/cuisine-app/internal/models"
	"github.com/atomixxxx/cuisine-app/internal/storage"
)

var testDBSeq int

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	testDBSeq++
	db, err := storage.Open(fmt.Sprintf("file:backup_test_%d?mode=memory&cache=shared", testDBSeq))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, storage.Migrate(context.Background(), db))
	return db
}

// fixedNow keeps exports and due-checks deterministic.
var fixedNow = time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

func setupService(t *testing.T, db *sql.DB, legacy *storage.LegacySnapshotStore) *Service {
	t.Helper()
	svc := NewService(db, legacy, Config{}, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func seed(t *testing.T, db *sql.DB, collection, id, doc string) {
	t.Helper()
	repo := storage.NewCollectionRepository(db)
	require.NoError(t, repo.Put(context.Background(), collection,
		storage.Document{ID: id, Doc: json.RawMessage(doc)}))
}

// seedDataset fills the store with one record per collection, including
// the non-portable fields that must never reach an export.
func seedDataset(t *testing.T, db *sql.DB) {
	t.Helper()
	seed(t, db, models.CollectionEquipment, "eq-1",
		`{"id":"eq-1","name":"Frigo bar","type":"fridge","minTemp":0,"maxTemp":4}`)
	seed(t, db, models.CollectionTemperatureRecords, "tr-1",
		`{"id":"tr-1","equipmentId":"eq-1","temperature":3.5,"recordedAt":"2025-03-02T08:00:00Z","recordedBy":"Marie"}`)
	seed(t, db, models.CollectionOilChangeRecords, "oc-1",
		`{"id":"oc-1","fryerId":"eq-2","action":"filtered","recordedAt":"2025-03-01T18:00:00Z"}`)
	seed(t, db, models.CollectionTasks, "task-1",
		`{"id":"task-1","title":"Nettoyage hotte","category":"cleaning","priority":"high","recurrence":"weekly","done":false,"tags":["hotte"]}`)
	seed(t, db, models.CollectionProductTraces, "pt-1",
		`{"id":"pt-1","productName":"Saumon frais","recordedAt":"2025-03-02T06:00:00Z","lotNumber":"L-2231","photo":"QmFzZTY0"}`)
	seed(t, db, models.CollectionInvoices, "inv-1",
		`{"id":"inv-1","supplier":"Metro","invoiceDate":"2025-02-28T00:00:00Z","totalAmount":412.8,"items":[{"id":"li-1","name":"Beurre AOP","quantity":10,"unitPrice":7.2}],"pageImages":["QmFzZTY0"]}`)
	seed(t, db, models.CollectionPriceHistory, "ph-1",
		`{"id":"ph-1","productName":"Beurre AOP","price":7.2,"recordedAt":"2025-02-28T00:00:00Z","supplier":"Metro"}`)
	seed(t, db, models.CollectionSettings, "settings",
		`{"id":"settings","businessName":"Le Goéland","language":"fr","temperatureUnit":"C","ocrApiKey":"sk-secret"}`)
}

func collectionIDs(t *testing.T, db *sql.DB, collection string) []string {
	t.Helper()
	docs, err := storage.NewCollectionRepository(db).GetAll(context.Background(), collection)
	require.NoError(t, err)
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids
}
