package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConstructorsAssignFreshIDs(t *testing.T) {
	e1 := NewEquipment("Walk-in", EquipmentTypeColdRoom)
	e2 := NewEquipment("Fryer 1", EquipmentTypeFryer)
	require.NotEmpty(t, e1.ID)
	require.NotEqual(t, e1.ID, e2.ID)
	require.Equal(t, e1.ID, e1.EntityID())

	r := NewTemperatureRecord(e1.ID, 3.5)
	require.NotEmpty(t, r.ID)
	require.Equal(t, e1.ID, r.EquipmentID)
	require.False(t, r.RecordedAt.IsZero())

	task := NewTask("Clean hood", TaskCategoryCleaning, TaskPriorityHigh)
	require.NotEmpty(t, task.ID)
	require.Equal(t, TaskRecurrenceNone, task.Recurrence)
	require.False(t, task.Done)
}

func TestLocalOnlyFieldsNeverSerialize(t *testing.T) {
	trace := ProductTrace{
		ID:          "t1",
		ProductName: "Salmon",
		RecordedAt:  time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC),
		Photo:       []byte{0xFF, 0xD8},
	}
	out, err := json.Marshal(trace)
	require.NoError(t, err)
	require.NotContains(t, string(out), "photo")

	inv := Invoice{
		ID:          "i1",
		Supplier:    "Metro",
		InvoiceDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Items:       []InvoiceItem{},
		PageImages:  [][]byte{{0x01}},
	}
	out, err = json.Marshal(inv)
	require.NoError(t, err)
	require.NotContains(t, string(out), "pageImages")

	set := AppSettings{ID: "main", OCRAPIKey: "sk-secret"}
	out, err = json.Marshal(set)
	require.NoError(t, err)
	require.NotContains(t, string(out), "sk-secret")
	require.NotContains(t, string(out), "ocrApiKey")
}

func TestCollectionNamesMatchPayloadKeys(t *testing.T) {
	p := BackupPayload{Version: BackupVersion, ExportedAt: time.Now().UTC()}
	out, err := json.Marshal(p)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &keys))
	for _, name := range CollectionNames {
		require.Contains(t, keys, name)
	}
}
