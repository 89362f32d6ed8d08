package models

import (
	"time"

	"github.com/google/uuid"
)

// TemperatureRecord is one reading for a piece of equipment. EquipmentID
// is a plain string key; referential integrity is the caller's concern.
type TemperatureRecord struct {
	ID          string    `json:"id"`
	EquipmentID string    `json:"equipmentId"`
	Temperature float64   `json:"temperature"`
	RecordedAt  time.Time `json:"recordedAt"`
	RecordedBy  string    `json:"recordedBy,omitempty"`
	Note        string    `json:"note,omitempty"`
}

// NewTemperatureRecord creates a reading taken now.
func NewTemperatureRecord(equipmentID string, temperature float64) *TemperatureRecord {
	return &TemperatureRecord{
		ID:          uuid.NewString(),
		EquipmentID: equipmentID,
		Temperature: temperature,
		RecordedAt:  time.Now().UTC(),
	}
}

func (r TemperatureRecord) EntityID() string { return r.ID }

// OilChangeAction describes what was done to a fryer's oil.
type OilChangeAction string

const (
	OilChangeActionChanged  OilChangeAction = "changed"
	OilChangeActionFiltered OilChangeAction = "filtered"
	OilChangeActionToppedUp OilChangeAction = "topped_up"
	OilChangeActionTested   OilChangeAction = "tested"
)

// OilChangeActions is the closed set accepted on import.
var OilChangeActions = []OilChangeAction{
	OilChangeActionChanged,
	OilChangeActionFiltered,
	OilChangeActionToppedUp,
	OilChangeActionTested,
}

// OilChangeRecord tracks fryer oil maintenance.
type OilChangeRecord struct {
	ID         string          `json:"id"`
	FryerID    string          `json:"fryerId"`
	Action     OilChangeAction `json:"action"`
	RecordedAt time.Time       `json:"recordedAt"`
	Polarity   *float64        `json:"polarity,omitempty"`
	Note       string          `json:"note,omitempty"`
}

func (r OilChangeRecord) EntityID() string { return r.ID }
