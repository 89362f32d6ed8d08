// Package models defines the domain entities persisted in the local
// store and carried through backup payloads. Optional fields use
// pointers so a rejected or absent value marshals as an omitted key.
package models

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentType classifies a monitored piece of equipment.
type EquipmentType string

const (
	EquipmentTypeFridge     EquipmentType = "fridge"
	EquipmentTypeFreezer    EquipmentType = "freezer"
	EquipmentTypeFryer      EquipmentType = "fryer"
	EquipmentTypeHotCabinet EquipmentType = "hot_cabinet"
	EquipmentTypeColdRoom   EquipmentType = "cold_room"
)

// EquipmentTypes is the closed set accepted on import. A tag outside
// this list rejects the record so future tags cannot be imported as
// something else.
var EquipmentTypes = []EquipmentType{
	EquipmentTypeFridge,
	EquipmentTypeFreezer,
	EquipmentTypeFryer,
	EquipmentTypeHotCabinet,
	EquipmentTypeColdRoom,
}

// Equipment is a temperature-monitored unit (fridge, fryer, …).
type Equipment struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      EquipmentType `json:"type"`
	MinTemp   *float64      `json:"minTemp,omitempty"`
	MaxTemp   *float64      `json:"maxTemp,omitempty"`
	CreatedAt *time.Time    `json:"createdAt,omitempty"`
}

// NewEquipment creates an equipment unit with a fresh id.
func NewEquipment(name string, t EquipmentType) *Equipment {
	now := time.Now().UTC()
	return &Equipment{ID: uuid.NewString(), Name: name, Type: t, CreatedAt: &now}
}

func (e Equipment) EntityID() string { return e.ID }
