package validate

import (
	"github.com/atomixxxx/cuisine-app/internal/models"
)

// Record parsers compose field validators into whole-record decoders.
// A required field that rejects voids the whole record; optional fields
// that reject are omitted from the result without complaint.

func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// Equipment parses one untyped equipment record.
func Equipment(v any) (models.Equipment, bool) {
	obj, ok := asObject(v)
	if !ok {
		return models.Equipment{}, false
	}
	id, ok := String(obj["id"])
	if !ok {
		return models.Equipment{}, false
	}
	name, ok := String(obj["name"])
	if !ok {
		return models.Equipment{}, false
	}
	typ, ok := Enum(obj["type"], models.EquipmentTypes)
	if !ok {
		return models.Equipment{}, false
	}
	e := models.Equipment{ID: id, Name: name, Type: typ}
	if n, ok := Number(obj["minTemp"]); ok {
		e.MinTemp = &n
	}
	if n, ok := Number(obj["maxTemp"]); ok {
		e.MaxTemp = &n
	}
	if d, ok := Date(obj["createdAt"]); ok {
		e.CreatedAt = &d
	}
	return e, true
}

// TemperatureRecord parses one untyped temperature reading. The
// equipment reference is kept as an opaque string key; dangling
// references are not an import concern.
func TemperatureRecord(v any) (models.TemperatureRecord, bool) {
	obj, ok := asObject(v)
	if !ok {
		return models.TemperatureRecord{}, false
	}
	id, ok := String(obj["id"])
	if !ok {
		return models.TemperatureRecord{}, false
	}
	equipmentID, ok := String(obj["equipmentId"])
	if !ok {
		return models.TemperatureRecord{}, false
	}
	temperature, ok := Number(obj["temperature"])
	if !ok {
		return models.TemperatureRecord{}, false
	}
	recordedAt, ok := Date(obj["recordedAt"])
	if !ok {
		return models.TemperatureRecord{}, false
	}
	r := models.TemperatureRecord{
		ID:          id,
		EquipmentID: equipmentID,
		Temperature: temperature,
		RecordedAt:  recordedAt,
	}
	if s, ok := String(obj["recordedBy"]); ok {
		r.RecordedBy = s
	}
	if s, ok := String(obj["note"]); ok {
		r.Note = s
	}
	return r, true
}

// OilChangeRecord parses one untyped oil maintenance record.
func OilChangeRecord(v any) (models.OilChangeRecord, bool) {
	obj, ok := asObject(v)
	if !ok {
		return models.OilChangeRecord{}, false
	}
	id, ok := String(obj["id"])
	if !ok {
		return models.OilChangeRecord{}, false
	}
	fryerID, ok := String(obj["fryerId"])
	if !ok {
		return models.OilChangeRecord{}, false
	}
	action, ok := Enum(obj["action"], models.OilChangeActions)
	if !ok {
		return models.OilChangeRecord{}, false
	}
	recordedAt, ok := Date(obj["recordedAt"])
	if !ok {
		return models.OilChangeRecord{}, false
	}
	r := models.OilChangeRecord{ID: id, FryerID: fryerID, Action: action, RecordedAt: recordedAt}
	if n, ok := Number(obj["polarity"]); ok {
		r.Polarity = &n
	}
	if s, ok := String(obj["note"]); ok {
		r.Note = s
	}
	return r, true
}

// Task parses one untyped task record.
func Task(v any) (models.Task, bool) {
	obj, ok := asObject(v)
	if !ok {
		return models.Task{}, false
	}
	id, ok := String(obj["id"])
	if !ok {
		return models.Task{}, false
	}
	title, ok := String(obj["title"])
	if !ok {
		return models.Task{}, false
	}
	category, ok := Enum(obj["category"], models.TaskCategories)
	if !ok {
		return models.Task{}, false
	}
	priority, ok := Enum(obj["priority"], models.TaskPriorities)
	if !ok {
		return models.Task{}, false
	}
	recurrence, ok := Enum(obj["recurrence"], models.TaskRecurrences)
	if !ok {
		return models.Task{}, false
	}
	done, ok := Bool(obj["done"])
	if !ok {
		return models.Task{}, false
	}
	t := models.Task{
		ID:         id,
		Title:      title,
		Category:   category,
		Priority:   priority,
		Recurrence: recurrence,
		Done:       done,
	}
	if d, ok := Date(obj["dueAt"]); ok {
		t.DueAt = &d
	}
	if d, ok := Date(obj["completedAt"]); ok {
		t.CompletedAt = &d
	}
	if tags, ok := StringList(obj["tags"]); ok {
		t.Tags = tags
	}
	if s, ok := String(obj["note"]); ok {
		t.Note = s
	}
	return t, true
}

// ProductTrace parses one untyped traceability record. Photos are
// binary payloads and are never accepted through a backup.
func ProductTrace(v any) (models.ProductTrace, bool) {
	obj, ok := asObject(v)
	if !ok {
		return models.ProductTrace{}, false
	}
	id, ok := String(obj["id"])
	if !ok {
		return models.ProductTrace{}, false
	}
	productName, ok := String(obj["productName"])
	if !ok {
		return models.ProductTrace{}, false
	}
	recordedAt, ok := Date(obj["recordedAt"])
	if !ok {
		return models.ProductTrace{}, false
	}
	p := models.ProductTrace{ID: id, ProductName: productName, RecordedAt: recordedAt}
	if s, ok := String(obj["lotNumber"]); ok {
		p.LotNumber = s
	}
	if s, ok := String(obj["supplier"]); ok {
		p.Supplier = s
	}
	if d, ok := Date(obj["expiryDate"]); ok {
		p.ExpiryDate = &d
	}
	if labels, ok := StringList(obj["labels"]); ok {
		p.Labels = labels
	}
	return p, true
}

// InvoiceItem parses one inline invoice line.
func InvoiceItem(v any) (models.InvoiceItem, bool) {
	obj, ok := asObject(v)
	if !ok {
		return models.InvoiceItem{}, false
	}
	id, ok := String(obj["id"])
	if !ok {
		return models.InvoiceItem{}, false
	}
	name, ok := String(obj["name"])
	if !ok {
		return models.InvoiceItem{}, false
	}
	item := models.InvoiceItem{ID: id, Name: name}
	if n, ok := Number(obj["quantity"]); ok {
		item.Quantity = &n
	}
	if n, ok := Number(obj["unitPrice"]); ok {
		item.UnitPrice = &n
	}
	return item, true
}

// Invoice parses one untyped invoice with its inline items. A missing
// items key means an empty invoice; a malformed items list or any bad
// line rejects the invoice. Page images never cross the boundary.
func Invoice(v any) (models.Invoice, bool) {
	obj, ok := asObject(v)
	if !ok {
		return models.Invoice{}, false
	}
	id, ok := String(obj["id"])
	if !ok {
		return models.Invoice{}, false
	}
	supplier, ok := String(obj["supplier"])
	if !ok {
		return models.Invoice{}, false
	}
	invoiceDate, ok := Date(obj["invoiceDate"])
	if !ok {
		return models.Invoice{}, false
	}
	items, ok := parseAll(obj["items"], InvoiceItem)
	if !ok {
		return models.Invoice{}, false
	}
	inv := models.Invoice{ID: id, Supplier: supplier, InvoiceDate: invoiceDate, Items: items}
	if n, ok := Number(obj["totalAmount"]); ok {
		inv.TotalAmount = &n
	}
	if d, ok := Date(obj["createdAt"]); ok {
		inv.CreatedAt = &d
	}
	return inv, true
}

// PriceHistory parses one untyped price point.
func PriceHistory(v any) (models.PriceHistory, bool) {
	obj, ok := asObject(v)
	if !ok {
		return models.PriceHistory{}, false
	}
	id, ok := String(obj["id"])
	if !ok {
		return models.PriceHistory{}, false
	}
	productName, ok := String(obj["productName"])
	if !ok {
		return models.PriceHistory{}, false
	}
	price, ok := Number(obj["price"])
	if !ok {
		return models.PriceHistory{}, false
	}
	recordedAt, ok := Date(obj["recordedAt"])
	if !ok {
		return models.PriceHistory{}, false
	}
	p := models.PriceHistory{ID: id, ProductName: productName, Price: price, RecordedAt: recordedAt}
	if s, ok := String(obj["supplier"]); ok {
		p.Supplier = s
	}
	if s, ok := String(obj["unit"]); ok {
		p.Unit = s
	}
	return p, true
}

// AppSettings parses one untyped settings record. The stored OCR key is
// deliberately absent from the accepted shape: a backup can neither
// leak nor overwrite credentials through restore.
func AppSettings(v any) (models.AppSettings, bool) {
	obj, ok := asObject(v)
	if !ok {
		return models.AppSettings{}, false
	}
	id, ok := String(obj["id"])
	if !ok {
		return models.AppSettings{}, false
	}
	s := models.AppSettings{ID: id}
	if name, ok := String(obj["businessName"]); ok {
		s.BusinessName = name
	}
	if lang, ok := Enum(obj["language"], models.Languages); ok {
		s.Language = lang
	}
	if unit, ok := Enum(obj["temperatureUnit"], models.TemperatureUnits); ok {
		s.TemperatureUnit = unit
	}
	if b, ok := Bool(obj["autoBackupEnabled"]); ok {
		s.AutoBackupEnabled = &b
	}
	return s, true
}
