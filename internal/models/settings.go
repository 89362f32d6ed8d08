package models

// Language selects the UI language.
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

// Languages is the closed set accepted on import.
var Languages = []Language{LanguageFrench, LanguageEnglish}

// TemperatureUnit selects the display unit for readings.
type TemperatureUnit string

const (
	TemperatureUnitCelsius    TemperatureUnit = "C"
	TemperatureUnitFahrenheit TemperatureUnit = "F"
)

// TemperatureUnits is the closed set accepted on import.
var TemperatureUnits = []TemperatureUnit{TemperatureUnitCelsius, TemperatureUnitFahrenheit}

// AppSettings holds user preferences. OCRAPIKey is a credential: it is
// kept in the local store only, stripped from exports, and the import
// parser never reads it, so a backup can neither leak nor overwrite it.
type AppSettings struct {
	ID                string          `json:"id"`
	BusinessName      string          `json:"businessName,omitempty"`
	Language          Language        `json:"language,omitempty"`
	TemperatureUnit   TemperatureUnit `json:"temperatureUnit,omitempty"`
	AutoBackupEnabled *bool           `json:"autoBackupEnabled,omitempty"`
	OCRAPIKey         string          `json:"-"`
}

func (s AppSettings) EntityID() string { return s.ID }
