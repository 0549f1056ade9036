package domain

import "time"

// CrowdLevel - уровень загруженности
type CrowdLevel string

const (
	CrowdLow    CrowdLevel = "Low"
	CrowdMedium CrowdLevel = "Medium"
	CrowdHigh   CrowdLevel = "High"
)

// AirQuality - качество воздуха
type AirQuality string

const (
	AirGood      AirQuality = "Good"
	AirModerate  AirQuality = "Moderate"
	AirExcellent AirQuality = "Excellent"
)

var (
	CrowdLevels  = []CrowdLevel{CrowdLow, CrowdMedium, CrowdHigh}
	AirQualities = []AirQuality{AirGood, AirModerate, AirExcellent}
)

// Диапазоны симуляции, нижняя граница включительно, верхняя нет
const (
	TemperatureMin = 25
	TemperatureMax = 35
	HumidityMin    = 40
	HumidityMax    = 60
)

// SensorField - имя поля показаний, используемое для подсветки изменений
type SensorField string

const (
	FieldTemperature SensorField = "temperature"
	FieldHumidity    SensorField = "humidity"
	FieldCrowdLevel  SensorField = "crowdLevel"
	FieldAirQuality  SensorField = "airQuality"
)

// SensorReading - симулированный снимок показаний, заменяется целиком на каждом тике
type SensorReading struct {
	Temperature int        `json:"temperature"`
	Humidity    int        `json:"humidity"`
	CrowdLevel  CrowdLevel `json:"crowdLevel"`
	AirQuality  AirQuality `json:"airQuality"`
	RecordedAt  time.Time  `json:"recordedAt"`
}

// DefaultSensorReading - показания до первого тика
func DefaultSensorReading() SensorReading {
	return SensorReading{
		Temperature: 28,
		Humidity:    45,
		CrowdLevel:  CrowdMedium,
		AirQuality:  AirGood,
	}
}

// InRange - все поля лежат в допустимых диапазонах и перечислениях
func (r SensorReading) InRange() bool {
	return r.Temperature >= TemperatureMin && r.Temperature < TemperatureMax &&
		r.Humidity >= HumidityMin && r.Humidity < HumidityMax &&
		contains(CrowdLevels, r.CrowdLevel) &&
		contains(AirQualities, r.AirQuality)
}

// ChangedFields - поля, отличающиеся между двумя показаниями
func ChangedFields(prev, cur SensorReading) []SensorField {
	changed := make([]SensorField, 0, 4)
	if prev.Temperature != cur.Temperature {
		changed = append(changed, FieldTemperature)
	}
	if prev.Humidity != cur.Humidity {
		changed = append(changed, FieldHumidity)
	}
	if prev.CrowdLevel != cur.CrowdLevel {
		changed = append(changed, FieldCrowdLevel)
	}
	if prev.AirQuality != cur.AirQuality {
		changed = append(changed, FieldAirQuality)
	}
	return changed
}

// SensorSnapshot - текущее и предыдущее показания с набором изменившихся полей
type SensorSnapshot struct {
	Current  SensorReading  `json:"current"`
	Previous *SensorReading `json:"previous,omitempty"`
	Changed  []SensorField  `json:"changed"`
}
