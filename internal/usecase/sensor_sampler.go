package usecase

import (
	"math/rand/v2"
	"time"

	"github.com/smart-jordan/internal/domain"
)

// SensorSampler генерирует новые симулированные показания
type SensorSampler interface {
	Sample() domain.SensorReading
}

type randomSampler struct {
	rnd *rand.Rand
	now func() time.Time
}

// NewRandomSampler создает сэмплер на глобальном источнике случайных чисел
func NewRandomSampler() SensorSampler {
	return &randomSampler{now: time.Now}
}

// NewSeededSampler создает детерминированный сэмплер. Не безопасен для конкурентного вызова.
func NewSeededSampler(seed uint64) SensorSampler {
	return &randomSampler{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: time.Now,
	}
}

// Sample - температура в [25,35), влажность в [40,60), равновероятный выбор перечислений
func (s *randomSampler) Sample() domain.SensorReading {
	return domain.SensorReading{
		Temperature: domain.TemperatureMin + s.intN(domain.TemperatureMax-domain.TemperatureMin),
		Humidity:    domain.HumidityMin + s.intN(domain.HumidityMax-domain.HumidityMin),
		CrowdLevel:  domain.CrowdLevels[s.intN(len(domain.CrowdLevels))],
		AirQuality:  domain.AirQualities[s.intN(len(domain.AirQualities))],
		RecordedAt:  s.now().UTC(),
	}
}

func (s *randomSampler) intN(n int) int {
	if s.rnd != nil {
		return s.rnd.IntN(n)
	}
	return rand.IntN(n)
}
