package pricing

import (
	"math"

	"service/internal/entities"
)

// Тарифы в вонах.
const (
	BasePriceSmall  int64 = 50000
	BasePriceMedium int64 = 100000
	BasePriceLarge  int64 = 150000

	// Расстояние: до DistanceThresholdKm действует плоская BaseDistanceFee,
	// дальше PerKmRate за каждый километр сверх порога.
	DistanceThresholdKm float64 = 20
	BaseDistanceFee     int64   = 20000
	PerKmRate           int64   = 1000

	SurchargeWeekend float64 = 1.2
	SurchargeHoliday float64 = 1.3
	SurchargeNight   float64 = 1.2
)

var basePrices = map[string]int64{
	"small":  BasePriceSmall,
	"medium": BasePriceMedium,
	"large":  BasePriceLarge,
}

// Calculator чистый расчёт итоговой цены по снимку черновика заказа.
// Отсутствующий или неполный шаг даёт нулевой вклад соответствующего
// слагаемого, падения расчёта нет.
type Calculator struct{}

func New() *Calculator {
	return &Calculator{}
}

// TotalPrice считает (base + distance) * surcharge + options,
// округляя до целой воны.
func (c *Calculator) TotalPrice(progress *entities.OrderProgress) int64 {
	if progress == nil {
		return 0
	}

	base := c.basePrice(progress.ProductSelection)
	distance := c.distanceFee(progress.AddressInfo)
	surcharge := c.timeSurcharge(progress.DateSelection)
	options := c.optionsFee(progress.AdditionalOptions)

	total := float64(base+distance)*surcharge + float64(options)
	return int64(math.Round(total))
}

// DegradedTerms возвращает имена шагов, давших нулевой вклад из-за
// отсутствия данных. Вызывающий логирует их, деградация не молчаливая.
func (c *Calculator) DegradedTerms(progress *entities.OrderProgress) []string {
	if progress == nil {
		return []string{
			entities.StepProductSelection.String(),
			entities.StepDateSelection.String(),
			entities.StepAddressInput.String(),
			entities.StepAdditionalOptions.String(),
		}
	}

	var degraded []string
	if progress.ProductSelection == nil {
		degraded = append(degraded, entities.StepProductSelection.String())
	}
	if progress.DateSelection == nil {
		degraded = append(degraded, entities.StepDateSelection.String())
	}
	if progress.AddressInfo == nil {
		degraded = append(degraded, entities.StepAddressInput.String())
	}
	if progress.AdditionalOptions == nil {
		degraded = append(degraded, entities.StepAdditionalOptions.String())
	}
	return degraded
}

func (c *Calculator) basePrice(product *entities.ProductSelection) int64 {
	if product == nil {
		return 0
	}

	if price, ok := basePrices[product.Category]; ok {
		return price
	}
	// неизвестная категория тарифицируется по младшей
	return BasePriceSmall
}

func (c *Calculator) distanceFee(address *entities.AddressInfo) int64 {
	if address == nil {
		return 0
	}
	return DistanceFee(address.DistanceKm)
}

func (c *Calculator) timeSurcharge(date *entities.DateSelection) float64 {
	if date == nil {
		return 1.0
	}

	surcharge := 1.0
	if date.IsWeekend {
		surcharge *= SurchargeWeekend
	}
	if date.IsHoliday {
		surcharge *= SurchargeHoliday
	}
	if date.IsNight {
		surcharge *= SurchargeNight
	}
	return surcharge
}

func (c *Calculator) optionsFee(options *entities.AdditionalOptions) int64 {
	if options == nil {
		return 0
	}

	var fee int64
	for _, option := range options.SelectedOptions {
		quantity := option.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		fee += option.Price * quantity
	}
	return fee
}

// DistanceFee общая формула дорожного сбора, используется и для
// черновика и для разбивки предложения.
func DistanceFee(distanceKm float64) int64 {
	if distanceKm <= DistanceThresholdKm {
		return BaseDistanceFee
	}
	extra := distanceKm - DistanceThresholdKm
	return BaseDistanceFee + int64(math.Round(extra*float64(PerKmRate)))
}
