package pricing

import "service/internal/entities"

// Тарифы разбивки предложения.
const (
	// FloorFeePerFloor за каждый этаж выше первого на точке без лифта.
	FloorFeePerFloor int64 = 10000
)

// QuotePricer собирает постатейную разбивку цены предложения:
// base + distance + floor + special - discount.
type QuotePricer struct{}

func NewQuotePricer() *QuotePricer {
	return &QuotePricer{}
}

func (p *QuotePricer) Breakdown(req entities.QuoteRequest) entities.PriceBreakdown {
	base := p.basePrice(req.Items)
	distance := DistanceFee(req.DistanceKm)
	floor := p.floorFee(req.FloorInfo)
	special := p.specialFee(req.SpecialRequirements)
	discount := p.discount(base)

	return entities.PriceBreakdown{
		BasePrice:      base,
		DistanceFee:    distance,
		FloorFee:       floor,
		SpecialFee:     special,
		DiscountAmount: discount,
		FinalPrice:     base + distance + floor + special - discount,
	}
}

func (p *QuotePricer) basePrice(items []entities.QuoteItem) int64 {
	var base int64
	for _, item := range items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		base += item.Price * quantity
	}
	return base
}

func (p *QuotePricer) floorFee(info entities.FloorInfo) int64 {
	var fee int64
	if !info.FromElevator && info.FromFloor > 1 {
		fee += int64(info.FromFloor-1) * FloorFeePerFloor
	}
	if !info.ToElevator && info.ToFloor > 1 {
		fee += int64(info.ToFloor-1) * FloorFeePerFloor
	}
	return fee
}

func (p *QuotePricer) specialFee(requirements []entities.SpecialRequirement) int64 {
	var fee int64
	for _, requirement := range requirements {
		fee += requirement.Fee
	}
	return fee
}

// discount купонного движка нет, скидка всегда нулевая.
func (p *QuotePricer) discount(_ int64) int64 {
	return 0
}
