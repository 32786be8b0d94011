package quote

import (
	"encoding/json"
	"fmt"

	"service/internal/entities"
)

func ToDomain(q *QuoteDB) (*entities.Quote, error) {
	if q == nil {
		return nil, nil
	}

	quote := &entities.Quote{
		ID:             q.ID,
		UserID:         q.UserID,
		FromAddressID:  q.FromAddressID,
		ToAddressID:    q.ToAddressID,
		FromPostalCode: q.FromPostalCode,
		ToPostalCode:   q.ToPostalCode,
		DistanceKm:     q.DistanceKm,
		Breakdown: entities.PriceBreakdown{
			BasePrice:      q.BasePrice,
			DistanceFee:    q.DistanceFee,
			FloorFee:       q.FloorFee,
			SpecialFee:     q.SpecialFee,
			DiscountAmount: q.DiscountAmount,
			FinalPrice:     q.FinalPrice,
		},
		Status:     entities.QuoteStatus(q.Status),
		ValidUntil: q.ValidUntil,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}

	if q.Items != nil {
		if err := json.Unmarshal(q.Items, &quote.Items); err != nil {
			return nil, fmt.Errorf("unmarshal quote items: %w", err)
		}
	}
	if q.FloorInfo != nil {
		if err := json.Unmarshal(q.FloorInfo, &quote.FloorInfo); err != nil {
			return nil, fmt.Errorf("unmarshal floor info: %w", err)
		}
	}
	if q.SpecialRequirements != nil {
		if err := json.Unmarshal(q.SpecialRequirements, &quote.SpecialRequirements); err != nil {
			return nil, fmt.Errorf("unmarshal special requirements: %w", err)
		}
	}

	return quote, nil
}
