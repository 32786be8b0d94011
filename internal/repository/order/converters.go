package order

import (
	"encoding/json"
	"fmt"

	"service/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	order := &entities.Order{
		ID:                o.ID,
		UserID:            o.UserID,
		QuoteID:           o.QuoteID,
		Status:            entities.OrderStatusType(o.Status),
		FromAddressID:     o.FromAddressID,
		ToAddressID:       o.ToAddressID,
		ShippingCompanyID: o.ShippingCompanyID,
		TotalPrice:        o.TotalPrice,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}

	if o.Items != nil {
		if err := json.Unmarshal(o.Items, &order.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
	}
	if o.AdditionalOptions != nil {
		if err := json.Unmarshal(o.AdditionalOptions, &order.AdditionalOptions); err != nil {
			return nil, fmt.Errorf("unmarshal order additional options: %w", err)
		}
	}

	return order, nil
}
