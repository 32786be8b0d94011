package order_post

import (
	"service/internal/entities"
	"service/internal/handlers/rest/dto"
)

func toOrderDTO(o *entities.Order) dto.Order {
	items := make([]dto.QuoteItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.QuoteItem{
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	options := make([]dto.SelectedOption, 0, len(o.AdditionalOptions))
	for _, option := range o.AdditionalOptions {
		options = append(options, dto.SelectedOption{
			Name:     option.Name,
			Price:    option.Price,
			Quantity: option.Quantity,
		})
	}

	return dto.Order{
		ID:                o.ID,
		UserID:            o.UserID,
		QuoteID:           o.QuoteID,
		Status:            o.Status.String(),
		Items:             items,
		FromAddressID:     o.FromAddressID,
		ToAddressID:       o.ToAddressID,
		AdditionalOptions: options,
		ShippingCompanyID: o.ShippingCompanyID,
		TotalPrice:        o.TotalPrice,
		CreatedAt:         o.CreatedAt,
	}
}
