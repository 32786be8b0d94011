package progress_step_post

import (
	"service/internal/entities"
	"service/internal/handlers/rest/dto"
)

func toStepData(req *dto.ProgressStepRequest) entities.StepData {
	data := entities.StepData{}

	if req.ProductSelection != nil {
		data.ProductSelection = &entities.ProductSelection{
			Category: req.ProductSelection.Category,
			Product:  req.ProductSelection.Product,
			Details:  req.ProductSelection.Details,
		}
	}
	if req.DateSelection != nil {
		data.DateSelection = &entities.DateSelection{
			Date:          req.DateSelection.Date,
			LoadingTime:   req.DateSelection.LoadingTime,
			UnloadingTime: req.DateSelection.UnloadingTime,
			IsWeekend:     req.DateSelection.IsWeekend,
			IsHoliday:     req.DateSelection.IsHoliday,
			IsNight:       req.DateSelection.IsNight,
		}
	}
	if req.AddressInfo != nil {
		data.AddressInfo = &entities.AddressInfo{
			LoadingAddress:   toAddress(req.AddressInfo.LoadingAddress),
			UnloadingAddress: toAddress(req.AddressInfo.UnloadingAddress),
			DistanceKm:       req.AddressInfo.DistanceKm,
		}
	}
	if req.AdditionalOptions != nil {
		// отсутствующий список не подменяем пустым, иначе валидация
		// шага не отличит его от присланного
		var options []entities.SelectedOption
		if req.AdditionalOptions.SelectedOptions != nil {
			options = make([]entities.SelectedOption, 0, len(req.AdditionalOptions.SelectedOptions))
			for _, option := range req.AdditionalOptions.SelectedOptions {
				options = append(options, entities.SelectedOption{
					Name:     option.Name,
					Price:    option.Price,
					Quantity: option.Quantity,
				})
			}
		}
		data.AdditionalOptions = &entities.AdditionalOptions{SelectedOptions: options}
	}

	return data
}

func toAddress(a dto.Address) entities.Address {
	return entities.Address{
		Address:       a.Address,
		DetailAddress: a.DetailAddress,
		PostalCode:    a.PostalCode,
	}
}

func toProgressDTO(p *entities.OrderProgress) dto.OrderProgress {
	progressDTO := dto.OrderProgress{
		ID:          p.ID,
		UserID:      p.UserID,
		CurrentStep: p.CurrentStep.String(),
		TotalPrice:  p.TotalPrice,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.ProductSelection != nil {
		progressDTO.ProductSelection = &dto.ProductSelection{
			Category: p.ProductSelection.Category,
			Product:  p.ProductSelection.Product,
			Details:  p.ProductSelection.Details,
		}
	}
	if p.DateSelection != nil {
		progressDTO.DateSelection = &dto.DateSelection{
			Date:          p.DateSelection.Date,
			LoadingTime:   p.DateSelection.LoadingTime,
			UnloadingTime: p.DateSelection.UnloadingTime,
			IsWeekend:     p.DateSelection.IsWeekend,
			IsHoliday:     p.DateSelection.IsHoliday,
			IsNight:       p.DateSelection.IsNight,
		}
	}
	if p.AddressInfo != nil {
		progressDTO.AddressInfo = &dto.AddressInfo{
			LoadingAddress:   fromAddress(p.AddressInfo.LoadingAddress),
			UnloadingAddress: fromAddress(p.AddressInfo.UnloadingAddress),
			DistanceKm:       p.AddressInfo.DistanceKm,
		}
	}
	if p.AdditionalOptions != nil {
		options := make([]dto.SelectedOption, 0, len(p.AdditionalOptions.SelectedOptions))
		for _, option := range p.AdditionalOptions.SelectedOptions {
			options = append(options, dto.SelectedOption{
				Name:     option.Name,
				Price:    option.Price,
				Quantity: option.Quantity,
			})
		}
		progressDTO.AdditionalOptions = &dto.AdditionalOptions{SelectedOptions: options}
	}

	return progressDTO
}

func fromAddress(a entities.Address) dto.Address {
	return dto.Address{
		Address:       a.Address,
		DetailAddress: a.DetailAddress,
		PostalCode:    a.PostalCode,
	}
}
