package progress

import (
	"encoding/json"
	"fmt"

	"service/internal/entities"
)

func ToDomain(p *OrderProgressDB) (*entities.OrderProgress, error) {
	if p == nil {
		return nil, nil
	}

	progress := &entities.OrderProgress{
		ID:          p.ID,
		UserID:      p.UserID,
		CurrentStep: entities.ProgressStep(p.CurrentStep),
		TotalPrice:  p.TotalPrice,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if p.ProductSelection != nil {
		progress.ProductSelection = &entities.ProductSelection{}
		if err := json.Unmarshal(p.ProductSelection, progress.ProductSelection); err != nil {
			return nil, fmt.Errorf("unmarshal product selection: %w", err)
		}
	}
	if p.DateSelection != nil {
		progress.DateSelection = &entities.DateSelection{}
		if err := json.Unmarshal(p.DateSelection, progress.DateSelection); err != nil {
			return nil, fmt.Errorf("unmarshal date selection: %w", err)
		}
	}
	if p.AddressInfo != nil {
		progress.AddressInfo = &entities.AddressInfo{}
		if err := json.Unmarshal(p.AddressInfo, progress.AddressInfo); err != nil {
			return nil, fmt.Errorf("unmarshal address info: %w", err)
		}
	}
	if p.AdditionalOptions != nil {
		progress.AdditionalOptions = &entities.AdditionalOptions{}
		if err := json.Unmarshal(p.AdditionalOptions, progress.AdditionalOptions); err != nil {
			return nil, fmt.Errorf("unmarshal additional options: %w", err)
		}
	}

	return progress, nil
}

func FromDomainModify(p *entities.OrderProgressModify) (*OrderProgressModifyDB, error) {
	if p == nil {
		return nil, nil
	}

	progressModifyDB := &OrderProgressModifyDB{
		ID:     p.ID,
		UserID: p.UserID,
	}

	if p.CurrentStep != nil {
		step := p.CurrentStep.String()
		progressModifyDB.CurrentStep = &step
	}
	if p.TotalPrice != nil {
		progressModifyDB.TotalPrice = p.TotalPrice
	}

	var err error
	if p.ProductSelection != nil {
		progressModifyDB.ProductSelection, err = json.Marshal(p.ProductSelection)
		if err != nil {
			return nil, fmt.Errorf("marshal product selection: %w", err)
		}
	}
	if p.DateSelection != nil {
		progressModifyDB.DateSelection, err = json.Marshal(p.DateSelection)
		if err != nil {
			return nil, fmt.Errorf("marshal date selection: %w", err)
		}
	}
	if p.AddressInfo != nil {
		progressModifyDB.AddressInfo, err = json.Marshal(p.AddressInfo)
		if err != nil {
			return nil, fmt.Errorf("marshal address info: %w", err)
		}
	}
	if p.AdditionalOptions != nil {
		progressModifyDB.AdditionalOptions, err = json.Marshal(p.AdditionalOptions)
		if err != nil {
			return nil, fmt.Errorf("marshal additional options: %w", err)
		}
	}

	return progressModifyDB, nil
}
