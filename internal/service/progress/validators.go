package progress

import (
	"fmt"
	"strings"

	"service/internal/entities"
)

// validateStepData структурная проверка payload шага: требуемые поля
// присутствуют и непусты. Семантику (формат индекса, дата в будущем)
// этот слой не проверяет.
func validateStepData(step entities.ProgressStep, data entities.StepData) error {
	switch step {
	case entities.StepProductSelection:
		return validateProductSelection(data.ProductSelection)
	case entities.StepDateSelection:
		return validateDateSelection(data.DateSelection)
	case entities.StepAddressInput:
		return validateAddressInput(data.AddressInfo)
	case entities.StepAdditionalOptions:
		return validateAdditionalOptions(data.AdditionalOptions)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStep, step)
	}
}

func validateProductSelection(data *entities.ProductSelection) error {
	if data == nil {
		return ErrEmptyStepData
	}
	if strings.TrimSpace(data.Category) == "" {
		return fmt.Errorf("%w: category", ErrEmptyField)
	}
	if strings.TrimSpace(data.Product) == "" {
		return fmt.Errorf("%w: product", ErrEmptyField)
	}
	if data.Details == nil {
		return fmt.Errorf("%w: details", ErrMissingField)
	}
	return nil
}

func validateDateSelection(data *entities.DateSelection) error {
	if data == nil {
		return ErrEmptyStepData
	}
	if strings.TrimSpace(data.Date) == "" {
		return fmt.Errorf("%w: date", ErrMissingField)
	}
	if strings.TrimSpace(data.LoadingTime) == "" {
		return fmt.Errorf("%w: loading_time", ErrMissingField)
	}
	if strings.TrimSpace(data.UnloadingTime) == "" {
		return fmt.Errorf("%w: unloading_time", ErrMissingField)
	}
	// времена вида "HH:MM" сравниваются лексикографически
	if data.LoadingTime >= data.UnloadingTime {
		return ErrInvalidTimeRange
	}
	return nil
}

func validateAddressInput(data *entities.AddressInfo) error {
	if data == nil {
		return ErrEmptyStepData
	}
	if err := validateAddress("loading_address", data.LoadingAddress); err != nil {
		return err
	}
	return validateAddress("unloading_address", data.UnloadingAddress)
}

func validateAddress(name string, address entities.Address) error {
	if strings.TrimSpace(address.Address) == "" {
		return fmt.Errorf("%w: %s.address", ErrMissingField, name)
	}
	if strings.TrimSpace(address.DetailAddress) == "" {
		return fmt.Errorf("%w: %s.detail_address", ErrMissingField, name)
	}
	if strings.TrimSpace(address.PostalCode) == "" {
		return fmt.Errorf("%w: %s.postal_code", ErrMissingField, name)
	}
	return nil
}

func validateAdditionalOptions(data *entities.AdditionalOptions) error {
	if data == nil {
		return ErrEmptyStepData
	}
	// selected_options обязан присутствовать, но может быть пустым
	if data.SelectedOptions == nil {
		return fmt.Errorf("%w: selected_options", ErrMissingField)
	}
	return nil
}
