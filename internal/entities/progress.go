package entities

import "time"

type ProgressStep string

const (
	StepProductSelection  ProgressStep = "product_selection"
	StepDateSelection     ProgressStep = "date_selection"
	StepAddressInput      ProgressStep = "address_input"
	StepAdditionalOptions ProgressStep = "additional_options"
)

// ProgressSteps фиксированный порядок шагов мастера заказа.
var ProgressSteps = []ProgressStep{
	StepProductSelection,
	StepDateSelection,
	StepAddressInput,
	StepAdditionalOptions,
}

func (s ProgressStep) String() string {
	return string(s)
}

func (s ProgressStep) Valid() bool {
	for _, step := range ProgressSteps {
		if s == step {
			return true
		}
	}
	return false
}

// Previous возвращает предыдущий шаг и false для первого шага.
func (s ProgressStep) Previous() (ProgressStep, bool) {
	for i, step := range ProgressSteps {
		if s == step {
			if i == 0 {
				return "", false
			}
			return ProgressSteps[i-1], true
		}
	}
	return "", false
}

type ProductSelection struct {
	Category string                 `json:"category"`
	Product  string                 `json:"product"`
	Details  map[string]interface{} `json:"details"`
}

type DateSelection struct {
	Date          string `json:"date"`
	LoadingTime   string `json:"loading_time"`
	UnloadingTime string `json:"unloading_time"`
	IsWeekend     bool   `json:"is_weekend"`
	IsHoliday     bool   `json:"is_holiday"`
	IsNight       bool   `json:"is_night"`
}

type Address struct {
	Address       string `json:"address"`
	DetailAddress string `json:"detail_address"`
	PostalCode    string `json:"postal_code"`
}

type AddressInfo struct {
	LoadingAddress   Address `json:"loading_address"`
	UnloadingAddress Address `json:"unloading_address"`
	DistanceKm       float64 `json:"distance_km"`
}

type SelectedOption struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

type AdditionalOptions struct {
	SelectedOptions []SelectedOption `json:"selected_options"`
}

// StepData типизированный payload одного шага: заполнен ровно один вариант,
// соответствующий имени шага.
type StepData struct {
	ProductSelection  *ProductSelection
	DateSelection     *DateSelection
	AddressInfo       *AddressInfo
	AdditionalOptions *AdditionalOptions
}

// OrderProgress черновик заказа, единственный активный на пользователя.
type OrderProgress struct {
	ID                int64
	UserID            int64
	ProductSelection  *ProductSelection
	DateSelection     *DateSelection
	AddressInfo       *AddressInfo
	AdditionalOptions *AdditionalOptions
	CurrentStep       ProgressStep
	TotalPrice        int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// StepCompleted проверяет что данные шага уже сохранены в черновике.
func (p *OrderProgress) StepCompleted(step ProgressStep) bool {
	if p == nil {
		return false
	}
	switch step {
	case StepProductSelection:
		return p.ProductSelection != nil
	case StepDateSelection:
		return p.DateSelection != nil
	case StepAddressInput:
		return p.AddressInfo != nil
	case StepAdditionalOptions:
		return p.AdditionalOptions != nil
	default:
		return false
	}
}

type OrderProgressModify struct {
	ID                *int64
	UserID            *int64
	ProductSelection  *ProductSelection
	DateSelection     *DateSelection
	AddressInfo       *AddressInfo
	AdditionalOptions *AdditionalOptions
	CurrentStep       *ProgressStep
	TotalPrice        *int64
}
