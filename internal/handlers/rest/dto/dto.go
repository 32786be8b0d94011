// Package dto содержит типы запросов и ответов REST API.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type ProductSelection struct {
	Category string                 `json:"category"`
	Product  string                 `json:"product"`
	Details  map[string]interface{} `json:"details,omitempty"`
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
	DetailAddress string `json:"detail_address,omitempty"`
	PostalCode    string `json:"postal_code"`
}

type AddressInfo struct {
	LoadingAddress   Address `json:"loading_address"`
	UnloadingAddress Address `json:"unloading_address"`
	DistanceKm       float64 `json:"distance_km,omitempty"`
}

type SelectedOption struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

type AdditionalOptions struct {
	SelectedOptions []SelectedOption `json:"selected_options"`
}

// ProgressStepRequest тело POST /orders/progress/{step}: заполнено
// ровно одно поле data, соответствующее шагу из пути.
type ProgressStepRequest struct {
	UserID            int64              `json:"user_id"`
	ProductSelection  *ProductSelection  `json:"product_selection,omitempty"`
	DateSelection     *DateSelection     `json:"date_selection,omitempty"`
	AddressInfo       *AddressInfo       `json:"address_info,omitempty"`
	AdditionalOptions *AdditionalOptions `json:"additional_options,omitempty"`
}

type OrderProgress struct {
	ID                int64              `json:"id"`
	UserID            int64              `json:"user_id"`
	ProductSelection  *ProductSelection  `json:"product_selection,omitempty"`
	DateSelection     *DateSelection     `json:"date_selection,omitempty"`
	AddressInfo       *AddressInfo       `json:"address_info,omitempty"`
	AdditionalOptions *AdditionalOptions `json:"additional_options,omitempty"`
	CurrentStep       string             `json:"current_step"`
	TotalPrice        int64              `json:"total_price"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

type ProgressPriceResponse struct {
	TotalPrice int64 `json:"total_price"`
}

type QuoteItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

type FloorInfo struct {
	FromFloor    int  `json:"from_floor"`
	ToFloor      int  `json:"to_floor"`
	FromElevator bool `json:"from_elevator"`
	ToElevator   bool `json:"to_elevator"`
}

type SpecialRequirement struct {
	Type string `json:"type"`
	Fee  int64  `json:"fee"`
}

type QuoteCreate struct {
	UserID              int64                `json:"user_id"`
	Items               []QuoteItem          `json:"items"`
	FromAddressID       int64                `json:"from_address_id"`
	ToAddressID         int64                `json:"to_address_id"`
	FromPostalCode      string               `json:"from_postal_code"`
	ToPostalCode        string               `json:"to_postal_code"`
	DistanceKm          float64              `json:"distance_km,omitempty"`
	FloorInfo           FloorInfo            `json:"floor_info"`
	SpecialRequirements []SpecialRequirement `json:"special_requirements,omitempty"`
}

type PriceBreakdown struct {
	BasePrice      int64 `json:"base_price"`
	DistanceFee    int64 `json:"distance_fee"`
	FloorFee       int64 `json:"floor_fee"`
	SpecialFee     int64 `json:"special_fee"`
	DiscountAmount int64 `json:"discount_amount"`
	FinalPrice     int64 `json:"final_price"`
}

type Quote struct {
	ID         int64          `json:"id"`
	UserID     int64          `json:"user_id"`
	Items      []QuoteItem    `json:"items"`
	DistanceKm float64        `json:"distance_km"`
	Breakdown  PriceBreakdown `json:"breakdown"`
	Status     string         `json:"status"`
	ValidUntil time.Time      `json:"valid_until"`
}

type OrderCreate struct {
	UserID            int64            `json:"user_id"`
	QuoteID           int64            `json:"quote_id"`
	AdditionalOptions []SelectedOption `json:"additional_options,omitempty"`
}

type Order struct {
	ID                int64            `json:"id"`
	UserID            int64            `json:"user_id"`
	QuoteID           int64            `json:"quote_id"`
	Status            string           `json:"status"`
	Items             []QuoteItem      `json:"items,omitempty"`
	FromAddressID     int64            `json:"from_address_id"`
	ToAddressID       int64            `json:"to_address_id"`
	AdditionalOptions []SelectedOption `json:"additional_options,omitempty"`
	ShippingCompanyID *int64           `json:"shipping_company_id,omitempty"`
	TotalPrice        int64            `json:"total_price"`
	CreatedAt         time.Time        `json:"created_at"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}

type OrderShippingUpdate struct {
	ShippingCompanyID int64 `json:"shipping_company_id"`
}

type TimeSlot struct {
	ID                   int64  `json:"id"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	AreaCode             string `json:"area_code"`
	MaxCapacity          int32  `json:"max_capacity"`
	CurrentBookings      int32  `json:"current_bookings"`
	Remaining            int32  `json:"remaining"`
	IsLoadingAvailable   bool   `json:"is_loading_available"`
	IsUnloadingAvailable bool   `json:"is_unloading_available"`
}

type SlotsResponse struct {
	Slots []TimeSlot `json:"slots"`
}

type BookingCreate struct {
	UserID         int64  `json:"user_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	AreaCode       string `json:"area_code"`
	DeliveryOption string `json:"delivery_option"`
	LoadingTime    string `json:"loading_time"`
	UnloadingTime  string `json:"unloading_time"`
}

type Booking struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	TimeSlotID     int64     `json:"time_slot_id"`
	Status         string    `json:"status"`
	DeliveryOption string    `json:"delivery_option"`
	LoadingTime    string    `json:"loading_time"`
	UnloadingTime  string    `json:"unloading_time"`
	ExpiresAt      time.Time `json:"expires_at"`
}
