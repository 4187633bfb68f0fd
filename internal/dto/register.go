package dto

import (
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// OpenRegisterRequest declares the opening float. The amount arrives as a
// string so the service can apply the "supplied, parseable, non-empty" rule
// itself rather than relying on JSON number coercion.
type OpenRegisterRequest struct {
	OpeningCash string `json:"openingCash"`
}

// ComputeVarianceRequest carries the physically counted cash.
type ComputeVarianceRequest struct {
	ActualCashCounted string `json:"actualCashCounted"`
}

// RegisterSessionResponse is the public shape of a register session.
type RegisterSessionResponse struct {
	RestaurantName string `json:"restaurantName"`
	IsOpen         bool   `json:"isOpen"`
	OpenedBy       string `json:"openedBy,omitempty"`
	OpenTime       string `json:"openTime,omitempty"`
	OpeningCash    string `json:"openingCash"`
	LastVariance   string `json:"lastVariance,omitempty"`
}

// ToRegisterSessionResponse converts a domain session to its response DTO.
func ToRegisterSessionResponse(s *domain.RegisterSession) RegisterSessionResponse {
	resp := RegisterSessionResponse{
		RestaurantName: s.RestaurantName,
		IsOpen:         s.IsOpen,
		OpenedBy:       s.OpenedBy,
		OpeningCash:    s.OpeningCash.String(),
	}
	if s.OpenTime != nil {
		resp.OpenTime = s.OpenTime.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	if s.LastVariance != nil {
		resp.LastVariance = s.LastVariance.String()
	}
	return resp
}

// VarianceResponse is the outcome of a variance computation.
type VarianceResponse struct {
	OpeningCash  string `json:"openingCash"`
	CashSales    string `json:"cashSales"`
	ExpectedCash string `json:"expectedCash"`
	ActualCash   string `json:"actualCash"`
	Variance     string `json:"variance"`
}

// ToVarianceResponse converts a domain variance report to its response DTO.
func ToVarianceResponse(r *domain.VarianceReport) VarianceResponse {
	return VarianceResponse{
		OpeningCash:  r.OpeningCash.String(),
		CashSales:    r.CashSales.String(),
		ExpectedCash: r.ExpectedCash.String(),
		ActualCash:   r.ActualCash.String(),
		Variance:     r.Variance.String(),
	}
}
