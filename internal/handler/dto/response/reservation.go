package response

import (
	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/usecase/queries"
)

type ReservationResponse struct {
	Code      string `json:"code"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PartySize int    `json:"partySize"`
	Status    string `json:"status"`
}

type AvailabilityResponse struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	PartySize       int    `json:"partySize"`
	Available       bool   `json:"available"`
	TablesRequired  int    `json:"tablesRequired"`
	TablesAvailable int    `json:"tablesAvailable"`
}

type ViolationResponse struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		Code:      v.Code,
		Date:      v.Date,
		Time:      v.Time,
		PartySize: v.PartySize,
		Status:    v.Status,
	}
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:            v.Date,
		Time:            v.Time,
		PartySize:       v.PartySize,
		Available:       v.IsAvailable,
		TablesRequired:  v.TablesRequired,
		TablesAvailable: v.TablesAvailable,
	}
}

func FromViolations(vs []reservation.Violation) []ViolationResponse {
	out := make([]ViolationResponse, len(vs))
	for i, v := range vs {
		out[i] = ViolationResponse{
			Field:   string(v.Field),
			Kind:    string(v.Kind),
			Message: v.Message,
		}
	}
	return out
}
