package dto

import (
	"github.com/tableauchef/tableauchef_backend/internal/core/domain"
)

// JournalEntryResponse is the public shape of one register closure record.
type JournalEntryResponse struct {
	JournalID      string `json:"journalID"`
	RestaurantName string `json:"restaurantName"`
	Date           string `json:"date"`
	TotalSales     string `json:"totalSales"`
	OpeningCash    string `json:"openingCash"`
	Variance       string `json:"variance"`
	ClosedBy       string `json:"closedBy"`
	CreatedAt      string `json:"createdAt"`
}

// ToJournalEntryResponse converts a domain journal entry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		JournalID:      e.JournalID,
		RestaurantName: e.RestaurantName,
		Date:           e.Date,
		TotalSales:     e.TotalSales.String(),
		OpeningCash:    e.OpeningCash.String(),
		Variance:       e.Variance.String(),
		ClosedBy:       e.ClosedBy,
		CreatedAt:      e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ListJournalsParams defines query parameters for listing journal entries.
type ListJournalsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListJournalsResponse wraps a page of journal entries.
type ListJournalsResponse struct {
	Journals []JournalEntryResponse `json:"journals"`
}

// ToListJournalsResponse converts a slice of entries to the list DTO.
func ToListJournalsResponse(entries []domain.JournalEntry) ListJournalsResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToJournalEntryResponse(&entries[i])
	}
	return ListJournalsResponse{Journals: out}
}
