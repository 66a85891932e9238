package service

import (
	"github.com/mmynk/tripsplit/internal/calculator"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/pkg/api"
)

func toAPITrip(trip *models.Trip) *api.Trip {
	return &api.Trip{
		Id:        trip.ID,
		Name:      trip.Name,
		Location:  trip.Location,
		Dates:     trip.Dates,
		Line:      trip.Line(),
		CreatedAt: trip.CreatedAt,
	}
}

func toAPIParticipant(p *models.Participant) *api.Participant {
	return &api.Participant{
		Id:        p.ID,
		TripId:    p.TripID,
		Name:      p.Name,
		Initials:  p.Initials,
		CreatedAt: p.CreatedAt,
	}
}

func toAPIExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		Id:                     e.ID,
		TripId:                 e.TripID,
		Title:                  e.Title,
		Amount:                 e.Amount,
		PayerId:                e.PayerID,
		IncludedParticipantIds: e.IncludedParticipantIDs,
		CreatedAt:              e.CreatedAt,
	}
}

// toAPISummary rounds money to cents; the calculator keeps full precision.
func toAPISummary(trip *models.Trip, summary *calculator.Summary) *api.GetTripSummaryResponse {
	members := make([]*api.MemberBalance, len(summary.Members))
	for i, m := range summary.Members {
		members[i] = &api.MemberBalance{
			ParticipantId: m.ParticipantID,
			Name:          m.Name,
			Initials:      m.Initials,
			NetBalance:    m.NetBalance.Round(2),
			TotalPaid:     m.TotalPaid.Round(2),
			TotalShare:    m.TotalShare.Round(2),
			ExpenseCount:  int32(m.ExpenseCount),
			Status:        string(m.Status),
		}
	}

	settlements := make([]*api.Settlement, len(summary.Settlements))
	for i, s := range summary.Settlements {
		settlements[i] = &api.Settlement{
			FromParticipantId: s.FromParticipantID,
			FromName:          summary.MemberName(s.FromParticipantID),
			ToParticipantId:   s.ToParticipantID,
			ToName:            summary.MemberName(s.ToParticipantID),
			Amount:            s.Amount.Round(2),
		}
	}

	return &api.GetTripSummaryResponse{
		Trip:             toAPITrip(trip),
		MemberBalances:   members,
		Settlements:      settlements,
		TotalAmount:      summary.TotalAmount.Round(2),
		ParticipantCount: int32(summary.ParticipantCount),
		ExpenseCount:     int32(summary.ExpenseCount),
		Settled:          summary.Settled(),
	}
}
