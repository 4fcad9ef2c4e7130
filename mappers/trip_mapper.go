// file: mappers/trip_mapper.go
package mappers

import (
	"github.com/stansam/EduSafaris-sub001/dto"
	"github.com/stansam/EduSafaris-sub001/models"
)

func MapCreateReqToTrip(req dto.CreateTripReq, organizerID uint32) models.Trip {
	consentRequired := true
	if req.ConsentRequired != nil {
		consentRequired = *req.ConsentRequired
	}
	return models.Trip{
		Title:                req.Title,
		Description:          req.Description,
		Destination:          req.Destination,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		RegistrationDeadline: req.RegistrationDeadline,
		PricePerStudent:      req.PricePerStudent,
		MinParticipants:      req.MinParticipants,
		MaxParticipants:      req.MaxParticipants,
		OrganizerID:          organizerID,
		Itinerary:            req.Itinerary,
		IsFeatured:           req.IsFeatured,
		MedicalInfoRequired:  req.MedicalInfoRequired,
		ConsentRequired:      consentRequired,
	}
}

func MapTripToItemResp(t models.Trip, currentParticipants int64) dto.TripItemResp {
	return dto.TripItemResp{
		ID:                   t.ID,
		Title:                t.Title,
		Destination:          t.Destination,
		StartDate:            t.StartDate.Format("2006-01-02"),
		EndDate:              t.EndDate.Format("2006-01-02"),
		RegistrationDeadline: t.RegistrationDeadline.Format("2006-01-02"),
		PricePerStudent:      t.PricePerStudent,
		Status:               string(t.Status),
		MaxParticipants:      t.MaxParticipants,
		CurrentParticipants:  currentParticipants,
		IsFeatured:           t.IsFeatured,
	}
}

func MapTripToDetailResp(t models.Trip, currentParticipants int64) dto.TripDetailResp {
	resp := dto.TripDetailResp{
		ID:                   t.ID,
		Title:                t.Title,
		Description:          t.Description,
		Destination:          t.Destination,
		StartDate:            t.StartDate.Format("2006-01-02"),
		EndDate:              t.EndDate.Format("2006-01-02"),
		RegistrationDeadline: t.RegistrationDeadline.Format("2006-01-02"),
		PricePerStudent:      t.PricePerStudent,
		MinParticipants:      t.MinParticipants,
		MaxParticipants:      t.MaxParticipants,
		CurrentParticipants:  currentParticipants,
		Status:               string(t.Status),
		OrganizerID:          t.OrganizerID,
		Itinerary:            t.Itinerary,
		CancelReason:         t.CancelReason,
		IsFeatured:           t.IsFeatured,
		MedicalInfoRequired:  t.MedicalInfoRequired,
		ConsentRequired:      t.ConsentRequired,
	}
	if t.Organizer.ID != 0 {
		resp.OrganizerName = t.Organizer.FullName()
	}
	return resp
}

func MapParticipantToItemResp(p models.Participant, trip *models.Trip) dto.ParticipantItemResp {
	resp := dto.ParticipantItemResp{
		ID:            p.ID,
		TripID:        p.TripID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Grade:         p.Grade,
		Status:        string(p.Status),
		PaymentStatus: string(p.PaymentStatus),
		AmountPaid:    p.AmountPaid,
	}
	if trip != nil {
		resp.TripTitle = trip.Title
		resp.TripReady = p.IsTripReady(trip)
	}
	return resp
}
