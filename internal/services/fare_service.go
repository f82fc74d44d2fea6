package services

import (
	"math"

	"doonconnect/internal/domain"
	"doonconnect/internal/domain/models"
)

// Fare floor per seat, charged regardless of how short the hop is.
const minPerSeatFare int64 = 10

// Flat fee added for every non-cash payment method.
const convenienceFee int64 = 5

const gstRate = 0.05

// FareService prices a journey from the route's full fare and the distance
// travelled, measured in stop positions.
type FareService struct{}

// ComputeFare returns the total for seatCount seats between the two stops.
// Both stop ids must belong to the route; unknown ids are a validation
// error rather than a silent zero-distance fare.
func (FareService) ComputeFare(route models.Route, fromStopID, toStopID string, seatCount int) (int64, error) {
	if seatCount <= 0 {
		return 0, domain.ValidationError{Field: "seats", Msg: "at least one seat required"}
	}
	fromIdx := route.StopIndex(fromStopID)
	if fromIdx < 0 {
		return 0, domain.ValidationError{Field: "fromStop", Msg: "stop not on route"}
	}
	toIdx := route.StopIndex(toStopID)
	if toIdx < 0 {
		return 0, domain.ValidationError{Field: "toStop", Msg: "stop not on route"}
	}

	distance := int64(toIdx - fromIdx)
	if distance < 0 {
		distance = -distance
	}

	perSeat := route.Fare * distance / int64(len(route.Stops))
	if perSeat < minPerSeatFare {
		perSeat = minPerSeatFare
	}
	return perSeat * int64(seatCount), nil
}

// Breakdown itemizes the amount due: cash rides skip the convenience fee,
// GST is rounded half-up on the intermediate figure only. An empty method is
// allowed for preview and priced like a non-cash method.
func (FareService) Breakdown(baseFare int64, method models.PaymentMethod) (models.PaymentBreakdown, error) {
	if method != "" && !models.KnownPaymentMethod(method) {
		return models.PaymentBreakdown{}, domain.ValidationError{Field: "paymentMethod", Msg: "unknown payment method"}
	}
	fee := convenienceFee
	if method == models.PayCash {
		fee = 0
	}
	gst := int64(math.Round(float64(baseFare+fee) * gstRate))
	return models.PaymentBreakdown{
		BaseFare:       baseFare,
		ConvenienceFee: fee,
		GST:            gst,
		Total:          baseFare + fee + gst,
		Method:         method,
	}, nil
}
