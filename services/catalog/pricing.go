package catalog

import (
	"time"

	"altitude/models"
)

// DateFormat is the wire format for booking dates.
const DateFormat = "2006-01-02"

// PriceQuote computes the total price for a booking. The headcount is
// checked against the package minimum before any price is computed.
func PriceQuote(name string, numJumpers int, privateRoom bool) (*models.Quote, error) {
	pkg, ok := packages[name]
	if !ok {
		return nil, newUnknownPackageError(name, Names())
	}
	if numJumpers < pkg.MinJumpers {
		return nil, newBelowMinimumError(name, pkg.MinJumpers, numJumpers)
	}

	basePrice := pkg.PricePerJumper * numJumpers
	roomFee := 0
	if privateRoom {
		roomFee = pkg.RoomFeePerHead * numJumpers
	}

	return &models.Quote{
		Package:     name,
		NumJumpers:  numJumpers,
		BasePrice:   basePrice,
		PrivateRoom: privateRoom,
		RoomFee:     roomFee,
		Total:       basePrice + roomFee,
	}, nil
}

// ValidateDateRestriction checks a date against the package's
// day-of-week restriction. A date that fails to parse is rejected with a
// malformed-date error; it must never slip past the restriction check.
func ValidateDateRestriction(name string, date string) error {
	pkg, ok := packages[name]
	if !ok {
		return newUnknownPackageError(name, Names())
	}

	parsed, err := time.Parse(DateFormat, date)
	if err != nil {
		return newMalformedDateError(date)
	}
	if !pkg.AllowsDay(parsed.Weekday()) {
		return newRestrictedDayError(name, parsed.Weekday().String(), pkg.AllowedDayNames())
	}
	return nil
}
