package validator

import (
	"io"
	"testing"

	"airseat/pkg/logger"
	"airseat/pkg/model"
)

func testValidator() *BookingValidator {
	return NewBookingValidator(logger.New(logger.Config{
		Level:  "error",
		Output: io.Discard,
	}))
}

func validRequest() *model.BookingRequest {
	return &model.BookingRequest{
		FlightID: "FL-100",
		SeatID:   "12C",
		Buyer: &model.Person{
			Name:        "Marco",
			Surname:     "Rossi",
			DocumentID:  "AB12345",
			DateOfBirth: "1987-06-21",
			Balance:     500.00,
		},
	}
}

func TestValidate_ValidRequest(t *testing.T) {
	if err := testValidator().Validate(validRequest()); err != nil {
		t.Errorf("expected valid request, got: %v", err)
	}
}

func TestValidate_MissingFlightID(t *testing.T) {
	req := validRequest()
	req.FlightID = ""
	if err := testValidator().Validate(req); err == nil {
		t.Error("expected error for missing flight ID")
	}
}

func TestValidate_SeatCodes(t *testing.T) {
	cases := []struct {
		seat string
		ok   bool
	}{
		{"1A", true},
		{"12C", true},
		{"99K", true},
		{"", false},
		{"A1", false},
		{"123A", false},
		{"12c", false},
		{"12Z", false},
		{"0A", false},
	}

	v := testValidator()
	for _, tc := range cases {
		req := validRequest()
		req.SeatID = tc.seat
		err := v.Validate(req)
		if tc.ok && err != nil {
			t.Errorf("seat %q: expected valid, got: %v", tc.seat, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("seat %q: expected invalid", tc.seat)
		}
	}
}

func TestValidate_MissingBuyer(t *testing.T) {
	req := validRequest()
	req.Buyer = nil
	if err := testValidator().Validate(req); err == nil {
		t.Error("expected error for missing buyer")
	}
}

func TestValidate_NegativeBalance(t *testing.T) {
	req := validRequest()
	req.Buyer.Balance = -0.01
	if err := testValidator().Validate(req); err == nil {
		t.Error("expected error for negative balance")
	}
}

func TestValidate_BadDocumentID(t *testing.T) {
	v := testValidator()

	req := validRequest()
	req.Buyer.DocumentID = "AB123"
	if err := v.Validate(req); err == nil {
		t.Error("expected error for short document ID")
	}

	req = validRequest()
	req.Buyer.DocumentID = "AB-1234"
	if err := v.Validate(req); err == nil {
		t.Error("expected error for non-alphanumeric document ID")
	}
}

func TestValidate_BadDateOfBirth(t *testing.T) {
	req := validRequest()
	req.Buyer.DateOfBirth = "21/06/1987"
	if err := testValidator().Validate(req); err == nil {
		t.Error("expected error for malformed date of birth")
	}
}
