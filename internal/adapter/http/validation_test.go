package http

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		ProposalID string `json:"proposal_id" validate:"hex32"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{ProposalID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}
	for _, s := range []string{
		"",
		strings.Repeat("A", 32),
		"deadbeef",
		strings.Repeat("g", 32),
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x",
	} {
		err := cv.Validate(P{ProposalID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "proposal_id", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDecimalValidation(t *testing.T) {
	type P struct {
		Amount decimal.Decimal  `json:"proposal_amount" validate:"gt=0,dec2"`
		Final  *decimal.Decimal `json:"final_amount" validate:"omitempty,gt=0,dec2"`
	}
	cv := NewValidator()

	ok := decimal.RequireFromString("45000.50")
	if err := cv.Validate(P{Amount: ok, Final: &ok}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
	if err := cv.Validate(P{Amount: ok}); err != nil {
		t.Fatalf("nil optional should pass, got %v", err)
	}
	big := decimal.RequireFromString("99999999999999.99")
	if err := cv.Validate(P{Amount: big, Final: &big}); err != nil {
		t.Fatalf("large 2-place amount should pass, got %v", err)
	}

	cases := []struct {
		p     P
		field string
		msg   string
	}{
		{P{Amount: decimal.Zero}, "proposal_amount", "greater than 0"},
		{P{Amount: decimal.RequireFromString("-5")}, "proposal_amount", "greater than 0"},
		{P{Amount: decimal.RequireFromString("10.123")}, "proposal_amount", "2 decimal places"},
		{P{Amount: decimal.RequireFromString("99999999999999.999")}, "proposal_amount", "2 decimal places"},
		{P{Amount: decimal.RequireFromString("123456789012.001")}, "proposal_amount", "2 decimal places"},
		{P{Amount: ok, Final: decPtr("98765432109876.541")}, "final_amount", "2 decimal places"},
	}
	for _, c := range cases {
		err := cv.Validate(c.p)
		if err == nil {
			t.Fatalf("expected error for %+v", c.p)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, c.field, c.msg) {
			t.Fatalf("expected %q on %s, got %+v", c.msg, c.field, fe)
		}
	}
}

func TestPhoneValidation(t *testing.T) {
	type P struct {
		Phone string `json:"phone" validate:"phone"`
	}
	cv := NewValidator()
	for _, s := range []string{"11987654321", "+5511987654321", "12345678"} {
		if err := cv.Validate(P{Phone: s}); err != nil {
			t.Fatalf("expected %q valid: %v", s, err)
		}
	}
	for _, s := range []string{"", "1234567", "(11) 98765-4321", "+55 11 98765", "1234567890123456"} {
		err := cv.Validate(P{Phone: s})
		if err == nil {
			t.Fatalf("expected %q invalid", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "phone", "digits") {
			t.Fatalf("unexpected message for %q: %+v", s, fe)
		}
	}
}

func TestProposalStatusValidation(t *testing.T) {
	type P struct {
		Status string `query:"status" validate:"omitempty,proposal_status"`
	}
	cv := NewValidator()
	for _, s := range []string{"", "pending", "won", "bank_rejected", "outbid"} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected %q valid: %v", s, err)
		}
	}
	err := cv.Validate(P{Status: "lost"})
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "status", "known proposal status") {
		t.Fatalf("unexpected: %+v", fe)
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
