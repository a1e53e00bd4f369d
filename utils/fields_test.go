package utils

import (
	"errors"
	"testing"
	"time"
)

func TestFieldsDate(t *testing.T) {
	f := Fields{"date": " 2024-01-01 ", "bad": "01/02/2024"}

	d, err := f.Date("date")
	if err != nil {
		t.Fatalf("Date: %v", err)
	}
	if !d.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", d)
	}

	var fe *FieldError
	if _, err := f.Date("bad"); !errors.As(err, &fe) || fe.Field != "bad" {
		t.Fatalf("expected FieldError for bad, got %v", err)
	}
	if _, err := f.Date("missing"); !errors.As(err, &fe) {
		t.Fatalf("expected FieldError for missing date, got %v", err)
	}

	opt, err := f.OptionalDate("missing")
	if err != nil || opt != nil {
		t.Fatalf("OptionalDate(missing) = %v, %v", opt, err)
	}
}

func TestFieldsNumbers(t *testing.T) {
	f := Fields{"cal": "90", "reps": "12", "junk": "ten", "nan": "NaN", "empty": ""}

	v, err := f.Float("cal")
	if err != nil || v == nil || *v != 90 {
		t.Fatalf("Float(cal) = %v, %v", v, err)
	}
	n, err := f.Int("reps")
	if err != nil || n == nil || *n != 12 {
		t.Fatalf("Int(reps) = %v, %v", n, err)
	}
	if v, err := f.Float("empty"); err != nil || v != nil {
		t.Fatalf("empty float should be absent, got %v, %v", v, err)
	}
	if _, err := f.Float("junk"); err == nil {
		t.Fatalf("expected error for junk float")
	}
	if _, err := f.Float("nan"); err == nil {
		t.Fatalf("expected error for NaN")
	}
	if _, err := f.Int("cal.5"); err != nil {
		t.Fatalf("missing int should be absent, got %v", err)
	}
	if _, err := (Fields{"sets": "2.5"}).Int("sets"); err == nil {
		t.Fatalf("expected error for fractional int")
	}
	if f.LenientFloat("junk") != nil {
		t.Fatalf("LenientFloat should drop junk")
	}
}

func TestRequiredString(t *testing.T) {
	f := Fields{"foodName": "  egg ", "blank": "   "}
	if v, err := f.RequiredString("foodName"); err != nil || v != "egg" {
		t.Fatalf("RequiredString = %q, %v", v, err)
	}
	if _, err := f.RequiredString("blank"); err == nil {
		t.Fatalf("expected error for blank value")
	}
}
