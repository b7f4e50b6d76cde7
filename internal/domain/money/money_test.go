package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewRejectsNegative(t *testing.T) {
	if _, err := New(decimal.NewFromFloat(-0.01)); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
	if _, err := NewFromString("-1.00"); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestNewRoundsToScaleTwo(t *testing.T) {
	m, err := NewFromString("1.005")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.String() != "1.01" {
		t.Fatalf("expected 1.01, got %s", m.String())
	}
}

func TestArithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		got := MustFromString("44.50").Add(MustFromString("22.50")).Add(MustFromString("5.00"))
		if got.String() != "72.00" {
			t.Fatalf("expected 72.00, got %s", got.String())
		}
	})

	t.Run("mul rounds at checkpoint", func(t *testing.T) {
		// 0.20 * 200 = 40.00
		got, err := MustFromString("0.20").Mul(decimal.NewFromInt(200))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.String() != "40.00" {
			t.Fatalf("expected 40.00, got %s", got.String())
		}
	})

	t.Run("mul rejects negative factor", func(t *testing.T) {
		if _, err := MustFromString("1.00").Mul(decimal.NewFromInt(-1)); !errors.Is(err, ErrNegativeAmount) {
			t.Fatalf("expected ErrNegativeAmount, got %v", err)
		}
	})

	t.Run("mul int", func(t *testing.T) {
		if got := MustFromString("6.18").MulInt(6); got.String() != "37.08" {
			t.Fatalf("expected 37.08, got %s", got.String())
		}
	})

	t.Run("comparisons", func(t *testing.T) {
		if !Zero.IsZero() {
			t.Fatal("expected Zero to be zero")
		}
		if !MustFromString("1.00").LessThan(MustFromString("1.01")) {
			t.Fatal("expected 1.00 < 1.01")
		}
		if !MustFromString("2.50").Equal(MustFromString("2.5")) {
			t.Fatal("expected scale-insensitive equality")
		}
	})
}
