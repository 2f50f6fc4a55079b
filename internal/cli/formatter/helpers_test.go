package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{5, "5"},
		{999, "999"},
		{1000, "1,000"},
		{5000, "5,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-5000, "-5,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in), "Money(%d)", tt.in)
	}
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Mar 14, 2026", HumanDate("2026-03-14"))
	assert.Equal(t, "--", HumanDate(""))
	assert.Equal(t, "not-a-date", HumanDate("not-a-date"), "bad input echoes back")
}

func TestTruncID(t *testing.T) {
	got := TruncID("0123456789abcdef")
	assert.Contains(t, got, "01234567")
	assert.NotContains(t, got, "89abcdef")
}
