package birthday

import (
	"strings"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	dob := date(2000, time.March, 15)

	cases := []struct {
		name  string
		today time.Time
		want  int
	}{
		{"day before birthday", date(2024, time.March, 14), 23},
		{"on the birthday", date(2024, time.March, 15), 24},
		{"day after birthday", date(2024, time.March, 16), 24},
		{"earlier month", date(2024, time.January, 1), 23},
		{"later month", date(2024, time.December, 31), 24},
		{"same day as birth", date(2000, time.March, 15), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Age(dob, tc.today); got != tc.want {
				t.Errorf("Age(%s, %s) = %d, want %d", dob, tc.today, got, tc.want)
			}
		})
	}
}

func TestZodiacSignBoundaries(t *testing.T) {
	cases := []struct {
		month time.Month
		day   int
		want  string
	}{
		{time.January, 19, "Capricorn"},
		{time.January, 20, "Aquarius"},
		{time.February, 18, "Aquarius"},
		{time.February, 19, "Pisces"},
		{time.February, 29, "Pisces"},
		{time.March, 20, "Pisces"},
		{time.March, 21, "Aries"},
		{time.June, 21, "Cancer"},
		{time.July, 22, "Cancer"},
		{time.July, 23, "Leo"},
		{time.December, 21, "Sagittarius"},
		{time.December, 22, "Capricorn"},
		{time.December, 31, "Capricorn"},
		{time.January, 1, "Capricorn"},
	}
	for _, tc := range cases {
		if got := ZodiacSign(tc.month, tc.day); got != tc.want {
			t.Errorf("ZodiacSign(%v, %d) = %q, want %q", tc.month, tc.day, got, tc.want)
		}
	}
}

func TestZodiacSignTotal(t *testing.T) {
	labels := map[string]bool{
		"Aries": true, "Taurus": true, "Gemini": true, "Cancer": true,
		"Leo": true, "Virgo": true, "Libra": true, "Scorpio": true,
		"Sagittarius": true, "Capricorn": true, "Aquarius": true, "Pisces": true,
	}
	seen := map[string]bool{}

	// Walk every day of a leap year so all 366 (month, day) pairs are covered.
	for d := date(2024, time.January, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		sign := ZodiacSign(d.Month(), d.Day())
		if !labels[sign] {
			t.Fatalf("ZodiacSign(%v, %d) = %q, not one of the twelve signs", d.Month(), d.Day(), sign)
		}
		seen[sign] = true
	}
	if len(seen) != 12 {
		t.Errorf("expected all 12 signs to appear over a year, got %d", len(seen))
	}
}

func TestGiftSuggestion(t *testing.T) {
	if got := GiftSuggestion("Taurus"); !strings.Contains(got, "scented candle") {
		t.Errorf("unexpected suggestion for Taurus: %q", got)
	}
	// Signs missing from the table fall back to the generic suggestion.
	if got := GiftSuggestion("Leo"); got != genericGift {
		t.Errorf("expected generic fallback for Leo, got %q", got)
	}
	if got := GiftSuggestion("not-a-sign"); got != genericGift {
		t.Errorf("expected generic fallback for unknown sign, got %q", got)
	}
}

func TestRandomFunFact(t *testing.T) {
	known := map[string]bool{}
	for _, f := range funFacts {
		known[f] = true
	}
	for i := 0; i < 50; i++ {
		if f := RandomFunFact(); !known[f] {
			t.Fatalf("RandomFunFact returned unknown fact %q", f)
		}
	}
}

func TestParseDOB(t *testing.T) {
	got, err := ParseDOB("03-15-1990")
	if err != nil {
		t.Fatalf("ParseDOB failed: %v", err)
	}
	if got.Year() != 1990 || got.Month() != time.March || got.Day() != 15 {
		t.Errorf("ParseDOB = %v, want 1990-03-15", got)
	}

	for _, bad := range []string{"15-03-1990", "1990-03-15", "13-01-2000", "03-32-1990", "3-15-90", "hello-there-world"} {
		if _, err := ParseDOB(bad); err == nil {
			t.Errorf("ParseDOB(%q) succeeded, want error", bad)
		}
	}
}

func TestFormatDOB(t *testing.T) {
	if got := FormatDOB(date(1990, time.March, 15)); got != "March 15, 1990" {
		t.Errorf("FormatDOB = %q, want %q", got, "March 15, 1990")
	}
}

func TestDefaultMessage(t *testing.T) {
	msg := DefaultMessage(24, "Pisces", "a gift", "a fact")
	want := "🎉 Happy Birthday! You are now 24 years old.\nZodiac Sign: Pisces\nGift Suggestion: a gift\nFun Fact: a fact"
	if msg != want {
		t.Errorf("DefaultMessage = %q, want %q", msg, want)
	}
}
