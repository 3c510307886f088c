// Package birthday holds the pure calendar calculators behind the birthday
// messages: age, zodiac sign, gift suggestion and fun facts. Everything here
// is deterministic except the fact picker, and nothing touches I/O.
package birthday

import (
	"fmt"
	"math/rand"
	"time"

	"birthday-botique/internal/domain"
)

// DOBLayout is the strict input format users register with.
const DOBLayout = "01-02-2006" // MM-DD-YYYY

// displayLayout renders stored dates back to users, e.g. "March 15, 1990".
const displayLayout = "January 2, 2006"

// ParseDOB parses a strict MM-DD-YYYY date of birth.
func ParseDOB(text string) (time.Time, error) {
	t, err := time.Parse(DOBLayout, text)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDateFormat
	}
	return t, nil
}

// FormatDOB renders a date of birth for user-facing replies.
func FormatDOB(dob time.Time) string {
	return dob.Format(displayLayout)
}

// Age returns the number of full years elapsed between dob and today.
// On the birthday itself the new age already counts.
func Age(dob, today time.Time) int {
	years := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		years--
	}
	return years
}

// signChange lists, per month, the sign before the boundary day, the boundary
// day itself, and the sign starting on it. Boundary dates belong to the sign
// that starts on them; Capricorn wraps the year end (Dec 22 - Jan 19).
var signChange = [13]struct {
	before string
	day    int
	from   string
}{
	1:  {"Capricorn", 20, "Aquarius"},
	2:  {"Aquarius", 19, "Pisces"},
	3:  {"Pisces", 21, "Aries"},
	4:  {"Aries", 20, "Taurus"},
	5:  {"Taurus", 21, "Gemini"},
	6:  {"Gemini", 21, "Cancer"},
	7:  {"Cancer", 23, "Leo"},
	8:  {"Leo", 23, "Virgo"},
	9:  {"Virgo", 23, "Libra"},
	10: {"Libra", 23, "Scorpio"},
	11: {"Scorpio", 22, "Sagittarius"},
	12: {"Sagittarius", 22, "Capricorn"},
}

// ZodiacSign maps a (month, day) pair to one of the twelve signs. It is total
// over every calendar date including Feb 29.
func ZodiacSign(month time.Month, day int) string {
	c := signChange[month]
	if day < c.day {
		return c.before
	}
	return c.from
}

var giftSuggestions = map[string]string{
	"Aries":  "Consider a fitness tracker or something that supports their active lifestyle.",
	"Taurus": "A luxurious scented candle or gourmet chocolate would be perfect.",
	"Gemini": "Books or puzzles to stimulate their curious mind.",
	"Cancer": "A cozy blanket or a photo frame for their cherished memories.",
}

// genericGift covers signs missing from the table; the table being partial is
// intentional, not an error.
const genericGift = "A thoughtful gift based on their hobbies would be great!"

// GiftSuggestion returns a suggestion string for the given zodiac sign.
func GiftSuggestion(sign string) string {
	if s, ok := giftSuggestions[sign]; ok {
		return s
	}
	return genericGift
}

var funFacts = []string{
	"Your birthday falls on the same day as National Ice Cream Day!",
	"Did you know? You were born during the peak of the meteor shower!",
	"Your birthstone is the rare and beautiful sapphire!",
}

// RandomFunFact picks uniformly from the fixed fact list.
func RandomFunFact() string {
	return funFacts[rand.Intn(len(funFacts))]
}

// DefaultMessage composes the computed birthday greeting sent when the user
// has no custom message.
func DefaultMessage(age int, sign, gift, fact string) string {
	return fmt.Sprintf("🎉 Happy Birthday! You are now %d years old.\nZodiac Sign: %s\nGift Suggestion: %s\nFun Fact: %s",
		age, sign, gift, fact)
}
