package calendar

import (
	"fmt"
	"strings"
	"time"
)

// DayName returns the day of week name (Sunday, Monday, etc.)
func DayName(date time.Time) string {
	return date.Weekday().String()
}

// Ordinal returns the ordinal form of a number (1st, 2nd, 3rd, 4th, 11th, 21st, etc.)
func Ordinal(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}

const (
	geresh    = "׳"
	gershayim = "״"
)

var (
	hebrewOnes     = []string{"", "א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט"}
	hebrewTens     = []string{"", "י", "כ", "ל", "מ", "נ", "ס", "ע", "פ", "צ"}
	hebrewHundreds = []string{"", "ק", "ר", "ש", "ת"}
)

// HebrewNumeral writes n (1-9999) in Hebrew letters. Thousands are dropped,
// as is usual for years. 15 and 16 are written ט״ו and ט״ז. With punctuate
// set a geresh marks a single letter and gershayim precede the last of
// several.
func HebrewNumeral(n int, punctuate bool) string {
	n %= 1000
	if n <= 0 {
		return ""
	}

	var letters []string
	for h := n / 100; h > 0; {
		step := min(h, 4)
		letters = append(letters, hebrewHundreds[step])
		h -= step
	}
	switch rest := n % 100; rest {
	case 15:
		letters = append(letters, "ט", "ו")
	case 16:
		letters = append(letters, "ט", "ז")
	default:
		if rest/10 > 0 {
			letters = append(letters, hebrewTens[rest/10])
		}
		if rest%10 > 0 {
			letters = append(letters, hebrewOnes[rest%10])
		}
	}

	if !punctuate {
		return strings.Join(letters, "")
	}
	if len(letters) == 1 {
		return letters[0] + geresh
	}
	last := len(letters) - 1
	return strings.Join(letters[:last], "") + gershayim + letters[last]
}

// Hebrew formats the date in Hebrew letters, e.g. ט״ו סיון תשפ״ד.
func (d Date) Hebrew() string {
	return fmt.Sprintf("%s %s %s",
		HebrewNumeral(d.day, true), d.month.HebrewName(d.IsLeapYear()), HebrewNumeral(d.year, true))
}

// ParseDateString parses a date string in YYYY-MM-DD format
func ParseDateString(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// ParseDateIn parses a YYYY-MM-DD date as midnight in loc.
func ParseDateIn(dateStr string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}
