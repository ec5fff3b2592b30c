package calendar

import (
	"fmt"
	"time"
)

// Daf yomi cycle constants
const (
	// BavliCycleLengthBefore is the length of cycles 1-7, when Shekalim
	// was learned with 13 pages.
	BavliCycleLengthBefore = 2702

	// BavliCycleLength is the length of cycle 8 onward, with the 22 page
	// Shekalim of the Vilna edition.
	BavliCycleLength = 2711

	// YerushalmiCycleLength counts learning days only; Yom Kippur and
	// Tisha B'Av extend a cycle without advancing it.
	YerushalmiCycleLength = 1554
)

var (
	// bavliStart is the first day of the first Bavli cycle, 1923-09-11.
	bavliStart = gregorianToAbs(1923, time.September, 11)

	// bavliShekalimChange is the first day of cycle 8, 1975-06-24.
	bavliShekalimChange = gregorianToAbs(1975, time.June, 24)

	// yerushalmiStart is the first day of the first Yerushalmi cycle, 1980-02-02.
	yerushalmiStart = gregorianToAbs(1980, time.February, 2)
)

// blattPerBavliTractate is the number of pages in each tractate, counting
// from daf 2. Shekalim is adjusted for the early cycles.
var blattPerBavliTractate = [...]int{
	64, 157, 105, 121, 22, 88, 56, 40, 35, 31, 32, 29, 27, 122, 112, 91, 66, 49, 90, 82,
	119, 119, 176, 113, 24, 49, 76, 14, 120, 110, 142, 61, 34, 34, 28, 22, 4, 9, 5, 73,
}

var blattPerYerushalmiTractate = [...]int{
	68, 37, 34, 44, 31, 59, 26, 33, 28, 20, 13, 92, 65, 71, 22, 22, 42, 26, 26, 33, 34, 22, 19, 85,
	72, 47, 40, 47, 54, 48, 44, 37, 34, 44, 9, 57, 37, 19, 13,
}

// BavliDaf is a page of the Babylonian Talmud.
type BavliDaf struct {
	Cycle    int           `json:"cycle" yaml:"cycle"`
	Tractate BavliTractate `json:"tractate" yaml:"tractate"`
	Daf      int           `json:"daf" yaml:"daf"`
}

func (d BavliDaf) String() string { return fmt.Sprintf("%s %d", d.Tractate, d.Daf) }

// Hebrew returns the page as "ברכות ב".
func (d BavliDaf) Hebrew() string {
	return d.Tractate.Hebrew() + " " + HebrewNumeral(d.Daf, false)
}

// YerushalmiDaf is a page of the Jerusalem Talmud (Vilna edition).
type YerushalmiDaf struct {
	Tractate YerushalmiTractate `json:"tractate" yaml:"tractate"`
	Daf      int                `json:"daf" yaml:"daf"`
}

func (d YerushalmiDaf) String() string { return fmt.Sprintf("%s %d", d.Tractate, d.Daf) }

func (d YerushalmiDaf) Hebrew() string {
	return d.Tractate.Hebrew() + " " + HebrewNumeral(d.Daf, false)
}

// DafYomiBavli returns the page learned on the day. It is absent before
// the first cycle began.
func (d Date) DafYomiBavli() (BavliDaf, bool) {
	if d.abs < bavliStart {
		return BavliDaf{}, false
	}

	var cycle, dafNo int
	if d.abs >= bavliShekalimChange {
		cycle = 8 + (d.abs-bavliShekalimChange)/BavliCycleLength
		dafNo = (d.abs - bavliShekalimChange) % BavliCycleLength
	} else {
		cycle = 1 + (d.abs-bavliStart)/BavliCycleLengthBefore
		dafNo = (d.abs - bavliStart) % BavliCycleLengthBefore
	}

	blatt := blattPerBavliTractate
	if cycle <= 7 {
		blatt[BavliShekalim] = 13
	}

	total := 0
	for i, count := range blatt {
		total += count - 1
		if dafNo >= total {
			continue
		}
		page := 1 + count - (total - dafNo)
		// Kinnim, Tamid and Midos are printed after Meilah and keep its page numbers.
		switch BavliTractate(i) {
		case BavliKinnim:
			page += 21
		case BavliTamid:
			page += 24
		case BavliMidos:
			page += 32
		}
		return BavliDaf{Cycle: cycle, Tractate: BavliTractate(i), Daf: page}, true
	}
	return BavliDaf{}, false
}

// DafYomiYerushalmi returns the page learned on the day. It is absent
// before the first cycle and on Yom Kippur and Tisha B'Av, when no page
// is learned.
func (d Date) DafYomiYerushalmi() (YerushalmiDaf, bool) {
	c := Calendar{Date: d}
	if c.IsYomKippur() || c.IsTishaBav() || d.abs < yerushalmiStart {
		return YerushalmiDaf{}, false
	}

	prev, next := yerushalmiStart, yerushalmiStart
	for d.abs > next {
		prev = next
		next += YerushalmiCycleLength
		next += yerushalmiSkippedDays(prev, next)
	}

	skipped := yerushalmiSkippedDays(prev, d.abs)
	total := d.abs - prev - skipped
	if total < 0 {
		return YerushalmiDaf{}, false
	}

	for i, count := range blattPerYerushalmiTractate {
		if total < count {
			return YerushalmiDaf{Tractate: YerushalmiTractate(i), Daf: total + 1}, true
		}
		total -= count
	}
	return YerushalmiDaf{Tractate: YerushalmiBerachos, Daf: 1}, true
}

// yerushalmiSkippedDays counts the Yom Kippur and 9 Av dates strictly
// between the absolute days start and end.
func yerushalmiSkippedDays(start, end int) int {
	startYear, _, _ := absToHebrew(start)
	endYear, _, _ := absToHebrew(end)

	n := 0
	for y := startYear; y <= endYear; y++ {
		for _, abs := range []int{hebrewToAbs(y, Tishrei, 10), hebrewToAbs(y, Av, 9)} {
			if abs > start && abs < end {
				n++
			}
		}
	}
	return n
}
