package zmanim

import "strings"

// Zman identifies one halachic time of day. The order is the order in
// which the times are listed, which is roughly the order they occur.
type Zman int

const (
	AlosHashachar Zman = iota
	Alos72
	Misheyakir11Point5Degrees
	Misheyakir11Degrees
	Misheyakir10Point2Degrees
	Misheyakir9Point5Degrees
	Misheyakir7Point65Degrees
	Sunrise
	SeaLevelSunrise
	SofZmanShmaMGA
	SofZmanShmaMGA16Point1Degrees
	SofZmanShmaGRA
	SofZmanTfilaMGA
	SofZmanTfilaGRA
	SofZmanAchilasChametzMGA
	SofZmanAchilasChametzGRA
	SofZmanBiurChametzMGA
	SofZmanBiurChametzGRA
	Chatzos
	ChatzosAsHalfDay
	MinchaGedola
	MinchaGedola30Minutes
	MinchaKetana
	SamuchLeMinchaKetana
	PlagHamincha
	CandleLighting
	SeaLevelSunset
	Sunset
	TzaisGeonim3Point7Degrees
	TzaisGeonim5Point95Degrees
	TzaisGeonim7Point083Degrees
	Tzais
	TzaisAteretTorah
	BainHashmashosRT58Point5Minutes
	BainHashmashosRT13Point24Degrees
	Tzais72
	TchilasZmanKidushLevana3Days
	TchilasZmanKidushLevana7Days
	SofZmanKidushLevanaBetweenMoldos
	SofZmanKidushLevana15Days
	ChatzosHalayla

	zmanCount
)

var zmanNames = [zmanCount]struct{ en, he string }{
	AlosHashachar:                    {"Alos Hashachar", "עלות השחר"},
	Alos72:                           {"Alos 72 Minutes", "עלות השחר 72 דקות"},
	Misheyakir11Point5Degrees:        {"Misheyakir 11.5°", "משיכיר 11.5°"},
	Misheyakir11Degrees:              {"Misheyakir 11°", "משיכיר 11°"},
	Misheyakir10Point2Degrees:        {"Misheyakir 10.2°", "משיכיר 10.2°"},
	Misheyakir9Point5Degrees:         {"Misheyakir 9.5°", "משיכיר 9.5°"},
	Misheyakir7Point65Degrees:        {"Misheyakir 7.65°", "משיכיר 7.65°"},
	Sunrise:                          {"Sunrise", "הנץ החמה"},
	SeaLevelSunrise:                  {"Sea Level Sunrise", "הנץ החמה בגובה פני הים"},
	SofZmanShmaMGA:                   {"Latest Shema (MGA)", "סוף זמן ק״ש מג״א"},
	SofZmanShmaMGA16Point1Degrees:    {"Latest Shema (MGA 16.1°)", "סוף זמן ק״ש מג״א 16.1°"},
	SofZmanShmaGRA:                   {"Latest Shema (GRA)", "סוף זמן ק״ש גר״א"},
	SofZmanTfilaMGA:                  {"Latest Shacharis (MGA)", "סוף זמן תפילה מג״א"},
	SofZmanTfilaGRA:                  {"Latest Shacharis (GRA)", "סוף זמן תפילה גר״א"},
	SofZmanAchilasChametzMGA:         {"Latest Eating Chametz (MGA)", "סוף זמן אכילת חמץ מג״א"},
	SofZmanAchilasChametzGRA:         {"Latest Eating Chametz (GRA)", "סוף זמן אכילת חמץ גר״א"},
	SofZmanBiurChametzMGA:            {"Latest Burning Chametz (MGA)", "סוף זמן ביעור חמץ מג״א"},
	SofZmanBiurChametzGRA:            {"Latest Burning Chametz (GRA)", "סוף זמן ביעור חמץ גר״א"},
	Chatzos:                          {"Chatzos", "חצות"},
	ChatzosAsHalfDay:                 {"Chatzos (Half Day)", "חצות (חצי היום)"},
	MinchaGedola:                     {"Mincha Gedola", "מנחה גדולה"},
	MinchaGedola30Minutes:            {"Mincha Gedola 30 Minutes", "מנחה גדולה 30 דקות"},
	MinchaKetana:                     {"Mincha Ketana", "מנחה קטנה"},
	SamuchLeMinchaKetana:             {"Samuch LeMincha Ketana", "סמוך למנחה קטנה"},
	PlagHamincha:                     {"Plag Hamincha", "פלג המנחה"},
	CandleLighting:                   {"Candle Lighting", "הדלקת נרות"},
	SeaLevelSunset:                   {"Sea Level Sunset", "שקיעה בגובה פני הים"},
	Sunset:                           {"Sunset", "שקיעה"},
	TzaisGeonim3Point7Degrees:        {"Tzais Geonim 3.7°", "צאת הכוכבים גאונים 3.7°"},
	TzaisGeonim5Point95Degrees:       {"Tzais Geonim 5.95°", "צאת הכוכבים גאונים 5.95°"},
	TzaisGeonim7Point083Degrees:      {"Tzais Geonim 7.083°", "צאת הכוכבים גאונים 7.083°"},
	Tzais:                            {"Tzais Hakochavim", "צאת הכוכבים"},
	TzaisAteretTorah:                 {"Tzais Ateret Torah", "צאת הכוכבים עטרת תורה"},
	BainHashmashosRT58Point5Minutes:  {"Bain Hashmashos R\"T 58.5 Minutes", "בין השמשות ר״ת 58.5 דקות"},
	BainHashmashosRT13Point24Degrees: {"Bain Hashmashos R\"T 13.24°", "בין השמשות ר״ת 13.24°"},
	Tzais72:                          {"Tzais 72 Minutes", "צאת הכוכבים 72 דקות"},
	TchilasZmanKidushLevana3Days:     {"Earliest Kiddush Levana (3 Days)", "תחילת זמן קידוש לבנה 3 ימים"},
	TchilasZmanKidushLevana7Days:     {"Earliest Kiddush Levana (7 Days)", "תחילת זמן קידוש לבנה 7 ימים"},
	SofZmanKidushLevanaBetweenMoldos: {"Latest Kiddush Levana (Between Moldos)", "סוף זמן קידוש לבנה בין המולדות"},
	SofZmanKidushLevana15Days:        {"Latest Kiddush Levana (15 Days)", "סוף זמן קידוש לבנה 15 ימים"},
	ChatzosHalayla:                   {"Chatzos Halayla", "חצות הלילה"},
}

// Zmanim returns every Zman in listing order.
func Zmanim() []Zman {
	all := make([]Zman, zmanCount)
	for i := range all {
		all[i] = Zman(i)
	}
	return all
}

func (z Zman) valid() bool { return z >= 0 && z < zmanCount }

func (z Zman) String() string {
	if !z.valid() {
		return "Unknown"
	}
	return zmanNames[z].en
}

// Hebrew returns the Hebrew name.
func (z Zman) Hebrew() string {
	if !z.valid() {
		return ""
	}
	return zmanNames[z].he
}

// Key returns a stable snake_case identifier, e.g. "sof_zman_shma_gra".
func (z Zman) Key() string {
	if !z.valid() {
		return ""
	}
	return keys[z]
}

// ParseZman looks a Zman up by its Key.
func ParseZman(key string) (Zman, bool) {
	for i, k := range keys {
		if k == key {
			return Zman(i), true
		}
	}
	return 0, false
}

var keys = [zmanCount]string{
	AlosHashachar:                    "alos_hashachar",
	Alos72:                           "alos_72",
	Misheyakir11Point5Degrees:        "misheyakir_11_5",
	Misheyakir11Degrees:              "misheyakir_11",
	Misheyakir10Point2Degrees:        "misheyakir_10_2",
	Misheyakir9Point5Degrees:         "misheyakir_9_5",
	Misheyakir7Point65Degrees:        "misheyakir_7_65",
	Sunrise:                          "sunrise",
	SeaLevelSunrise:                  "sea_level_sunrise",
	SofZmanShmaMGA:                   "sof_zman_shma_mga",
	SofZmanShmaMGA16Point1Degrees:    "sof_zman_shma_mga_16_1",
	SofZmanShmaGRA:                   "sof_zman_shma_gra",
	SofZmanTfilaMGA:                  "sof_zman_tfila_mga",
	SofZmanTfilaGRA:                  "sof_zman_tfila_gra",
	SofZmanAchilasChametzMGA:         "sof_zman_achilas_chametz_mga",
	SofZmanAchilasChametzGRA:         "sof_zman_achilas_chametz_gra",
	SofZmanBiurChametzMGA:            "sof_zman_biur_chametz_mga",
	SofZmanBiurChametzGRA:            "sof_zman_biur_chametz_gra",
	Chatzos:                          "chatzos",
	ChatzosAsHalfDay:                 "chatzos_half_day",
	MinchaGedola:                     "mincha_gedola",
	MinchaGedola30Minutes:            "mincha_gedola_30",
	MinchaKetana:                     "mincha_ketana",
	SamuchLeMinchaKetana:             "samuch_lemincha_ketana",
	PlagHamincha:                     "plag_hamincha",
	CandleLighting:                   "candle_lighting",
	SeaLevelSunset:                   "sea_level_sunset",
	Sunset:                           "sunset",
	TzaisGeonim3Point7Degrees:        "tzais_geonim_3_7",
	TzaisGeonim5Point95Degrees:       "tzais_geonim_5_95",
	TzaisGeonim7Point083Degrees:      "tzais_geonim_7_083",
	Tzais:                            "tzais",
	TzaisAteretTorah:                 "tzais_ateret_torah",
	BainHashmashosRT58Point5Minutes:  "bain_hashmashos_rt_58_5",
	BainHashmashosRT13Point24Degrees: "bain_hashmashos_rt_13_24",
	Tzais72:                          "tzais_72",
	TchilasZmanKidushLevana3Days:     "tchilas_kidush_levana_3_days",
	TchilasZmanKidushLevana7Days:     "tchilas_kidush_levana_7_days",
	SofZmanKidushLevanaBetweenMoldos: "sof_kidush_levana_between_moldos",
	SofZmanKidushLevana15Days:        "sof_kidush_levana_15_days",
	ChatzosHalayla:                   "chatzos_halayla",
}

// ParseZmanim parses a comma separated list of keys. Unknown keys are
// returned in bad.
func ParseZmanim(list string) (zmanim []Zman, bad []string) {
	for _, k := range strings.Split(list, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if z, ok := ParseZman(k); ok {
			zmanim = append(zmanim, z)
		} else {
			bad = append(bad, k)
		}
	}
	return zmanim, bad
}
