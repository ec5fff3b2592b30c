package calendar

import "time"

type names struct {
	en string
	he string
}

// Month is a Hebrew month. Nissan is 1 and the months are numbered in the
// Torah's order, so Tishrei (the first month of the civil year) is 7 and
// the leap month Adar II is 13.
type Month int

const (
	Nissan Month = iota + 1
	Iyar
	Sivan
	Tammuz
	Av
	Elul
	Tishrei
	Cheshvan
	Kislev
	Teves
	Shevat
	Adar
	AdarII
)

var monthNames = [...]names{
	Nissan:   {"Nissan", "ניסן"},
	Iyar:     {"Iyar", "אייר"},
	Sivan:    {"Sivan", "סיון"},
	Tammuz:   {"Tammuz", "תמוז"},
	Av:       {"Av", "אב"},
	Elul:     {"Elul", "אלול"},
	Tishrei:  {"Tishrei", "תשרי"},
	Cheshvan: {"Cheshvan", "חשון"},
	Kislev:   {"Kislev", "כסלו"},
	Teves:    {"Teves", "טבת"},
	Shevat:   {"Shevat", "שבט"},
	Adar:     {"Adar", "אדר"},
	AdarII:   {"Adar II", "אדר ב"},
}

func (m Month) valid() bool { return m >= Nissan && m <= AdarII }

// String returns the English name of the month as it appears in a common year.
func (m Month) String() string { return m.Name(false) }

// Name returns the English name of the month; Adar is "Adar I" in a leap year.
func (m Month) Name(leap bool) string {
	if !m.valid() {
		return "Unknown"
	}
	if m == Adar && leap {
		return "Adar I"
	}
	return monthNames[m].en
}

// HebrewName returns the month name in Hebrew.
func (m Month) HebrewName(leap bool) string {
	if !m.valid() {
		return ""
	}
	if m == Adar && leap {
		return "אדר א"
	}
	return monthNames[m].he
}

// YearLength classifies a Hebrew year by the lengths of Cheshvan and Kislev.
type YearLength int

const (
	// Chaserim years have a 29 day Kislev.
	Chaserim YearLength = iota
	// Kesidran years have a 29 day Cheshvan and a 30 day Kislev.
	Kesidran
	// Shelaimim years have a 30 day Cheshvan.
	Shelaimim
)

var yearLengthNames = [...]names{
	Chaserim:  {"Chaserim", "חסרים"},
	Kesidran:  {"Kesidran", "כסדרן"},
	Shelaimim: {"Shelaimim", "שלמים"},
}

func (y YearLength) String() string { return yearLengthNames[y].en }
func (y YearLength) Hebrew() string { return yearLengthNames[y].he }

var weekdayNames = [...]string{"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"}

// HebrewWeekday returns the Hebrew name of the day of the week.
func HebrewWeekday(d time.Weekday) string { return weekdayNames[d%7] }

// Holiday is a day in the Jewish calendar with a name of its own.
type Holiday int

// Parsha is a weekly Torah portion, a doubled pair of portions, or one of
// the special Shabbatot.
type Parsha int

// BavliTractate is a tractate of the Babylonian Talmud, in daf yomi order.
type BavliTractate int

// YerushalmiTractate is a tractate of the Jerusalem Talmud, in daf yomi order.
type YerushalmiTractate int

func (p Parsha) String() string { return lookup(parshaNames[:], int(p)).en }
func (p Parsha) Hebrew() string { return lookup(parshaNames[:], int(p)).he }

func (h Holiday) String() string { return lookup(holidayNames[:], int(h)).en }
func (h Holiday) Hebrew() string { return lookup(holidayNames[:], int(h)).he }

func (t BavliTractate) String() string { return lookup(bavliTractateNames[:], int(t)).en }
func (t BavliTractate) Hebrew() string { return lookup(bavliTractateNames[:], int(t)).he }

func (t YerushalmiTractate) String() string { return lookup(yerushalmiTractateNames[:], int(t)).en }
func (t YerushalmiTractate) Hebrew() string { return lookup(yerushalmiTractateNames[:], int(t)).he }

func lookup(table []names, i int) names {
	if i < 0 || i >= len(table) {
		return names{en: "Unknown"}
	}
	return table[i]
}

// Named is implemented by every enumeration in this package.
type Named interface {
	String() string
	Hebrew() string
}

// Name returns n's Hebrew name when hebrew is set and its English name otherwise.
func Name(n Named, hebrew bool) string {
	if hebrew {
		return n.Hebrew()
	}
	return n.String()
}

const (
	Bereshis Parsha = iota
	Noach
	LechLecha
	Vayera
	ChayeiSara
	Toldos
	Vayetzei
	Vayishlach
	Vayeshev
	Miketz
	Vayigash
	Vayechi
	Shemos
	Vaera
	Bo
	Beshalach
	Yisro
	Mishpatim
	Terumah
	Tetzaveh
	KiSisa
	Vayakhel
	Pekudei
	Vayikra
	Tzav
	Shmini
	Tazria
	Metzora
	AchreiMos
	Kedoshim
	Emor
	Behar
	Bechukosai
	Bamidbar
	Nasso
	Behaaloscha
	Shlach
	Korach
	Chukas
	Balak
	Pinchas
	Matos
	Masei
	Devarim
	Vaeschanan
	Eikev
	Reeh
	Shoftim
	KiSeitzei
	KiSavo
	Nitzavim
	Vayeilech
	HaAzinu
	VezosHabracha
	VayakhelPekudei
	TazriaMetzora
	AchreiMosKedoshim
	BeharBechukosai
	ChukasBalak
	MatosMasei
	NitzavimVayeilech
	Shekalim
	Zachor
	Parah
	Hachodesh
	Shuva
	Shira
	Hagadol
	Chazon
	Nachamu
)

var parshaNames = [...]names{
	Bereshis:          {"Bereshis", "בראשית"},
	Noach:             {"Noach", "נח"},
	LechLecha:         {"Lech Lecha", "לך לך"},
	Vayera:            {"Vayera", "וירא"},
	ChayeiSara:        {"Chayei Sara", "חיי שרה"},
	Toldos:            {"Toldos", "תולדות"},
	Vayetzei:          {"Vayetzei", "ויצא"},
	Vayishlach:        {"Vayishlach", "וישלח"},
	Vayeshev:          {"Vayeshev", "וישב"},
	Miketz:            {"Miketz", "מקץ"},
	Vayigash:          {"Vayigash", "ויגש"},
	Vayechi:           {"Vayechi", "ויחי"},
	Shemos:            {"Shemos", "שמות"},
	Vaera:             {"Vaera", "וארא"},
	Bo:                {"Bo", "בא"},
	Beshalach:         {"Beshalach", "בשלח"},
	Yisro:             {"Yisro", "יתרו"},
	Mishpatim:         {"Mishpatim", "משפטים"},
	Terumah:           {"Terumah", "תרומה"},
	Tetzaveh:          {"Tetzaveh", "תצוה"},
	KiSisa:            {"Ki Sisa", "כי תשא"},
	Vayakhel:          {"Vayakhel", "ויקהל"},
	Pekudei:           {"Pekudei", "פקודי"},
	Vayikra:           {"Vayikra", "ויקרא"},
	Tzav:              {"Tzav", "צו"},
	Shmini:            {"Shmini", "שמיני"},
	Tazria:            {"Tazria", "תזריע"},
	Metzora:           {"Metzora", "מצרע"},
	AchreiMos:         {"Achrei Mos", "אחרי מות"},
	Kedoshim:          {"Kedoshim", "קדושים"},
	Emor:              {"Emor", "אמור"},
	Behar:             {"Behar", "בהר"},
	Bechukosai:        {"Bechukosai", "בחקתי"},
	Bamidbar:          {"Bamidbar", "במדבר"},
	Nasso:             {"Nasso", "נשא"},
	Behaaloscha:       {"Beha'aloscha", "בהעלתך"},
	Shlach:            {"Sh'lach", "שלח לך"},
	Korach:            {"Korach", "קרח"},
	Chukas:            {"Chukas", "חוקת"},
	Balak:             {"Balak", "בלק"},
	Pinchas:           {"Pinchas", "פינחס"},
	Matos:             {"Matos", "מטות"},
	Masei:             {"Masei", "מסעי"},
	Devarim:           {"Devarim", "דברים"},
	Vaeschanan:        {"Vaeschanan", "ואתחנן"},
	Eikev:             {"Eikev", "עקב"},
	Reeh:              {"Re'eh", "ראה"},
	Shoftim:           {"Shoftim", "שופטים"},
	KiSeitzei:         {"Ki Seitzei", "כי תצא"},
	KiSavo:            {"Ki Savo", "כי תבוא"},
	Nitzavim:          {"Nitzavim", "נצבים"},
	Vayeilech:         {"Vayeilech", "וילך"},
	HaAzinu:           {"Ha'Azinu", "האזינו"},
	VezosHabracha:     {"Vezos Habracha", "וזאת הברכה"},
	VayakhelPekudei:   {"Vayakhel Pekudei", "ויקהל פקודי"},
	TazriaMetzora:     {"Tazria Metzora", "תזריע מצרע"},
	AchreiMosKedoshim: {"Achrei Mos Kedoshim", "אחרי מות קדושים"},
	BeharBechukosai:   {"Behar Bechukosai", "בהר בחקתי"},
	ChukasBalak:       {"Chukas Balak", "חוקת בלק"},
	MatosMasei:        {"Matos Masei", "מטות מסעי"},
	NitzavimVayeilech: {"Nitzavim Vayeilech", "נצבים וילך"},
	Shekalim:          {"Shekalim", "שקלים"},
	Zachor:            {"Zachor", "זכור"},
	Parah:             {"Parah", "פרה"},
	Hachodesh:         {"Hachodesh", "החדש"},
	Shuva:             {"Shuva", "שובה"},
	Shira:             {"Shira", "שירה"},
	Hagadol:           {"Hagadol", "הגדול"},
	Chazon:            {"Chazon", "חזון"},
	Nachamu:           {"Nachamu", "נחמו"},
}

const (
	ErevPesach Holiday = iota
	Pesach
	CholHamoedPesach
	PesachSheni
	ErevShavuos
	Shavuos
	SeventeenthOfTammuz
	TishahBav
	TuBav
	ErevRoshHashana
	RoshHashana
	FastOfGedalyah
	ErevYomKippur
	YomKippur
	ErevSuccos
	Succos
	CholHamoedSuccos
	HoshanaRabbah
	SheminiAtzeres
	SimchasTorah
	ErevChanukah
	Chanukah
	TenthOfTeves
	TuBshvat
	FastOfEsther
	Purim
	ShushanPurim
	PurimKatan
	RoshChodesh
	YomHaShoah
	YomHazikaron
	YomHaatzmaut
	YomYerushalayim
	LagBomer
	ShushanPurimKatan
	IsruChag
	YomKippurKatan
	Behab
)

var holidayNames = [...]names{
	ErevPesach:          {"Erev Pesach", "ערב פסח"},
	Pesach:              {"Pesach", "פסח"},
	CholHamoedPesach:    {"Chol Hamoed Pesach", "חול המועד פסח"},
	PesachSheni:         {"Pesach Sheni", "פסח שני"},
	ErevShavuos:         {"Erev Shavuos", "ערב שבועות"},
	Shavuos:             {"Shavuos", "שבועות"},
	SeventeenthOfTammuz: {"Seventeenth of Tammuz", "שבעה עשר בתמוז"},
	TishahBav:           {"Tishah B'Av", "תשעה באב"},
	TuBav:               {"Tu B'Av", "ט״ו באב"},
	ErevRoshHashana:     {"Erev Rosh Hashana", "ערב ראש השנה"},
	RoshHashana:         {"Rosh Hashana", "ראש השנה"},
	FastOfGedalyah:      {"Fast of Gedalyah", "צום גדליה"},
	ErevYomKippur:       {"Erev Yom Kippur", "ערב יום כיפור"},
	YomKippur:           {"Yom Kippur", "יום כיפור"},
	ErevSuccos:          {"Erev Succos", "ערב סוכות"},
	Succos:              {"Succos", "סוכות"},
	CholHamoedSuccos:    {"Chol Hamoed Succos", "חול המועד סוכות"},
	HoshanaRabbah:       {"Hoshana Rabbah", "הושענא רבה"},
	SheminiAtzeres:      {"Shemini Atzeres", "שמיני עצרת"},
	SimchasTorah:        {"Simchas Torah", "שמחת תורה"},
	ErevChanukah:        {"Erev Chanukah", "ערב חנוכה"},
	Chanukah:            {"Chanukah", "חנוכה"},
	TenthOfTeves:        {"Tenth of Teves", "עשרה בטבת"},
	TuBshvat:            {"Tu B'Shvat", "ט״ו בשבט"},
	FastOfEsther:        {"Fast of Esther", "תענית אסתר"},
	Purim:               {"Purim", "פורים"},
	ShushanPurim:        {"Shushan Purim", "שושן פורים"},
	PurimKatan:          {"Purim Katan", "פורים קטן"},
	RoshChodesh:         {"Rosh Chodesh", "ראש חודש"},
	YomHaShoah:          {"Yom HaShoah", "יום השואה"},
	YomHazikaron:        {"Yom Hazikaron", "יום הזיכרון"},
	YomHaatzmaut:        {"Yom Ha'atzmaut", "יום העצמאות"},
	YomYerushalayim:     {"Yom Yerushalayim", "יום ירושלים"},
	LagBomer:            {"Lag B'Omer", "ל״ג בעומר"},
	ShushanPurimKatan:   {"Shushan Purim Katan", "שושן פורים קטן"},
	IsruChag:            {"Isru Chag", "אסרו חג"},
	YomKippurKatan:      {"Yom Kippur Katan", "יום כיפור קטן"},
	Behab:               {"Behab", "בה״ב"},
}

const (
	BavliBerachos BavliTractate = iota
	BavliShabbos
	BavliEruvin
	BavliPesachim
	BavliShekalim
	BavliYoma
	BavliSukkah
	BavliBeitzah
	BavliRoshHashana
	BavliTaanis
	BavliMegillah
	BavliMoedKatan
	BavliChagigah
	BavliYevamos
	BavliKesubos
	BavliNedarim
	BavliNazir
	BavliSotah
	BavliGitin
	BavliKiddushin
	BavliBavaKamma
	BavliBavaMetzia
	BavliBavaBasra
	BavliSanhedrin
	BavliMakkos
	BavliShevuos
	BavliAvodahZarah
	BavliHoriyos
	BavliZevachim
	BavliMenachos
	BavliChullin
	BavliBechoros
	BavliArachin
	BavliTemurah
	BavliKerisos
	BavliMeilah
	BavliKinnim
	BavliTamid
	BavliMidos
	BavliNiddah
)

var bavliTractateNames = [...]names{
	BavliBerachos:    {"Berachos", "ברכות"},
	BavliShabbos:     {"Shabbos", "שבת"},
	BavliEruvin:      {"Eruvin", "עירובין"},
	BavliPesachim:    {"Pesachim", "פסחים"},
	BavliShekalim:    {"Shekalim", "שקלים"},
	BavliYoma:        {"Yoma", "יומא"},
	BavliSukkah:      {"Sukkah", "סוכה"},
	BavliBeitzah:     {"Beitzah", "ביצה"},
	BavliRoshHashana: {"Rosh Hashana", "ראש השנה"},
	BavliTaanis:      {"Taanis", "תענית"},
	BavliMegillah:    {"Megillah", "מגילה"},
	BavliMoedKatan:   {"Moed Katan", "מועד קטן"},
	BavliChagigah:    {"Chagigah", "חגיגה"},
	BavliYevamos:     {"Yevamos", "יבמות"},
	BavliKesubos:     {"Kesubos", "כתובות"},
	BavliNedarim:     {"Nedarim", "נדרים"},
	BavliNazir:       {"Nazir", "נזיר"},
	BavliSotah:       {"Sotah", "סוטה"},
	BavliGitin:       {"Gitin", "גיטין"},
	BavliKiddushin:   {"Kiddushin", "קידושין"},
	BavliBavaKamma:   {"Bava Kamma", "בבא קמא"},
	BavliBavaMetzia:  {"Bava Metzia", "בבא מציעא"},
	BavliBavaBasra:   {"Bava Basra", "בבא בתרא"},
	BavliSanhedrin:   {"Sanhedrin", "סנהדרין"},
	BavliMakkos:      {"Makkos", "מכות"},
	BavliShevuos:     {"Shevuos", "שבועות"},
	BavliAvodahZarah: {"Avodah Zarah", "עבודה זרה"},
	BavliHoriyos:     {"Horiyos", "הוריות"},
	BavliZevachim:    {"Zevachim", "זבחים"},
	BavliMenachos:    {"Menachos", "מנחות"},
	BavliChullin:     {"Chullin", "חולין"},
	BavliBechoros:    {"Bechoros", "בכורות"},
	BavliArachin:     {"Arachin", "ערכין"},
	BavliTemurah:     {"Temurah", "תמורה"},
	BavliKerisos:     {"Kerisos", "כריתות"},
	BavliMeilah:      {"Meilah", "מעילה"},
	BavliKinnim:      {"Kinnim", "קינים"},
	BavliTamid:       {"Tamid", "תמיד"},
	BavliMidos:       {"Midos", "מידות"},
	BavliNiddah:      {"Niddah", "נדה"},
}

const (
	YerushalmiBerachos YerushalmiTractate = iota
	YerushalmiPeah
	YerushalmiDemai
	YerushalmiKilayim
	YerushalmiSheviis
	YerushalmiTerumos
	YerushalmiMaasros
	YerushalmiMaaserSheni
	YerushalmiChalah
	YerushalmiOrlah
	YerushalmiBikurim
	YerushalmiShabbos
	YerushalmiEruvin
	YerushalmiPesachim
	YerushalmiBeitzah
	YerushalmiRoshHashanah
	YerushalmiYoma
	YerushalmiSukah
	YerushalmiTaanis
	YerushalmiShekalim
	YerushalmiMegilah
	YerushalmiChagigah
	YerushalmiMoedKatan
	YerushalmiYevamos
	YerushalmiKesuvos
	YerushalmiSotah
	YerushalmiNedarim
	YerushalmiNazir
	YerushalmiGitin
	YerushalmiKidushin
	YerushalmiBavaKama
	YerushalmiBavaMetzia
	YerushalmiBavaBasra
	YerushalmiShevuos
	YerushalmiMakos
	YerushalmiSanhedrin
	YerushalmiAvodahZarah
	YerushalmiHorayos
	YerushalmiNidah
)

var yerushalmiTractateNames = [...]names{
	YerushalmiBerachos:     {"Berachos", "ברכות"},
	YerushalmiPeah:         {"Pe'ah", "פיאה"},
	YerushalmiDemai:        {"Demai", "דמאי"},
	YerushalmiKilayim:      {"Kilayim", "כלאים"},
	YerushalmiSheviis:      {"Shevi'is", "שביעית"},
	YerushalmiTerumos:      {"Terumos", "תרומות"},
	YerushalmiMaasros:      {"Ma'asros", "מעשרות"},
	YerushalmiMaaserSheni:  {"Ma'aser Sheni", "מעשר שני"},
	YerushalmiChalah:       {"Chalah", "חלה"},
	YerushalmiOrlah:        {"Orlah", "עורלה"},
	YerushalmiBikurim:      {"Bikurim", "ביכורים"},
	YerushalmiShabbos:      {"Shabbos", "שבת"},
	YerushalmiEruvin:       {"Eruvin", "עירובין"},
	YerushalmiPesachim:     {"Pesachim", "פסחים"},
	YerushalmiBeitzah:      {"Beitzah", "ביצה"},
	YerushalmiRoshHashanah: {"Rosh Hashanah", "ראש השנה"},
	YerushalmiYoma:         {"Yoma", "יומא"},
	YerushalmiSukah:        {"Sukah", "סוכה"},
	YerushalmiTaanis:       {"Ta'anis", "תענית"},
	YerushalmiShekalim:     {"Shekalim", "שקלים"},
	YerushalmiMegilah:      {"Megilah", "מגילה"},
	YerushalmiChagigah:     {"Chagigah", "חגיגה"},
	YerushalmiMoedKatan:    {"Moed Katan", "מועד קטן"},
	YerushalmiYevamos:      {"Yevamos", "יבמות"},
	YerushalmiKesuvos:      {"Kesuvos", "כתובות"},
	YerushalmiSotah:        {"Sotah", "סוטה"},
	YerushalmiNedarim:      {"Nedarim", "נדרים"},
	YerushalmiNazir:        {"Nazir", "נזיר"},
	YerushalmiGitin:        {"Gitin", "גיטין"},
	YerushalmiKidushin:     {"Kidushin", "קידושין"},
	YerushalmiBavaKama:     {"Bava Kama", "בבא קמא"},
	YerushalmiBavaMetzia:   {"Bava Metzia", "בבא מציעא"},
	YerushalmiBavaBasra:    {"Bava Basra", "בבא בתרא"},
	YerushalmiShevuos:      {"Shevuos", "שבועות"},
	YerushalmiMakos:        {"Makos", "מכות"},
	YerushalmiSanhedrin:    {"Sanhedrin", "סנהדרין"},
	YerushalmiAvodahZarah:  {"Avodah Zarah", "עבודה זרה"},
	YerushalmiHorayos:      {"Horayos", "הוריות"},
	YerushalmiNidah:        {"Nidah", "נידה"},
}
