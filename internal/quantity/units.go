package quantity

import (
	"math/big"
	"sort"
)

// Unit is a symbol and its scale in the canonical base unit: bits for
// information, nanoseconds for durations.
type Unit struct {
	Symbol string
	Scale  *big.Int
}

// Category is an ordered family of information units used to pick a display
// unit automatically. Units are listed in descending magnitude.
type Category struct {
	Symbol      string
	Description string
	Units       []string
}

// Category symbols.
const (
	CategoryBinaryBytes  = "bB"
	CategoryDecimalBytes = "dB"
	CategoryBinaryBits   = "bb"
	CategoryDecimalBits  = "db"
)

var (
	decimalPrefixes = []string{"k", "M", "G", "T", "P", "E", "Z", "Y"}
	binaryPrefixes  = []string{"Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"}
	decimalNames    = []string{"kilo", "mega", "giga", "tera", "peta", "exa", "zetta", "yotta"}
	binaryNames     = []string{"kibi", "mebi", "gibi", "tebi", "pebi", "exbi", "zebi", "yobi"}
)

// informationUnits maps every accepted information symbol to its size in bits.
// Built once during package initialisation and never written afterwards.
var informationUnits = buildInformationUnits()

var informationCategories = map[string]Category{
	CategoryBinaryBytes: {
		Symbol:      CategoryBinaryBytes,
		Description: "binary bytes",
		Units:       []string{"YiB", "ZiB", "EiB", "PiB", "TiB", "GiB", "MiB", "KiB", "B", "b"},
	},
	CategoryDecimalBytes: {
		Symbol:      CategoryDecimalBytes,
		Description: "decimal bytes",
		Units:       []string{"YB", "ZB", "EB", "PB", "TB", "GB", "MB", "kB", "B", "b"},
	},
	CategoryBinaryBits: {
		Symbol:      CategoryBinaryBits,
		Description: "binary bits",
		Units:       []string{"Yib", "Zib", "Eib", "Pib", "Tib", "Gib", "Mib", "Kib", "b"},
	},
	CategoryDecimalBits: {
		Symbol:      CategoryDecimalBits,
		Description: "decimal bits",
		Units:       []string{"Yb", "Zb", "Eb", "Pb", "Tb", "Gb", "Mb", "kb", "b"},
	},
}

func buildInformationUnits() map[string]*big.Int {
	units := map[string]*big.Int{}
	add := func(scale *big.Int, symbols ...string) {
		for _, s := range symbols {
			units[s] = scale
		}
	}

	bit := big.NewInt(1)
	nibble := big.NewInt(4)
	byteScale := big.NewInt(8)
	add(bit, "b", "bit", "bits")
	add(nibble, "N", "n", "nibble", "nibbles")
	add(byteScale, "B", "byte", "bytes")

	kilo := big.NewInt(1000)
	kibi := big.NewInt(1024)
	for i := range decimalPrefixes {
		exp := big.NewInt(int64(i + 1))
		dec := new(big.Int).Exp(kilo, exp, nil)
		bin := new(big.Int).Exp(kibi, exp, nil)
		decBytes := new(big.Int).Mul(dec, byteScale)
		binBytes := new(big.Int).Mul(bin, byteScale)

		upper := decimalPrefixes[i]
		if upper == "k" {
			upper = "K"
		}
		lower := string(upper[0] + ('a' - 'A'))
		binUpper := binaryPrefixes[i]
		binLower := lower + "i"

		// binary bytes, including the bare single-letter shorthand (G = GiB)
		add(binBytes, upper, binUpper+"B", binLower+"B",
			binaryNames[i]+"byte", binaryNames[i]+"bytes")
		add(decBytes, upper+"B", lower+"B",
			decimalNames[i]+"byte", decimalNames[i]+"bytes")
		add(bin, binUpper+"b", binLower+"b",
			binaryNames[i]+"bit", binaryNames[i]+"bits")
		add(dec, upper+"b", lower+"b",
			decimalNames[i]+"bit", decimalNames[i]+"bits")
	}
	return units
}

// Duration scales in nanoseconds. A month is fixed at 730 hours and a year at
// twelve months.
var (
	nanosecond  = big.NewInt(1)
	microsecond = big.NewInt(1_000)
	millisecond = big.NewInt(1_000_000)
	second      = big.NewInt(1_000_000_000)
	minute      = new(big.Int).Mul(second, big.NewInt(60))
	hour        = new(big.Int).Mul(minute, big.NewInt(60))
	day         = new(big.Int).Mul(hour, big.NewInt(24))
	week        = new(big.Int).Mul(day, big.NewInt(7))
	month       = new(big.Int).Mul(hour, big.NewInt(730))
	year        = new(big.Int).Mul(month, big.NewInt(12))
)

var durationUnits = map[string]*big.Int{
	"ns": nanosecond, "nanosecond": nanosecond, "nanoseconds": nanosecond,
	"us": microsecond, "μs": microsecond, "microsecond": microsecond, "microseconds": microsecond,
	"ms": millisecond, "millisecond": millisecond, "milliseconds": millisecond,
	"s": second, "sec": second, "secs": second, "second": second, "seconds": second,
	"m": minute, "min": minute, "mins": minute, "minute": minute, "minutes": minute,
	"h": hour, "hr": hour, "hrs": hour, "hour": hour, "hours": hour,
	"d": day, "day": day, "days": day,
	"w": week, "wk": week, "wks": week, "week": week, "weeks": week,
	"mo": month, "mos": month, "month": month, "months": month,
	"y": year, "yr": year, "yrs": year, "year": year, "years": year,
}

// durationAuto is the unit list walked when a duration is formatted without
// an explicit unit.
var durationAuto = []string{"y", "mo", "w", "d", "h", "m", "s", "ms", "us", "ns"}

// durationHuman lists the names used by HumanReadable, largest first.
var durationHuman = []string{
	"year", "month", "week", "day", "hour", "minute", "second",
	"millisecond", "microsecond", "nanosecond",
}

// IsInformationUnit reports whether symbol names an information unit.
func IsInformationUnit(symbol string) bool {
	_, ok := informationUnits[symbol]
	return ok
}

// IsInformationCategory reports whether symbol names an information category.
func IsInformationCategory(symbol string) bool {
	_, ok := informationCategories[symbol]
	return ok
}

// IsDurationUnit reports whether symbol names a duration unit.
func IsDurationUnit(symbol string) bool {
	_, ok := durationUnits[symbol]
	return ok
}

// InformationScale returns the number of bits in one unit of symbol.
func InformationScale(symbol string) (*big.Int, error) {
	scale, ok := informationUnits[symbol]
	if !ok {
		return nil, unknownUnit(dimensionInformation, symbol)
	}
	return new(big.Int).Set(scale), nil
}

// DurationScale returns the number of nanoseconds in one unit of symbol.
func DurationScale(symbol string) (*big.Int, error) {
	scale, ok := durationUnits[symbol]
	if !ok {
		return nil, unknownUnit(dimensionDuration, symbol)
	}
	return new(big.Int).Set(scale), nil
}

// InformationUnits lists every information symbol, smallest scale first.
func InformationUnits() []Unit {
	return sortedUnits(informationUnits)
}

// DurationUnits lists every duration symbol, smallest scale first.
func DurationUnits() []Unit {
	return sortedUnits(durationUnits)
}

// InformationCategories lists the information categories by symbol.
func InformationCategories() []Category {
	out := make([]Category, 0, len(informationCategories))
	for _, c := range informationCategories {
		units := make([]string, len(c.Units))
		copy(units, c.Units)
		c.Units = units
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

func sortedUnits(table map[string]*big.Int) []Unit {
	out := make([]Unit, 0, len(table))
	for symbol, scale := range table {
		out = append(out, Unit{Symbol: symbol, Scale: new(big.Int).Set(scale)})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Scale.Cmp(out[j].Scale); c != 0 {
			return c < 0
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}
