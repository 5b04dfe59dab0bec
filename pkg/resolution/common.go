package resolution

import "strings"

// Common 16:9 resolutions.
var (
	R360p  = must(FromHeight(360, SixteenNine))
	R480p  = must(FromHeight(480, SixteenNine))
	R720p  = must(FromHeight(720, SixteenNine))
	R1080p = must(FromHeight(1080, SixteenNine))
	R1440p = must(FromHeight(1440, SixteenNine))
)

// Common 4:3 resolutions.
//
// There is no 1080p entry: 1440 x 1080 is not a standard 4:3 mode. Build it
// with FromHeight(1080, FourThree) if you need it.
var (
	R360p4x3  = must(FromHeight(360, FourThree))
	R480p4x3  = must(FromHeight(480, FourThree))
	R720p4x3  = must(FromHeight(720, FourThree))
	R1440p4x3 = must(FromHeight(1440, FourThree))
)

// CommonResolution is a named entry in the catalog of common resolutions.
type CommonResolution struct {
	Name       string
	Resolution Resolution
}

func (c CommonResolution) String() string {
	return c.Name
}

var common16x9 = []CommonResolution{
	{"360p", R360p},
	{"480p", R480p},
	{"720p", R720p},
	{"1080p", R1080p},
	{"1440p", R1440p},
}

var common4x3 = []CommonResolution{
	{"360p@4:3", R360p4x3},
	{"480p@4:3", R480p4x3},
	{"720p@4:3", R720p4x3},
	{"1440p@4:3", R1440p4x3},
}

var commonByName = func() map[string]Resolution {
	byName := make(map[string]Resolution, len(common16x9)+len(common4x3))

	for _, c := range common16x9 {
		byName[c.Name] = c.Resolution
	}

	for _, c := range common4x3 {
		byName[c.Name] = c.Resolution
	}

	return byName
}()

// Common16x9 returns the 16:9 catalog in ascending height order.
func Common16x9() []CommonResolution {
	return append([]CommonResolution(nil), common16x9...)
}

// Common4x3 returns the 4:3 catalog in ascending height order.
func Common4x3() []CommonResolution {
	return append([]CommonResolution(nil), common4x3...)
}

// Common returns the whole catalog, 16:9 entries first.
func Common() []CommonResolution {
	return append(Common16x9(), common4x3...)
}

// Lookup finds a catalog entry by name. Names are case-insensitive; a bare
// height such as "720p" is 16:9, and an explicit "@16:9" suffix is accepted.
func Lookup(name string) (Resolution, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "@16:9")

	r, ok := commonByName[key]

	return r, ok
}
