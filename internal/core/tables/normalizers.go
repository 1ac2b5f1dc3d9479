package tables

import (
	"strings"

	"github.com/JonMunkholm/csvtransform/internal/core"
)

// NoonTime replaces the time portion of normalized date values.
const NoonTime = "12:00:00"

func init() {
	core.RegisterTransform(DateToNoon)
}

// DateToNoon pins every Date value to noon on its calendar date.
var DateToNoon = core.FieldNormalizer{
	Label:     "date_noon",
	Field:     "Date",
	Normalize: NormalizeDateToNoon,
}

// NormalizeDateToNoon keeps the text before the first space and replaces the
// rest with NoonTime: "2023-05-01 07:15:42" becomes "2023-05-01 12:00:00".
// Values without a space, including "", are returned unchanged.
func NormalizeDateToNoon(s string) string {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s
	}
	return s[:i] + " " + NoonTime
}
