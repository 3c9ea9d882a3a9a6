package entity

import (
	"encoding/json"
	"strings"
	"time"

	"dsr-service/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// LooseDate is a date stored as free text. The raw string round-trips
// untouched; validity and the parsed instant are computed once when the value
// is created or decoded.
type LooseDate struct {
	Raw    string
	parsed time.Time
	valid  bool
}

// NewLooseDate wraps raw and parses it.
func NewLooseDate(raw string) LooseDate {
	t, ok := utils.ParseLooseDate(raw)
	return LooseDate{Raw: raw, parsed: t, valid: ok}
}

// Valid reports whether the raw value is a parseable date.
func (d LooseDate) Valid() bool { return d.valid }

// Time returns the parsed instant and whether it is valid.
func (d LooseDate) Time() (time.Time, bool) { return d.parsed, d.valid }

// IsZero reports whether nothing was recorded at all.
func (d LooseDate) IsZero() bool { return strings.TrimSpace(d.Raw) == "" }

func (d LooseDate) String() string { return d.Raw }

// Day returns the date part formatted as YYYY-MM-DD, or "" when invalid.
func (d LooseDate) Day() string {
	if !d.valid {
		return ""
	}
	return d.parsed.Format(utils.DATE_LAYOUT)
}

// MarshalBSONValue stores the raw text so existing documents keep their shape.
func (d LooseDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.Raw)
}

// UnmarshalBSONValue accepts strings, BSON datetimes and nulls. Any other
// type decodes as an absent date.
func (d *LooseDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeString:
		*d = NewLooseDate(rv.StringValue())
	case bson.TypeDateTime:
		tm := time.UnixMilli(rv.DateTime()).UTC()
		*d = LooseDate{Raw: tm.Format(time.RFC3339), parsed: tm, valid: true}
	default:
		*d = LooseDate{}
	}
	return nil
}

func (d LooseDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Raw)
}

func (d *LooseDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = LooseDate{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = NewLooseDate(raw)
	return nil
}
