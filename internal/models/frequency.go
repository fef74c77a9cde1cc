package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FrequencyCustom is the sentinel for 7+ visits per week. Such bookings are
// quoted manually and never get a computed price.
const FrequencyCustom = "custom"

// Frequency is the number of visits per week, or the "custom" sentinel.
// On the wire it is either a JSON number or the string "custom".
type Frequency struct {
	Visits int
	Custom bool
}

func (f Frequency) MarshalJSON() ([]byte, error) {
	if f.Custom {
		return json.Marshal(FrequencyCustom)
	}
	return json.Marshal(f.Visits)
}

func (f *Frequency) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = Frequency{Visits: n}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil || s != FrequencyCustom {
		return fmt.Errorf("frequency must be a number or %q", FrequencyCustom)
	}
	*f = Frequency{Custom: true}
	return nil
}

func (f Frequency) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if f.Custom {
		return bson.MarshalValue(FrequencyCustom)
	}
	return bson.MarshalValue(int32(f.Visits))
}

func (f *Frequency) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	if s, ok := rv.StringValueOK(); ok {
		if s != FrequencyCustom {
			return fmt.Errorf("unexpected frequency value %q", s)
		}
		*f = Frequency{Custom: true}
		return nil
	}
	if n, ok := rv.AsInt64OK(); ok {
		*f = Frequency{Visits: int(n)}
		return nil
	}
	return fmt.Errorf("unexpected frequency type %s", t)
}

// String renders the operator-facing form ("3" or "custom").
func (f Frequency) String() string {
	if f.Custom {
		return FrequencyCustom
	}
	return fmt.Sprintf("%d", f.Visits)
}
