package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ItemKind identifies what a cart line refers to: metered fuel or a
// flat-fee station service. The set is closed; pricing dispatches on it.
type ItemKind int

const (
	ItemKindFuel    ItemKind = 0
	ItemKindService ItemKind = 1
)

func (k ItemKind) String() string {
	return [...]string{"Fuel", "Service"}[k]
}

// Valid reports whether the kind is one of the two known variants.
func (k ItemKind) Valid() bool {
	return k == ItemKindFuel || k == ItemKindService
}

func (k ItemKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ItemKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = ItemKind(i)
		return nil
	}
	switch str {
	case "Fuel":
		*k = ItemKindFuel
	case "Service":
		*k = ItemKindService
	}
	return nil
}

func (k ItemKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *ItemKind) Scan(value interface{}) error {
	if value == nil {
		*k = ItemKindFuel
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = ItemKind(v)
	case int:
		*k = ItemKind(v)
	}
	return nil
}
