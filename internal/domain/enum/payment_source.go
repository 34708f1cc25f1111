package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentSource is one of the three independent customer balances a
// settlement can draw from. Combined settlement drains them in the
// declared order: cash, then card, then bonus points.
type PaymentSource int

const (
	PaymentSourceCash  PaymentSource = 0
	PaymentSourceCard  PaymentSource = 1
	PaymentSourceBonus PaymentSource = 2
)

// CombinedOrder is the fixed draw priority for combined settlement.
var CombinedOrder = [...]PaymentSource{PaymentSourceCash, PaymentSourceCard, PaymentSourceBonus}

func (s PaymentSource) String() string {
	return [...]string{"Cash", "Card", "Bonus"}[s]
}

// Valid reports whether the source is one of the three known balances.
func (s PaymentSource) Valid() bool {
	return s >= PaymentSourceCash && s <= PaymentSourceBonus
}

func (s PaymentSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentSource(i)
		return nil
	}
	switch str {
	case "Cash":
		*s = PaymentSourceCash
	case "Card":
		*s = PaymentSourceCard
	case "Bonus":
		*s = PaymentSourceBonus
	}
	return nil
}

func (s PaymentSource) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentSource) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentSourceCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentSource(v)
	case int:
		*s = PaymentSource(v)
	}
	return nil
}
