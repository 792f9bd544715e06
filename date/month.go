package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Month is one of the twelve month labels used by monthly earnings.
//
// The zero value is not a valid month.
type Month int

// Months lists the twelve valid months in calendar order.
var Months = []Month{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

// IsValid reports whether m is one of the twelve months.
func (m Month) IsValid() bool { return m >= 1 && m <= 12 }

// String returns the month label, e.g. "January".
func (m Month) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return time.Month(m).String()
}

// ParseMonth parses a month label. It is case insensitive and accepts the
// three letter abbreviation ("jan") as well as the month number ("1").
func ParseMonth(str string) (Month, error) {
	s := strings.TrimSpace(str)
	for _, m := range Months {
		label := m.String()
		if strings.EqualFold(s, label) || strings.EqualFold(s, label[:3]) || s == fmt.Sprint(int(m)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid month %q", str)
}

// Labels returns the twelve month labels in calendar order.
func Labels() []string {
	labels := make([]string, 0, len(Months))
	for _, m := range Months {
		labels = append(labels, m.String())
	}
	return labels
}

func (m *Month) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParseMonth(str)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m Month) MarshalJSON() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid month %d", int(m))
	}
	return json.Marshal(m.String())
}
