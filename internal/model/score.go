package model

import "strconv"

// Score is an entropy estimate in the range 0..100, rounded to one decimal.
//
// It marshals with exactly one fractional digit ("100.0", "0.0") so that the
// structured output does not change shape between whole and fractional values.
type Score float64

// String returns the score with one decimal place.
func (s Score) String() string {
	return strconv.FormatFloat(float64(s), 'f', 1, 64)
}

// MarshalJSON implements json.Marshaler.
func (s Score) MarshalJSON() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Score) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*s = Score(v)
	return nil
}
