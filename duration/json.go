package duration

import "encoding/json"

// fields is the structured wire form of a RelativeDuration, with the signs
// already resolved into plain integers.
type fields struct {
	Months int `json:"months"`
	Weeks  int `json:"weeks"`
	Days   int `json:"days"`
}

// MarshalJSON emits the structured field form {"months":...,"weeks":...,"days":...}.
// Use MarshalText / ISO8601 when the compact textual form is wanted instead.
func (rd RelativeDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(fields{
		Months: rd.NumMonths(),
		Weeks:  rd.NumWeeks(),
		Days:   rd.NumDays(),
	})
}

// UnmarshalJSON accepts the structured field form; absent fields are zero.
func (rd *RelativeDuration) UnmarshalJSON(data []byte) error {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	parsed, ok := FromMWDChecked(f.Months, f.Weeks, f.Days).Get()
	if !ok {
		return &ParseError{Input: string(data), Msg: "duration component out of range"}
	}
	*rd = parsed
	return nil
}
