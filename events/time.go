package events

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bjaus/lambdaroute/internal/jsoncodec"
)

const slashLayout = "2006/01/02 15:04:05"

// SlashTime is a timestamp in the slash-delimited form direct invocation
// payloads use, e.g. "2021/04/08 13:18:48".
type SlashTime time.Time

// Time returns the underlying time.Time.
func (t SlashTime) Time() time.Time { return time.Time(t) }

func (t SlashTime) String() string { return time.Time(t).Format(slashLayout) }

func (t *SlashTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsoncodec.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(slashLayout, s)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	*t = SlashTime(parsed)
	return nil
}

func (t SlashTime) MarshalJSON() ([]byte, error) {
	return jsoncodec.Marshal(t.String())
}

// Millis is a millisecond Unix timestamp carried as a decimal string,
// the form SQS uses for record attribute timestamps.
type Millis time.Time

// Time returns the underlying time.Time.
func (m Millis) Time() time.Time { return time.Time(m) }

func (m *Millis) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsoncodec.Unmarshal(data, &s); err != nil {
		return err
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse millisecond timestamp %q: %w", s, err)
	}
	*m = Millis(time.UnixMilli(ms).UTC())
	return nil
}

func (m Millis) MarshalJSON() ([]byte, error) {
	return jsoncodec.Marshal(strconv.FormatInt(time.Time(m).UnixMilli(), 10))
}
