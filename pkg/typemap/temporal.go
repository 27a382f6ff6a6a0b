package typemap

import (
	"fmt"
	"time"
)

// DateTimeOffset is a point in time whose zone offset is significant to the
// store, mapped to offset-carrying column types. Plain time.Time maps to the
// offset-less datetime types instead.
type DateTimeOffset time.Time

// Time returns the underlying time.Time.
func (d DateTimeOffset) Time() time.Time {
	return time.Time(d)
}

const (
	dateLayout           = "2006-01-02"
	dateTimeLayout       = "2006-01-02T15:04:05.000"
	dateTimeOffsetLayout = "2006-01-02T15:04:05.000-07:00"
)

// dateTimeMapping maps offset-less points in time (and bare dates) to
// datetime store types. The layout fixes exactly three fractional-second
// digits for datetime types and none for dates.
type dateTimeMapping struct {
	baseMapping
	layout string
}

// NewDateTimeMapping creates a mapping for offset-less time.Time values.
// An empty layout selects the ISO-8601 datetime form with three
// fractional-second digits.
func NewDateTimeMapping(facets Facets, layout string) (Mapping, error) {
	if err := facets.Validate(); err != nil {
		return nil, err
	}
	if layout == "" {
		layout = dateTimeLayout
	}
	return &dateTimeMapping{baseMapping{facets}, layout}, nil
}

func (m *dateTimeMapping) GenerateSQLLiteral(value any) string {
	return renderLiteral(m.facets, value, func(v any) string {
		switch t := v.(type) {
		case time.Time:
			return quoteString(t.Format(m.layout))
		case DateTimeOffset:
			return quoteString(t.Time().Format(m.layout))
		default:
			return quoteString(fmt.Sprint(v))
		}
	})
}

func (m *dateTimeMapping) CloneWithConverter(converter ValueConverter) Mapping {
	f := m.facets
	f.Converter = converter
	return &dateTimeMapping{baseMapping{f}, m.layout}
}

// dateTimeOffsetMapping maps offset-carrying points in time. The offset is
// rendered as a signed hour:minute pair, never as the Z shorthand.
type dateTimeOffsetMapping struct {
	baseMapping
}

// NewDateTimeOffsetMapping creates a mapping for DateTimeOffset values.
func NewDateTimeOffsetMapping(facets Facets) (Mapping, error) {
	if err := facets.Validate(); err != nil {
		return nil, err
	}
	return &dateTimeOffsetMapping{baseMapping{facets}}, nil
}

func (m *dateTimeOffsetMapping) GenerateSQLLiteral(value any) string {
	return renderLiteral(m.facets, value, func(v any) string {
		switch t := v.(type) {
		case DateTimeOffset:
			return quoteString(t.Time().Format(dateTimeOffsetLayout))
		case time.Time:
			return quoteString(t.Format(dateTimeOffsetLayout))
		default:
			return quoteString(fmt.Sprint(v))
		}
	})
}

func (m *dateTimeOffsetMapping) CloneWithConverter(converter ValueConverter) Mapping {
	f := m.facets
	f.Converter = converter
	return &dateTimeOffsetMapping{baseMapping{f}}
}

// timeMapping maps durations since midnight to the time store type.
type timeMapping struct {
	baseMapping
}

// NewTimeMapping creates a mapping for time.Duration values interpreted as a
// time of day.
func NewTimeMapping(facets Facets) (Mapping, error) {
	if err := facets.Validate(); err != nil {
		return nil, err
	}
	return &timeMapping{baseMapping{facets}}, nil
}

func (m *timeMapping) GenerateSQLLiteral(value any) string {
	return renderLiteral(m.facets, value, func(v any) string {
		switch t := v.(type) {
		case time.Duration:
			return quoteString(formatTimeOfDay(t))
		case time.Time:
			return quoteString(t.Format("15:04:05"))
		default:
			return quoteString(fmt.Sprint(v))
		}
	})
}

func (m *timeMapping) CloneWithConverter(converter ValueConverter) Mapping {
	f := m.facets
	f.Converter = converter
	return &timeMapping{baseMapping{f}}
}

// formatTimeOfDay renders a duration since midnight as HH:mm:ss, appending
// three fractional-second digits only when the fraction is nonzero.
func formatTimeOfDay(d time.Duration) string {
	h := d / time.Hour
	d -= h * time.Hour
	min := d / time.Minute
	d -= min * time.Minute
	sec := d / time.Second
	d -= sec * time.Second
	ms := d / time.Millisecond

	if ms == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, min, sec)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, min, sec, ms)
}
