package models

import (
	"encoding/json"
	"strings"
	"time"
)

type FilterKind int

const (
	FilterAbsent FilterKind = iota
	FilterWildcard
	FilterValue
)

const wildcard = "any"

// Filter is an optional text filter. Absent and Wildcard both match
// everything; only Value narrows results.
type Filter struct {
	Kind  FilterKind
	Value string
}

func AnyFilter() Filter {
	return Filter{Kind: FilterWildcard}
}

func ValueFilter(v string) Filter {
	return Filter{Kind: FilterValue, Value: v}
}

// ParseFilter maps the wire representation to a Filter: nil or blank is
// absent, "any" (any case) is the wildcard.
func ParseFilter(raw *string) Filter {
	if raw == nil {
		return Filter{}
	}
	v := strings.TrimSpace(*raw)
	switch {
	case v == "":
		return Filter{}
	case strings.EqualFold(v, wildcard):
		return AnyFilter()
	default:
		return ValueFilter(v)
	}
}

func (f Filter) IsSet() bool {
	return f.Kind == FilterValue
}

func (f Filter) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case FilterWildcard:
		return json.Marshal(wildcard)
	case FilterValue:
		return json.Marshal(f.Value)
	default:
		return []byte("null"), nil
	}
}

// Query is the pre-validated input of a ranking run. Date takes precedence
// over Month; Month 0 means no month.
type Query struct {
	Location   Filter
	Flower     Filter
	Date       *time.Time
	Month      int
	Year       int
	MaxResults int
}
