package category

import (
	"encoding/json"
	"fmt"

	"arbor/table"
)

type categorizerJSON struct {
	Kind      string    `json:"kind"`
	Strings   []string  `json:"strings,omitempty"`
	Integers  []int64   `json:"integers,omitempty"`
	Bounds    []float64 `json:"bounds,omitempty"`
	Intervals []string  `json:"intervals,omitempty"`
}

/*
MarshalJSON encodes the categorizer as its kind plus the inverse
mapping in id order; the forward mapping is rebuilt on decode.
Intervals are encoded in their lexical cell form so that open ends
survive the trip through JSON.
*/
func (c *Categorizer) MarshalJSON() ([]byte, error) {
	j := categorizerJSON{Kind: c.kind.String()}
	switch c.kind {
	case OfStrings:
		j.Strings = c.strFrom
		if j.Strings == nil {
			j.Strings = []string{}
		}
	case OfIntegers:
		j.Integers = c.intFrom
	case OfBins:
		j.Bounds = c.bounds
	case OfIntervals:
		j.Intervals = make([]string, len(c.ivFrom))
		for i, iv := range c.ivFrom {
			j.Intervals[i] = iv.String()
		}
	}
	return json.Marshal(j)
}

/*
UnmarshalJSON decodes a categorizer encoded by MarshalJSON,
rebuilding the forward mapping from the stored inverse.
*/
func (c *Categorizer) UnmarshalJSON(data []byte) error {
	var j categorizerJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	switch j.Kind {
	case OfStrings.String():
		c.kind = OfStrings
		c.strFrom = j.Strings
		c.strTo = make(map[string]ID, len(j.Strings))
		for i, s := range j.Strings {
			c.strTo[s] = ID(i)
		}
		c.count = len(j.Strings)
	case OfIntegers.String():
		c.kind = OfIntegers
		c.intFrom = j.Integers
		c.intTo = make(map[int64]ID, len(j.Integers))
		for i, v := range j.Integers {
			c.intTo[v] = ID(i)
		}
		c.count = len(j.Integers)
	case OfBins.String():
		c.kind = OfBins
		c.bounds = j.Bounds
		c.count = len(j.Bounds) + 1
	case OfIntervals.String():
		c.kind = OfIntervals
		c.ivFrom = make([]table.Interval, len(j.Intervals))
		c.ivTo = make(map[table.Interval]ID, len(j.Intervals))
		for i, s := range j.Intervals {
			cell := table.ParseCell(s)
			if cell.Kind() != table.KindInterval {
				return fmt.Errorf("decoding categorizer: %q is not an interval", s)
			}
			c.ivFrom[i] = cell.Interval()
			c.ivTo[cell.Interval()] = ID(i)
		}
		c.count = len(j.Intervals)
	default:
		return fmt.Errorf("decoding categorizer: unknown kind %q", j.Kind)
	}
	return nil
}
