package entity

import (
	"fmt"

	"github.com/rocketscienceinc/inarow/internal/apperror"
)

// Marker - a player's symbol. The zero value is the empty marker, used for free cells.
type Marker uint8

const (
	MarkerNone Marker = iota
	Circle
	Cross
)

const (
	CircleTag = "o"
	CrossTag  = "x"
)

var markerTags = map[Marker]string{
	Circle: CircleTag,
	Cross:  CrossTag,
}

// Markers - every non-empty marker kind in declaration order.
func Markers() []Marker {
	return []Marker{Circle, Cross}
}

// ParseMarker - maps an external identifier to its marker kind.
func ParseMarker(tag string) (Marker, error) {
	for marker, markerTag := range markerTags {
		if markerTag == tag {
			return marker, nil
		}
	}

	return MarkerNone, fmt.Errorf("%w: %q", apperror.ErrUnknownMarkerIdentifier, tag)
}

// ParseMarkers - maps identifiers in order, failing on the first unknown one.
func ParseMarkers(tags []string) ([]Marker, error) {
	markers := make([]Marker, 0, len(tags))
	for _, tag := range tags {
		marker, err := ParseMarker(tag)
		if err != nil {
			return nil, err
		}

		markers = append(markers, marker)
	}

	return markers, nil
}

// Tag - identifying tag of the marker, empty for MarkerNone.
func (that Marker) Tag() string {
	return markerTags[that]
}

func (that Marker) IsEmpty() bool {
	return that == MarkerNone
}

// Copy - markers carry no state, so a copy is just the value.
func (that Marker) Copy() Marker {
	return that
}

func (that Marker) String() string {
	if that.IsEmpty() {
		return "-"
	}

	return that.Tag()
}

func (that Marker) MarshalText() ([]byte, error) {
	return []byte(that.Tag()), nil
}

func (that *Marker) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*that = MarkerNone
		return nil
	}

	marker, err := ParseMarker(string(text))
	if err != nil {
		return err
	}

	*that = marker

	return nil
}
