// Package sensor computes row coverage for Manhattan-radius sensors, each
// defined by its own position and the position of its closest beacon.
package sensor

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aoc-go/aocutils/input"
	"github.com/aoc-go/aocutils/intervals"
)

var (
	// ErrBadLine indicates a line that does not describe a sensor.
	ErrBadLine = errors.New("sensor: malformed sensor line")

	// ErrNoBeaconGap indicates no uncovered position exists in the search area.
	ErrNoBeaconGap = errors.New("sensor: no uncovered position in search area")
)

// FrequencyMultiplier weights the x coordinate in TuningFrequency.
const FrequencyMultiplier = 4_000_000

var lineRe = regexp.MustCompile(`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`)

// Sensor is a sensor position and the closest beacon it reports.
type Sensor struct {
	X, Y             int64
	BeaconX, BeaconY int64
}

// ParseSensor parses a single "Sensor at x=.., y=..: closest beacon is at x=.., y=.." line.
func ParseSensor(line string) (Sensor, error) {
	m := lineRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Sensor{}, fmt.Errorf("%w: %q", ErrBadLine, line)
	}
	var v [4]int64
	for i := range v {
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return Sensor{}, fmt.Errorf("%w: %q: %w", ErrBadLine, line, err)
		}
		v[i] = n
	}

	return Sensor{X: v[0], Y: v[1], BeaconX: v[2], BeaconY: v[3]}, nil
}

// ParseSensors parses one sensor per non-blank line.
func ParseSensors(text string) ([]Sensor, error) {
	var out []Sensor
	for _, line := range input.Lines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := ParseSensor(line)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Radius is the Manhattan distance from the sensor to its beacon.
func (s Sensor) Radius() int64 {
	return abs(s.X-s.BeaconX) + abs(s.Y-s.BeaconY)
}

// Covers reports whether (x, y) is within the sensor's radius.
func (s Sensor) Covers(x, y int64) bool {
	return abs(s.X-x)+abs(s.Y-y) <= s.Radius()
}

// RowSpan returns the covered x range on row, or false if the row is out
// of reach.
func (s Sensor) RowSpan(row int64) (intervals.Interval[int64], bool) {
	reach := s.Radius() - abs(s.Y-row)
	if reach < 0 {
		return intervals.Interval[int64]{}, false
	}

	return intervals.Interval[int64]{Left: s.X - reach, Right: s.X + reach}, true
}

// RowCoverage merges every sensor's span on row.
func RowCoverage(sensors []Sensor, row int64) *intervals.Set[int64] {
	set := intervals.NewSet[int64]()
	for _, s := range sensors {
		if span, ok := s.RowSpan(row); ok {
			set.Insert(span)
		}
	}

	return set
}

// NoBeaconPositions counts positions on row where a beacon cannot be:
// covered positions minus those already occupied by a sensor or beacon.
func NoBeaconPositions(sensors []Sensor, row int64) int64 {
	set := RowCoverage(sensors, row)
	occupied := map[int64]struct{}{}
	for _, s := range sensors {
		if s.BeaconY == row {
			occupied[s.BeaconX] = struct{}{}
		}
		if s.Y == row {
			occupied[s.X] = struct{}{}
		}
	}
	n := int64(set.TotalLength())
	for x := range occupied {
		if set.Contains(x) {
			n--
		}
	}

	return n
}

// TuningFrequency finds the single uncovered position with both
// coordinates in [0, limit] and returns x*FrequencyMultiplier + y.
func TuningFrequency(sensors []Sensor, limit int64) (int64, error) {
	for y := int64(0); y <= limit; y++ {
		gaps := RowCoverage(sensors, y).Gaps(0, limit)
		if len(gaps) > 0 {
			return gaps[0].Left*FrequencyMultiplier + y, nil
		}
	}

	return 0, fmt.Errorf("%w: limit %d", ErrNoBeaconGap, limit)
}
