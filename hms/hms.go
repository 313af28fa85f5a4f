// Wall-clock times of day for serverstats logs.
//
// The .dat files written by serverstats_grab carry integer epoch timestamps;
// the tools in this repo select rows by the local wall-clock time of day
// those timestamps fall on, with the date discarded.  This package holds the
// time-of-day representation, the strict HH:MM:SS parser used for command
// line bounds, and the inclusive [from,to] window.

package hms

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// TimeOfDay is a second within the day, 0 through 86399.
type TimeOfDay int

// MT: Constant after initialization; immutable
var hmsRe = regexp.MustCompile(`^(\d\d):(\d\d):(\d\d)$`)

// Parse accepts strict HH:MM:SS only: two digits per component, hour 00-23,
// minute 00-59, second 00-59.  Anything else is an error.
func Parse(s string) (TimeOfDay, error) {
	probe := hmsRe.FindStringSubmatch(s)
	if probe == nil {
		return 0, badTime(s)
	}
	h, _ := strconv.Atoi(probe[1])
	m, _ := strconv.Atoi(probe[2])
	sec, _ := strconv.Atoi(probe[3])
	if h > 23 || m > 59 || sec > 59 {
		return 0, badTime(s)
	}
	return TimeOfDay(h*3600 + m*60 + sec), nil
}

func badTime(s string) error {
	return fmt.Errorf("Time '%s' must be in HH:MM:SS format, e.g. 12:33:01", s)
}

// FromEpoch is the wall-clock time of day of an epoch second in the host's
// local time zone.  The date is discarded: rows from different days of a
// multi-day log that share a wall-clock time are indistinguishable here.
func FromEpoch(epoch int64) TimeOfDay {
	t := time.Unix(epoch, 0)
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

func (t TimeOfDay) Hour() int {
	return int(t) / 3600
}

func (t TimeOfDay) Minute() int {
	return int(t) / 60 % 60
}

func (t TimeOfDay) Second() int {
	return int(t) % 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Window brackets times of day, inclusive on both ends.  A bound with its
// Have flag unset leaves that side unbounded.  Nothing stops From from being
// later than To; such a window just matches nothing.
type Window struct {
	HaveFrom bool
	From     TimeOfDay
	HaveTo   bool
	To       TimeOfDay
}

// WindowOf builds a Window from optional bound strings; "" leaves that side
// unbounded.
func WindowOf(fromStr, toStr string) (Window, error) {
	var w Window
	var err error
	if fromStr != "" {
		w.From, err = Parse(fromStr)
		if err != nil {
			return Window{}, err
		}
		w.HaveFrom = true
	}
	if toStr != "" {
		w.To, err = Parse(toStr)
		if err != nil {
			return Window{}, err
		}
		w.HaveTo = true
	}
	return w, nil
}

func (w Window) Contains(t TimeOfDay) bool {
	if w.HaveFrom && t < w.From {
		return false
	}
	if w.HaveTo && t > w.To {
		return false
	}
	return true
}
