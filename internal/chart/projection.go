// Package chart derives renderable pie-slice data from the category
// list. Pure functions of the current state; pixel drawing belongs to
// the caller.
package chart

import (
	"fmt"
	"math"

	"bplan/internal/model"
)

// Palette is the fixed cyclic slice palette. Colors are assigned by
// filtered slice order, index mod len(Palette).
var Palette = []string{
	"#4385BE", // blue
	"#879A39", // green
	"#DA702C", // orange
	"#8B7EC8", // purple
	"#D0A215", // yellow
	"#D14D41", // red
}

// Slice is one renderable pie slice.
type Slice struct {
	Name       string
	Percentage float64
	Color      string
}

// Slices filters to categories with a positive percentage and assigns
// each a palette color. Returns nil when nothing is allocated; the
// empty state is the caller's placeholder, not chart output.
func Slices(categories []model.Category) []Slice {
	var out []Slice
	for i, c := range categories {
		if c.Percentage <= 0 {
			continue
		}
		out = append(out, Slice{
			Name:       c.DisplayName(i),
			Percentage: c.Percentage,
			Color:      Palette[len(out)%len(Palette)],
		})
	}
	return out
}

// ArcSlice couples a slice with its SVG path for a circle of the given
// center and radius.
type ArcSlice struct {
	Slice
	Path string
}

// ArcSlices computes wedge paths for each slice, proportional to its
// share of the total allocated percentage. Sweeps start at 12 o'clock
// and advance clockwise. A sweep that closes the full circle degenerates
// to a two-arc circle path instead of a zero-length arc.
func ArcSlices(categories []model.Category, cx, cy, r float64) []ArcSlice {
	slices := Slices(categories)
	if len(slices) == 0 {
		return nil
	}

	var total float64
	for _, s := range slices {
		total += s.Percentage
	}
	if total <= 0 {
		return nil
	}

	out := make([]ArcSlice, 0, len(slices))
	angle := 0.0 // degrees clockwise from 12 o'clock
	for _, s := range slices {
		sweep := s.Percentage / total * 360
		end := angle + sweep

		var path string
		if sweep >= 360-1e-9 {
			path = fullCirclePath(cx, cy, r)
		} else {
			path = wedgePath(cx, cy, r, angle, end)
		}
		out = append(out, ArcSlice{Slice: s, Path: path})
		angle = end
	}
	return out
}

// pointAt returns the circle point at the given clockwise angle in
// degrees from 12 o'clock.
func pointAt(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

func wedgePath(cx, cy, r, startDeg, endDeg float64) string {
	sx, sy := pointAt(cx, cy, r, startDeg)
	ex, ey := pointAt(cx, cy, r, endDeg)
	largeArc := 0
	if endDeg-startDeg > 180 {
		largeArc = 1
	}
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 %d 1 %.2f %.2f Z",
		cx, cy, sx, sy, r, r, largeArc, ex, ey)
}

func fullCirclePath(cx, cy, r float64) string {
	return fmt.Sprintf("M %.2f %.2f A %.2f %.2f 0 1 1 %.2f %.2f A %.2f %.2f 0 1 1 %.2f %.2f Z",
		cx, cy-r, r, r, cx, cy+r, r, r, cx, cy-r)
}
