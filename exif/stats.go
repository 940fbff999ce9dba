package exif

import (
	"strconv"
	"strings"
)

// Tag names the summarizer knows how to aggregate
const (
	TagModel        = "Model"
	TagExposureTime = "ExposureTime"
	TagISO          = "ISOSpeedRatings"
	TagFocalLength  = "FocalLength"
)

// Stat is the aggregate of one numeric column. OK is false when no row
// held a parseable value - the "not computable" case, which is distinct
// from a mean of zero. Values keeps the per-row parsed numbers, in row
// order, for histogram rendering downstream.
type Stat struct {
	Mean   float64   `json:"mean"`
	Values []float64 `json:"values"`
	OK     bool      `json:"ok"`
}

// Summary holds the derived aggregates of a metadata table. A nil field
// means the corresponding column was not present at all.
type Summary struct {
	ModelCounts  map[string]int `json:"model_counts,omitempty"`
	ExposureTime *Stat          `json:"exposure_time,omitempty"`
	ISO          *Stat          `json:"iso,omitempty"`
	FocalLength  *Stat          `json:"focal_length,omitempty"`
}

// Summarize recomputes the aggregates of a table from scratch. Pure
// function: same table in, same summary out.
func Summarize(t Table) Summary {
	s := Summary{}
	if t.HasColumn(TagModel) {
		counts := map[string]int{}
		for _, row := range t.Rows {
			if model, ok := row[TagModel]; ok {
				counts[model]++
			}
		}
		s.ModelCounts = counts
	}
	if t.HasColumn(TagExposureTime) {
		s.ExposureTime = columnStat(t, TagExposureTime, parseRatio)
	}
	if t.HasColumn(TagISO) {
		s.ISO = columnStat(t, TagISO, parseDecimal)
	}
	if t.HasColumn(TagFocalLength) {
		s.FocalLength = columnStat(t, TagFocalLength, parseRatio)
	}
	return s
}

// columnStat averages the parseable cells of one column. Rows that are
// absent or fail to parse are excluded, not counted as zero.
func columnStat(t Table, column string, parse func(string) (float64, bool)) *Stat {
	stat := &Stat{}
	for _, row := range t.Rows {
		cell, ok := row[column]
		if !ok {
			continue
		}
		value, ok := parse(cell)
		if !ok {
			continue
		}
		stat.Values = append(stat.Values, value)
	}
	if len(stat.Values) == 0 {
		return stat
	}
	sum := 0.0
	for _, v := range stat.Values {
		sum += v
	}
	stat.Mean = sum / float64(len(stat.Values))
	stat.OK = true
	return stat
}

// parseRatio reads either a "numerator/denominator" fraction or a plain
// decimal, the two forms cameras write for exposure and focal length.
func parseRatio(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if num, den, found := strings.Cut(s, "/"); found {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	return parseDecimal(s)
}

func parseDecimal(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
