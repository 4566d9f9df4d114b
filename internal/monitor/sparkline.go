package monitor

import "strings"

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

// sparklineBlockRunes provides indexed access to block characters.
var sparklineBlockRunes = []rune(sparklineBlocks)

// sparklineGap is rendered in place of a sample with no measurable latency,
// keeping the time axis intact and visually distinct from a fast response.
const sparklineGap = ' '

// EncodeSparkline maps a sequence of latency samples to a glyph string, one
// rune per sample. Values are bucketed into 8 levels spanning the min/max of
// the non-gap samples; gap samples render as a blank at their position.
//
// The encoding is a pure function of its input: no state is carried between
// calls, and identical inputs always yield identical output. When every
// non-gap sample holds the same value (including a single sample), all of
// them map to the lowest level.
func EncodeSparkline(samples []Sample) string {
	if len(samples) == 0 {
		return ""
	}

	// Find min and max over the non-gap samples
	minVal, maxVal := 0.0, 0.0
	found := false
	for _, s := range samples {
		if s.Gap {
			continue
		}
		if !found {
			minVal, maxVal = s.Value, s.Value
			found = true
			continue
		}
		if s.Value < minVal {
			minVal = s.Value
		}
		if s.Value > maxVal {
			maxVal = s.Value
		}
	}

	var sb strings.Builder
	sb.Grow(len(samples) * 3) // UTF-8 block chars are 3 bytes

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, s := range samples {
		if s.Gap {
			sb.WriteRune(sparklineGap)
			continue
		}

		var level int
		if valueRange > 0 {
			normalized := (s.Value - minVal) / valueRange
			level = int(normalized * float64(numLevels-1))
			if level < 0 {
				level = 0
			} else if level >= numLevels {
				level = numLevels - 1
			}
		}
		// valueRange == 0: all samples equal, everything is the lowest level
		sb.WriteRune(sparklineBlockRunes[level])
	}

	return sb.String()
}

// TrimSparkline keeps the newest width runes of an encoded sparkline.
func TrimSparkline(spark string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(spark)
	if len(runes) <= width {
		return spark
	}
	return string(runes[len(runes)-width:])
}
