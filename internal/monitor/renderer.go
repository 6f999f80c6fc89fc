package monitor

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/sensible-monitor/sensible/internal/sensors"
	"github.com/sirupsen/logrus"
)

// Chip column layout. Row 0 is the top border, which carries the title.
const (
	titleRow   = 0
	headerRow  = 1
	firstRow   = 3
	labelCol   = 1
	nameCol    = 3
	valueWidth = 11
)

// ChipRenderer draws one chip into one column region. It opens a fresh
// provider session for every chip and releases it before returning.
type ChipRenderer struct {
	provider sensors.Provider
	log      logrus.FieldLogger
}

// NewChipRenderer returns a renderer reading chips from provider.
func NewChipRenderer(provider sensors.Provider, log logrus.FieldLogger) *ChipRenderer {
	return &ChipRenderer{provider: provider, log: log}
}

// Render draws the chip at ordinal into region. A missing chip, or a
// provider that cannot be opened, leaves an empty bordered column.
func (r *ChipRenderer) Render(ctx context.Context, region Region, ordinal int) {
	region.Clear()
	region.Border()
	defer region.Flush()

	sess, err := r.provider.Open(ctx)
	if err != nil {
		r.log.WithError(err).WithField("ordinal", ordinal).Warn("opening sensor source")
		return
	}
	defer closeSession(sess, r.log)

	chip, ok := sess.ChipAt(ordinal)
	if !ok {
		return
	}
	r.draw(region, chip)
}

func (r *ChipRenderer) draw(region Region, chip sensors.Chip) {
	height, width := region.Size()
	bottom := height - 1
	valueCol := width - 2 - valueWidth

	region.WriteAt(titleRow, labelCol, truncate(chip.Title(), width-2))
	region.WriteAt(headerRow, labelCol, "SENSOR")
	region.WriteAt(headerRow, valueCol, fmt.Sprintf("%*s", valueWidth, "VALUE"))

	line := firstRow
	for feature := range chip.Features() {
		if line >= bottom {
			return
		}
		region.WriteAt(line, labelCol, truncate(feature.Label, width-2-labelCol))
		line++

		for sub := range feature.Subfeatures() {
			if line >= bottom {
				return
			}
			v, err := sub.Value()
			if err != nil {
				r.log.WithError(err).WithFields(logrus.Fields{
					"chip":       chip.Prefix,
					"subfeature": sub.Name,
				}).Debug("skipping unreadable subfeature")
				continue
			}
			region.WriteAt(line, nameCol, truncate(sub.Name, valueCol-nameCol-1))
			region.WriteAt(line, valueCol, formatValue(v))
			line++
		}
		line++
	}
}

// formatValue renders v fixed-point with two decimals, right-justified.
func formatValue(v float64) string {
	return fmt.Sprintf("%*s", valueWidth, strconv.FormatFloat(v, 'f', 2, 64))
}

// truncate cuts s to at most width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return runewidth.Truncate(s, 1, "")
	}
	return runewidth.Truncate(s, width, "…")
}

func closeSession(sess sensors.Session, log logrus.FieldLogger) {
	if err := sess.Close(); err != nil {
		log.WithError(err).Warn("closing sensor session")
	}
}
