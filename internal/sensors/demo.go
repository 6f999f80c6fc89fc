package sensors

import (
	"context"
	"fmt"
	"iter"
	"math"
	"slices"
	"time"
)

// demoReading describes one synthetic subfeature: a sine wave around base.
// A zero period marks a reading that always fails.
type demoReading struct {
	name   string
	base   float64
	swing  float64
	period time.Duration
}

type demoFeature struct {
	label    string
	readings []demoReading
}

type demoChip struct {
	prefix   string
	features []demoFeature
}

var demoChips = []demoChip{
	{"coretemp-isa-0000", []demoFeature{
		{"Package id 0", []demoReading{{"temp1_input", 52, 9, 7 * time.Second}, {"temp1_max", 100, 0, time.Hour}, {"temp1_crit", 100, 0, time.Hour}}},
		{"Core 0", []demoReading{{"temp2_input", 49, 8, 5 * time.Second}, {"temp2_max", 100, 0, time.Hour}}},
		{"Core 1", []demoReading{{"temp3_input", 51, 10, 6 * time.Second}, {"temp3_max", 100, 0, time.Hour}}},
		{"Core 2", []demoReading{{"temp4_input", 47, 7, 9 * time.Second}, {"temp4_max", 100, 0, time.Hour}}},
		{"Core 3", []demoReading{{"temp5_input", 50, 9, 4 * time.Second}, {"temp5_max", 100, 0, time.Hour}}},
	}},
	{"nct6798-isa-0290", []demoFeature{
		{"Vcore", []demoReading{{"in0_input", 1.21, 0.04, 3 * time.Second}, {"in0_min", 0.8, 0, time.Hour}, {"in0_max", 1.74, 0, time.Hour}}},
		{"+12V", []demoReading{{"in1_input", 12.1, 0.05, 11 * time.Second}}},
		{"CPU Fan", []demoReading{{"fan1_input", 1180, 140, 8 * time.Second}, {"fan1_min", 300, 0, time.Hour}}},
		{"Chassis Fan", []demoReading{{"fan2_input", 820, 60, 13 * time.Second}, {"fan2_min", 0, 0, 0}}},
		{"SYSTIN", []demoReading{{"temp1_input", 34, 2, 20 * time.Second}}},
	}},
	{"nvme-pci-0100", []demoFeature{
		{"Composite", []demoReading{{"temp1_input", 41, 4, 15 * time.Second}, {"temp1_max", 84.85, 0, time.Hour}, {"temp1_crit", 84.85, 0, time.Hour}}},
		{"Sensor 1", []demoReading{{"temp2_input", 39, 3, 17 * time.Second}}},
	}},
	{"amdgpu-pci-0300", []demoFeature{
		{"vddgfx", []demoReading{{"in0_input", 0.86, 0.1, 2 * time.Second}}},
		{"fan1", []demoReading{{"fan1_input", 0, 0, 0}}},
		{"edge", []demoReading{{"temp1_input", 45, 6, 6 * time.Second}, {"temp1_crit", 100, 0, time.Hour}}},
		{"junction", []demoReading{{"temp2_input", 52, 9, 6 * time.Second}, {"temp2_crit", 110, 0, time.Hour}}},
		{"PPT", []demoReading{{"power1_average", 38, 20, 4 * time.Second}, {"power1_cap", 203, 0, time.Hour}}},
	}},
	{"acpitz-acpi-0", []demoFeature{
		{"temp1", []demoReading{{"temp1_input", 27.8, 0.5, 30 * time.Second}}},
	}},
}

// DemoProvider serves a fixed set of synthetic chips whose readings drift
// over time. A few readings always fail, exercising omitted rows.
type DemoProvider struct {
	start time.Time
	now   func() time.Time
}

// NewDemoProvider returns a demo provider whose clock starts now.
func NewDemoProvider() *DemoProvider {
	return &DemoProvider{start: time.Now(), now: time.Now}
}

// Open implements Provider.
func (p *DemoProvider) Open(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chips := make([]Chip, 0, len(demoChips))
	for _, c := range demoChips {
		chips = append(chips, NewChip(c.prefix, SourceDemo, p.features(c.features)))
	}
	return &listSession{chips: chips}, nil
}

func (p *DemoProvider) features(feats []demoFeature) iter.Seq[Feature] {
	return func(yield func(Feature) bool) {
		for _, f := range feats {
			subs := make([]Subfeature, 0, len(f.readings))
			for _, r := range f.readings {
				subs = append(subs, NewSubfeature(r.name, p.reader(r)))
			}
			if !yield(NewFeature(f.label, slices.Values(subs))) {
				return
			}
		}
	}
}

func (p *DemoProvider) reader(r demoReading) func() (float64, error) {
	return func() (float64, error) {
		if r.period == 0 {
			return 0, fmt.Errorf("%s: %w", r.name, ErrUnreadable)
		}
		elapsed := p.now().Sub(p.start).Seconds()
		return r.base + r.swing*math.Sin(2*math.Pi*elapsed/r.period.Seconds()), nil
	}
}
