package sensors

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultHwmonRoot is where the kernel publishes hwmon devices.
const DefaultHwmonRoot = "/sys/class/hwmon"

// featureKinds lists the hwmon attribute families in display order and the
// factor converting their raw sysfs units to display units.
var featureKinds = []featureKind{
	{"in", 1e-3},       // millivolts
	{"fan", 1},         // rpm
	{"temp", 1e-3},     // millidegrees Celsius
	{"power", 1e-6},    // microwatts
	{"energy", 1e-6},   // microjoules
	{"curr", 1e-3},     // milliamperes
	{"humidity", 1e-3}, // milli-percent
	{"pwm", 1},         // 0-255 duty
	{"intrusion", 1},
}

type featureKind struct {
	prefix string
	scale  float64
}

// attrPattern matches hwmon attribute files: temp1_input, fan2_min, pwm1.
var attrPattern = regexp.MustCompile(`^([a-z]+)(\d+)(?:_([a-z0-9_]+))?$`)

// Attribute suffixes whose values are flags, counts or milliseconds and are
// never scaled. Matched on the last token, so temp1_crit_alarm is a flag.
var rawSuffixes = map[string]bool{
	"alarm":    true,
	"beep":     true,
	"fault":    true,
	"enable":   true,
	"type":     true,
	"mode":     true,
	"div":      true,
	"pulses":   true,
	"interval": true,
}

// HwmonProvider reads chips from a sysfs hwmon tree. Every Open rescans the
// root directory so hot-plugged devices appear on the next render.
type HwmonProvider struct {
	root string
	log  logrus.FieldLogger
}

// NewHwmonProvider returns a provider rooted at root, usually
// DefaultHwmonRoot.
func NewHwmonProvider(root string, log logrus.FieldLogger) *HwmonProvider {
	return &HwmonProvider{
		root: root,
		log:  log.WithField("component", "hwmon"),
	}
}

// Open implements Provider.
func (p *HwmonProvider) Open(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(p.root)
	if err != nil {
		return nil, fmt.Errorf("reading hwmon root %s: %w", p.root, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	slices.SortFunc(names, compareDeviceNames)

	chips := make([]Chip, 0, len(names))
	for _, name := range names {
		dir := filepath.Join(p.root, name)
		chips = append(chips, NewChip(p.chipName(dir, name), name, p.features(dir)))
	}
	return &listSession{chips: chips}, nil
}

// chipName reads the device's name attribute, falling back to the
// directory name.
func (p *HwmonProvider) chipName(dir, fallback string) string {
	b, err := os.ReadFile(filepath.Join(dir, "name"))
	if err != nil {
		p.log.WithError(err).WithField("dir", dir).Debug("hwmon device has no name")
		return fallback
	}
	if name := strings.TrimSpace(string(b)); name != "" {
		return name
	}
	return fallback
}

// hwmonFeature is one attribute family instance, e.g. temp1.
type hwmonFeature struct {
	kind  int
	index int
	key   string
	scale float64
	attrs []string
}

// features lazily scans dir for attribute files when the chip is rendered.
func (p *HwmonProvider) features(dir string) iter.Seq[Feature] {
	return func(yield func(Feature) bool) {
		attrDir, feats := scanAttributes(dir)
		if len(feats) == 0 {
			// Older drivers keep their attributes on the parent device.
			attrDir, feats = scanAttributes(filepath.Join(dir, "device"))
		}

		for _, f := range feats {
			label := readLabel(attrDir, f.key)
			if !yield(NewFeature(label, p.subfeatures(attrDir, f))) {
				return
			}
		}
	}
}

func (p *HwmonProvider) subfeatures(dir string, f hwmonFeature) iter.Seq[Subfeature] {
	return func(yield func(Subfeature) bool) {
		for _, attr := range f.attrs {
			path := filepath.Join(dir, attr)
			scale := f.scale
			if isRaw(attr) {
				scale = 1
			}
			sub := NewSubfeature(attr, func() (float64, error) {
				v, err := readNumber(path)
				if err != nil {
					p.log.WithError(err).WithField("attr", path).Debug("hwmon read failed")
					return 0, err
				}
				return v * scale, nil
			})
			if !yield(sub) {
				return
			}
		}
	}
}

// scanAttributes groups the attribute files in dir by feature, ordered by
// kind then index. Attributes within a feature are ordered input first.
func scanAttributes(dir string) (string, []hwmonFeature) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return dir, nil
	}

	byKey := make(map[string]*hwmonFeature)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := attrPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		kind := slices.IndexFunc(featureKinds, func(k featureKind) bool {
			return k.prefix == m[1]
		})
		if kind < 0 || m[3] == "label" {
			continue
		}
		index, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		key := m[1] + m[2]
		f, ok := byKey[key]
		if !ok {
			f = &hwmonFeature{kind: kind, index: index, key: key, scale: featureKinds[kind].scale}
			byKey[key] = f
		}
		f.attrs = append(f.attrs, e.Name())
	}

	feats := make([]hwmonFeature, 0, len(byKey))
	for _, f := range byKey {
		slices.SortFunc(f.attrs, compareAttrs)
		feats = append(feats, *f)
	}
	slices.SortFunc(feats, func(a, b hwmonFeature) int {
		if a.kind != b.kind {
			return a.kind - b.kind
		}
		return a.index - b.index
	})
	return dir, feats
}

// readLabel returns the content of <key>_label, or key itself.
func readLabel(dir, key string) string {
	b, err := os.ReadFile(filepath.Join(dir, key+"_label"))
	if err != nil {
		return key
	}
	if label := strings.TrimSpace(string(b)); label != "" {
		return label
	}
	return key
}

func readNumber(path string) (float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, ErrUnreadable)
	}
	return v, nil
}

// attrSuffix returns "input" for "temp1_input" and "" for "pwm1".
func attrSuffix(attr string) string {
	if m := attrPattern.FindStringSubmatch(attr); m != nil {
		return m[3]
	}
	return ""
}

// isRaw reports whether attr holds an unscaled value: power1_average_interval
// and temp1_crit_alarm are, temp1_crit is not.
func isRaw(attr string) bool {
	suffix := attrSuffix(attr)
	return rawSuffixes[suffix[strings.LastIndex(suffix, "_")+1:]]
}

// compareAttrs puts the bare attribute and *_input first, the rest by name.
func compareAttrs(a, b string) int {
	ra, rb := attrRank(a), attrRank(b)
	if ra != rb {
		return ra - rb
	}
	return strings.Compare(a, b)
}

func attrRank(attr string) int {
	switch attrSuffix(attr) {
	case "":
		return 0
	case "input":
		return 1
	default:
		return 2
	}
}

// compareDeviceNames orders hwmon2 before hwmon10.
func compareDeviceNames(a, b string) int {
	na, errA := strconv.Atoi(strings.TrimPrefix(a, "hwmon"))
	nb, errB := strconv.Atoi(strings.TrimPrefix(b, "hwmon"))
	if errA == nil && errB == nil && na != nb {
		return na - nb
	}
	return strings.Compare(a, b)
}
