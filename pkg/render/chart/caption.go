package chart

import (
	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/layout"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

// captionLines assembles the text block below one symbol, top to bottom:
// sex at birth, stillbirth tag, gestational age or age, karyotype, cycle
// dates, pregnancy label, diagnoses, notes, genetic test, name. Every entry
// is wrapped at the caption character limit and each wrapped line is
// width-truncated as a last resort.
func captionLines(in *pedigree.Individual, th styles.Theme) []string {
	var raw []string
	add := func(s string) {
		if s != "" {
			raw = append(raw, s)
		}
	}

	add(in.SexAtBirth)
	if in.Has(pedigree.StatusStillbirth) {
		add("SB")
	}

	gest, label := "", ""
	if p := in.Pregnancy; p != nil {
		gest, label = p.GestationalAge, p.Label
	}
	if gest != "" {
		add(gest)
	} else {
		add(in.Age)
	}
	if p := in.Pregnancy; p != nil {
		add(p.Karyotype)
		if p.LMP != "" {
			add("LMP " + p.LMP)
		}
		if p.EDD != "" {
			add("EDD " + p.EDD)
		}
	}
	if label == "" && isEctopic(in) {
		label = "ECT"
	}
	add(label)

	for _, dx := range in.Diagnoses {
		add(diagnosisLine(dx))
	}
	for _, n := range in.Notes {
		add(n)
	}
	add(in.GeneticTest)
	add(in.Name)

	var out []string
	for _, entry := range raw {
		for _, line := range styles.WrapText(entry, th.CaptionWrap) {
			out = append(out, styles.TruncateToWidth(line, th.CaptionFontSize, th.CaptionMaxWidth))
		}
	}
	return out
}

// diagnosisLine formats one diagnosis as "<age> <condition>" with an
// optional "(subtype, laterality)" qualifier.
func diagnosisLine(dx pedigree.Diagnosis) string {
	s := dx.Condition
	if dx.Age != "" {
		s = dx.Age + " " + dx.Condition
	}
	switch {
	case dx.Subtype != "" && dx.Laterality != "":
		s += " (" + dx.Subtype + ", " + dx.Laterality + ")"
	case dx.Subtype != "":
		s += " (" + dx.Subtype + ")"
	case dx.Laterality != "":
		s += " (" + dx.Laterality + ")"
	}
	return s
}

func isEctopic(in *pedigree.Individual) bool {
	if in.Has(pedigree.StatusEctopic) {
		return true
	}
	return in.Pregnancy != nil && in.Pregnancy.Type == pedigree.PregnancyECT
}

// buildCaptions renders every caption block up front and measures it, so the
// layout can keep neighboring blocks clear of each other.
func buildCaptions(rec *pedigree.Record, th styles.Theme) (map[string][]string, map[string]layout.Metrics) {
	lines := make(map[string][]string, len(rec.Individuals))
	metrics := make(map[string]layout.Metrics, len(rec.Individuals))
	for _, in := range rec.Individuals {
		ls := captionLines(in, th)
		if len(ls) == 0 {
			continue
		}
		lines[in.ID] = ls
		var maxW float64
		for _, l := range ls {
			if w := styles.TextWidth(l, th.CaptionFontSize); w > maxW {
				maxW = w
			}
		}
		metrics[in.ID] = layout.Metrics{Lines: len(ls), MaxWidth: maxW}
	}
	return lines, metrics
}
