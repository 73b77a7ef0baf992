package pedigree

import "strings"

// conditionSynonyms maps common shorthand and variant spellings onto one
// canonical key. Keys and values are already in canonical lower-case form.
var conditionSynonyms = map[string]string{
	"breast ca":       "breast cancer",
	"colon cancer":    "colorectal cancer",
	"colon ca":        "colorectal cancer",
	"crc":             "colorectal cancer",
	"gastric ca":      "gastric cancer",
	"stomach cancer":  "gastric cancer",
	"ovarian ca":      "ovarian cancer",
	"pancreas cancer": "pancreatic cancer",
	"pancreatic ca":   "pancreatic cancer",
	"prostate ca":     "prostate cancer",
	"lung ca":         "lung cancer",
	"dm":              "diabetes mellitus",
	"diabetes":        "diabetes mellitus",
	"htn":             "hypertension",
	"mi":              "myocardial infarction",
	"heart attack":    "myocardial infarction",
}

// CanonicalCondition reduces a condition name to its canonical key: lower
// case, collapsed whitespace, trailing period stripped, synonyms folded.
// The key drives color-coding and legend grouping; display text stays as
// written in the record.
func CanonicalCondition(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.Join(strings.Fields(key), " ")
	key = strings.TrimSuffix(key, ".")
	if canonical, ok := conditionSynonyms[key]; ok {
		return canonical
	}
	return key
}
