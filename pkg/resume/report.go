package resume

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
)

// CSVHeader is the column layout of parsed_resumes.csv.
var CSVHeader = []string{"Name", "Email", "Phone", "Skills", "File"}

type CSVOptions struct {
	// IncludeErrors appends Status and Error columns.
	IncludeErrors bool
}

// WriteCSV writes one row per record after a header row.
func WriteCSV(w io.Writer, records []Record, opts CSVOptions) error {
	cw := csv.NewWriter(w)
	header := CSVHeader
	if opts.IncludeErrors {
		header = append(append([]string{}, CSVHeader...), "Status", "Error")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Name, r.Email, r.Phone, r.SkillsDisplay(), r.File}
		if opts.IncludeErrors {
			row = append(row, string(r.Status), r.Error)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.File, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SkillCount is how many records mention a skill.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// SkillFrequency counts skills across records, most frequent first.
// Equal counts keep the order in which the skills were first seen.
func SkillFrequency(records []Record) []SkillCount {
	idx := map[string]int{}
	out := []SkillCount{}
	for _, r := range records {
		for _, s := range r.Skills {
			i, ok := idx[s]
			if !ok {
				i = len(out)
				idx[s] = i
				out = append(out, SkillCount{Skill: s})
			}
			out[i].Count++
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Count > out[b].Count })
	return out
}

// TopSkill returns the most frequent skill; ok is false when no record has skills.
func TopSkill(records []Record) (skill string, ok bool) {
	freq := SkillFrequency(records)
	if len(freq) == 0 {
		return "", false
	}
	return freq[0].Skill, true
}

// Summary holds the aggregate figures shown next to a batch.
type Summary struct {
	Total       int          `json:"total"`
	Failed      int          `json:"failed"`
	TopSkill    string       `json:"topSkill"`
	Frequencies []SkillCount `json:"frequencies"`
	Failures    []Failure    `json:"failures"`
}

func Summarize(b Batch) Summary {
	freq := SkillFrequency(b.Records)
	s := Summary{
		Total:       len(b.Records),
		Failures:    b.Failures(),
		Frequencies: freq,
	}
	s.Failed = len(s.Failures)
	if len(freq) > 0 {
		s.TopSkill = freq[0].Skill
	}
	return s
}
