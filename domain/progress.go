package domain

import "time"

// SkillNames is the fixed training skill set, in display order.
var SkillNames = []string{
	"Võitlus",
	"Kogumine",
	"Meisterlikkus",
	"Maagia",
}

const DefaultSkillLevel = 1

type Progress struct {
	Skills       map[string]int `json:"skills"`
	Gold         int            `json:"gold"`
	LastTraining *time.Time     `json:"lastTraining"`
}

func DefaultProgress() Progress {
	skills := make(map[string]int, len(SkillNames))
	for _, name := range SkillNames {
		skills[name] = DefaultSkillLevel
	}
	return Progress{Skills: skills}
}

// CloneProgress делает глубокую копию, чтобы сессия и хранилище не делили карту
func CloneProgress(p Progress) Progress {
	clone := Progress{Gold: p.Gold}
	clone.Skills = make(map[string]int, len(p.Skills))
	for name, level := range p.Skills {
		clone.Skills[name] = level
	}
	if p.LastTraining != nil {
		t := *p.LastTraining
		clone.LastTraining = &t
	}
	return clone
}

// NormalizeProgress merges the supplied progress onto the full default skill
// set: missing skills get the default level, unknown skill names are dropped.
func NormalizeProgress(p Progress) Progress {
	normalized := DefaultProgress()
	normalized.Gold = p.Gold
	for _, name := range SkillNames {
		if level, ok := p.Skills[name]; ok {
			normalized.Skills[name] = level
		}
	}
	if p.LastTraining != nil {
		t := *p.LastTraining
		normalized.LastTraining = &t
	}
	return normalized
}
