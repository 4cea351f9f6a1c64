package models

// Skill levels are self-assessed and read as "out of 10" in prompts.
// Callers are trusted; no bound is enforced here.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type SkillCategory struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}
