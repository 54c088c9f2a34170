package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InitialSkillLevel is recorded when a skill first appears on a profile.
const InitialSkillLevel = 25

// ProgressRecord is an append-only skill level sample. The latest sample
// per skill (by RecordedAt) is the current level.
type ProgressRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_progress_user_recorded,priority:1;column:user_id" json:"userId"`
	SkillName  string    `gorm:"not null;column:skill_name" json:"skillName"`
	Level      int       `gorm:"not null;column:level" json:"level"`
	RecordedAt time.Time `gorm:"not null;index:idx_progress_user_recorded,priority:2;column:recorded_at" json:"recordedAt"`
}

func (ProgressRecord) TableName() string { return "progress_records" }

func (p *ProgressRecord) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.RecordedAt.IsZero() {
		p.RecordedAt = time.Now().UTC()
	}
	return nil
}

type SkillLevel struct {
	SkillName string `json:"skillName"`
	Level     int    `json:"level"`
}

// LatestPerSkill keeps the first record seen for each skill. Records must be
// ordered newest first.
func LatestPerSkill(records []*ProgressRecord) []*ProgressRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]*ProgressRecord, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if _, ok := seen[r.SkillName]; ok {
			continue
		}
		seen[r.SkillName] = struct{}{}
		out = append(out, r)
	}
	return out
}

func AverageLevel(records []*ProgressRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range records {
		sum += r.Level
	}
	return float64(sum) / float64(len(records))
}
