package services

import (
	"github.com/3k2024/bodega-simple/internal/models"
	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// BySpecialty counts items per specialty. Every enum value appears in the
// result, zero or not, so charts keep a stable axis.
func (s *StatsService) BySpecialty() (map[string]int64, error) {
	type bucket struct {
		Specialty *string
		Count     int64
	}

	var buckets []bucket
	err := s.db.Model(&models.Item{}).
		Select("specialty, count(*) as count").
		Group("specialty").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(models.AllSpecialties()))
	for _, sp := range models.AllSpecialties() {
		counts[string(sp)] = 0
	}
	for _, b := range buckets {
		if b.Specialty == nil {
			continue
		}
		if _, ok := counts[*b.Specialty]; ok {
			counts[*b.Specialty] = b.Count
		}
	}

	return counts, nil
}
