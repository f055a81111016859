package service

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/pkg/entity"
)

// SeedHabit is one catalog entry of the seed file
type SeedHabit struct {
	Name        string `yaml:"name" validate:"required,min=3,max=100,single_line"`
	Description string `yaml:"description" validate:"max=500,single_line"`
	Category    string `yaml:"category" validate:"required,max=50,single_line"`
	Difficulty  string `yaml:"difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
	Frequency   string `yaml:"frequency" validate:"required,oneof=DAILY WEEKLY"`
}

type seedFile struct {
	Habits []SeedHabit `yaml:"habits"`
}

func (s SeedHabit) Habit() entity.Habit {
	d := entity.Difficulty(s.Difficulty)
	return entity.Habit{
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		Difficulty:  d,
		Frequency:   entity.Frequency(s.Frequency),
		XP:          d.XP(),
	}
}

// ParseSeed decodes a YAML catalog. Unknown keys are rejected.
func ParseSeed(r io.Reader) ([]SeedHabit, error) {
	var f seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty seed file", errorvalues.ErrInvalidSeed)
		}
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrInvalidSeed, err.Error())
	}
	if len(f.Habits) == 0 {
		return nil, fmt.Errorf("%w: no habits listed", errorvalues.ErrInvalidSeed)
	}
	return f.Habits, nil
}
