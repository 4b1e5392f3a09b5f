// Package seeds loads harbor fixtures from a YAML file into an empty
// database, mainly for development and demo environments.
package seeds

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"harbormaster/internal/domain/dock"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
	"harbormaster/internal/shared/logger"
)

type fixture struct {
	Docks []struct {
		Location string `yaml:"location"`
		Capacity int    `yaml:"capacity"`
		Notes    string `yaml:"notes"`
	} `yaml:"docks"`
	Haulers []struct {
		Name     string `yaml:"name"`
		Capacity int    `yaml:"capacity"`
	} `yaml:"haulers"`
	Ships []struct {
		Name         string `yaml:"name"`
		Type         string `yaml:"type"`
		DockLocation string `yaml:"dock_location"`
		HaulerName   string `yaml:"hauler_name"`
	} `yaml:"ships"`
}

// HarborSeeder creates fixture docks, haulers, and ships.
type HarborSeeder struct {
	docks   dock.Repository
	haulers hauler.Repository
	ships   ship.Repository
	logger  logger.Interface
}

// NewHarborSeeder creates a HarborSeeder.
func NewHarborSeeder(docks dock.Repository, haulers hauler.Repository, ships ship.Repository) *HarborSeeder {
	return &HarborSeeder{
		docks:   docks,
		haulers: haulers,
		ships:   ships,
		logger:  logger.NewLogger().With("component", "seeder"),
	}
}

// Seed loads the fixture file and creates its entries. Docks are keyed by
// location and haulers by name so ships can reference them; seeding stops
// at the first capacity overflow since the fixture itself is then wrong.
func (s *HarborSeeder) Seed(ctx context.Context, fixturePath string) error {
	data, err := os.ReadFile(fixturePath)
	if err != nil {
		return fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return fmt.Errorf("failed to parse fixture file: %w", err)
	}

	dockByLocation := make(map[string]*dock.Dock, len(fx.Docks))
	for _, entry := range fx.Docks {
		d, err := dock.NewDock(entry.Location, entry.Capacity, entry.Notes)
		if err != nil {
			return fmt.Errorf("invalid dock fixture %q: %w", entry.Location, err)
		}
		if err := s.docks.Create(ctx, d); err != nil {
			return fmt.Errorf("failed to seed dock %q: %w", entry.Location, err)
		}
		dockByLocation[entry.Location] = d
	}

	haulerByName := make(map[string]*hauler.Hauler, len(fx.Haulers))
	for _, entry := range fx.Haulers {
		h, err := hauler.NewHauler(entry.Name, entry.Capacity)
		if err != nil {
			return fmt.Errorf("invalid hauler fixture %q: %w", entry.Name, err)
		}
		if err := s.haulers.Create(ctx, h); err != nil {
			return fmt.Errorf("failed to seed hauler %q: %w", entry.Name, err)
		}
		haulerByName[entry.Name] = h
	}

	dockLoad := make(map[uint]int)
	haulerLoad := make(map[uint]int)

	for _, entry := range fx.Ships {
		vessel, err := ship.NewShip(entry.Name, entry.Type, nil)
		if err != nil {
			return fmt.Errorf("invalid ship fixture %q: %w", entry.Name, err)
		}

		if entry.DockLocation != "" {
			d, ok := dockByLocation[entry.DockLocation]
			if !ok {
				return fmt.Errorf("ship fixture %q references unknown dock %q", entry.Name, entry.DockLocation)
			}
			if dockLoad[d.ID()] >= d.Capacity() {
				return fmt.Errorf("ship fixture %q overflows dock %q", entry.Name, entry.DockLocation)
			}
			if err := vessel.AssignToDock(d.ID()); err != nil {
				return fmt.Errorf("failed to assign ship fixture %q: %w", entry.Name, err)
			}
			dockLoad[d.ID()]++
		}

		if entry.HaulerName != "" {
			h, ok := haulerByName[entry.HaulerName]
			if !ok {
				return fmt.Errorf("ship fixture %q references unknown hauler %q", entry.Name, entry.HaulerName)
			}
			if haulerLoad[h.ID()] >= h.Capacity() {
				return fmt.Errorf("ship fixture %q overflows hauler %q", entry.Name, entry.HaulerName)
			}
			if err := vessel.AssignToHauler(h.ID()); err != nil {
				return fmt.Errorf("failed to assign ship fixture %q: %w", entry.Name, err)
			}
			haulerLoad[h.ID()]++
		}

		if err := s.ships.Create(ctx, vessel); err != nil {
			return fmt.Errorf("failed to seed ship %q: %w", entry.Name, err)
		}
	}

	s.logger.Infow("harbor fixtures loaded",
		"docks", len(fx.Docks),
		"haulers", len(fx.Haulers),
		"ships", len(fx.Ships),
	)
	return nil
}
