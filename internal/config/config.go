// Package config is the YAML-backed settings surface for the core's
// tunables: tick cadences, damage variation, threat decay, and
// regeneration rates.
//
// Grounded on the teacher's internal/config/gameserver.go: a single
// struct with yaml tags, a Default... constructor for sensible
// out-of-the-box values, and a Load... loader that falls back to
// defaults when the file is absent.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Core holds every tunable the engine packages read at startup (spec
// §4.5 damage variation/threat decay, §4.8 regeneration rates, §4.9
// cadences). Data directory paths are free-text and not parsed here
// (spec §1: content loading is out of scope for this core).
type Core struct {
	// Cadences (spec §4.9)
	CombatRoundInterval time.Duration `yaml:"combat_round_interval"`
	RegenInterval       time.Duration `yaml:"regen_interval"`
	ResetInterval       time.Duration `yaml:"reset_interval"`

	// Combat (spec §4.5)
	DamageVariationPercent float64 `yaml:"damage_variation_percent"`
	ThreatDecayFactor      float64 `yaml:"threat_decay_factor"`
	ThreatGraceWindow      float64 `yaml:"threat_grace_window"`
	InitialThreatOnAttack  int64   `yaml:"initial_threat_on_attack"`

	// Regeneration (spec §4.8)
	RegenInCombatRate    float64 `yaml:"regen_in_combat_rate"`
	RegenOutOfCombatRate float64 `yaml:"regen_out_of_combat_rate"`
	RegenRestRate        float64 `yaml:"regen_rest_rate"`

	// Content directories, consumed by the external loader (spec §1)
	DataDir     string `yaml:"data_dir"`
	ArchetypeDir string `yaml:"archetype_dir"`
}

// DefaultCore returns Core with the defaults named throughout spec
// §4.5, §4.8, §4.9.
func DefaultCore() Core {
	return Core{
		CombatRoundInterval: 3 * time.Second,
		RegenInterval:       30 * time.Second,
		ResetInterval:       5 * time.Minute,

		DamageVariationPercent: 20,
		ThreatDecayFactor:      0.67,
		ThreatGraceWindow:      1.10,
		InitialThreatOnAttack:  100,

		RegenInCombatRate:    0.01,
		RegenOutOfCombatRate: 0.10,
		RegenRestRate:        0.33,

		DataDir:      "data/",
		ArchetypeDir: "data/archetypes/",
	}
}

// LoadCore loads core config from a YAML file, merging over
// DefaultCore. A missing file is not an error — it just means every
// setting keeps its default.
func LoadCore(path string) (Core, error) {
	cfg := DefaultCore()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
