package character

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"kernelquest/internal/collision"
	"kernelquest/internal/interaction"
)

// NPCConfig represents the structure of the npcs.yaml file
type NPCConfig struct {
	NPCs map[string]*NPCData `yaml:"npcs"`
}

// NPCData represents an NPC definition from the YAML file
type NPCData struct {
	Name        string       `yaml:"name"`
	Sprite      string       `yaml:"sprite"`
	SpriteScale float64      `yaml:"sprite_scale"`
	Stage       int          `yaml:"stage"`
	X           float64      `yaml:"x"`
	Y           float64      `yaml:"y"`
	Dialogue    *NPCDialogue `yaml:"dialogue"`
}

// NPCDialogue holds the pool of ambient lines an NPC picks from.
type NPCDialogue struct {
	Lines []string `yaml:"lines"`
}

// Global NPC configuration
var NPCConfigInstance *NPCConfig

// LoadNPCConfig loads NPC configuration from a YAML file
func LoadNPCConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read NPC config file: %w", err)
	}

	var config NPCConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse NPC config: %w", err)
	}
	for key, npc := range config.NPCs {
		if npc == nil {
			return fmt.Errorf("NPC %q has no definition", key)
		}
		if npc.Dialogue == nil || len(npc.Dialogue.Lines) == 0 {
			return fmt.Errorf("NPC %q has no dialogue lines", key)
		}
	}

	NPCConfigInstance = &config
	return nil
}

// MustLoadNPCConfig loads NPC configuration and panics on error
func MustLoadNPCConfig(filename string) {
	if err := LoadNPCConfig(filename); err != nil {
		panic(fmt.Sprintf("Failed to load NPC config: %v", err))
	}
}

// GetNPCData returns NPC data by key
func (nc *NPCConfig) GetNPCData(key string) (*NPCData, bool) {
	data, exists := nc.NPCs[key]
	return data, exists
}

// CreateNPCFromConfig creates an NPC instance from configuration data
func CreateNPCFromConfig(key string) (*interaction.NPC, error) {
	if NPCConfigInstance == nil {
		return nil, fmt.Errorf("NPC config not loaded")
	}

	data, exists := NPCConfigInstance.GetNPCData(key)
	if !exists {
		return nil, fmt.Errorf("NPC data not found for key: %s", key)
	}

	npc := &interaction.NPC{
		Key:         key,
		Name:        data.Name,
		Pos:         collision.Point{X: data.X, Y: data.Y},
		Stage:       data.Stage,
		Sprite:      data.Sprite,
		SpriteScale: data.SpriteScale,
	}
	if data.Dialogue != nil {
		npc.Lines = append([]string(nil), data.Dialogue.Lines...)
	}
	return npc, nil
}

// CreateAllNPCs instantiates every configured NPC in key order.
func CreateAllNPCs() ([]*interaction.NPC, error) {
	if NPCConfigInstance == nil {
		return nil, fmt.Errorf("NPC config not loaded")
	}
	keys := make([]string, 0, len(NPCConfigInstance.NPCs))
	for key := range NPCConfigInstance.NPCs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	npcs := make([]*interaction.NPC, 0, len(keys))
	for _, key := range keys {
		npc, err := CreateNPCFromConfig(key)
		if err != nil {
			return nil, err
		}
		npcs = append(npcs, npc)
	}
	return npcs, nil
}
