package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a tuning file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// File is the on-disk layout of a tuning file. Missing sections and keys
// keep their current values.
type File struct {
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Locomotion LocomotionConfig `yaml:"locomotion" toml:"locomotion"`
	Character  CharacterConfig  `yaml:"character" toml:"character"`
	Collision  CollisionConfig  `yaml:"collision" toml:"collision"`
	Animation  AnimationConfig  `yaml:"animation" toml:"animation"`
	Sim        SimConfig        `yaml:"sim" toml:"sim"`
	Input      InputConfig      `yaml:"input" toml:"input"`
}

// Snapshot returns the current tuning as a File.
func Snapshot() File {
	return File{
		Physics:    Physics,
		Locomotion: Locomotion,
		Character:  Character,
		Collision:  Collision,
		Animation:  Animation,
		Sim:        Sim,
		Input:      Input,
	}
}

// Apply replaces the global tuning with f.
func Apply(f File) {
	Physics = f.Physics
	Locomotion = f.Locomotion
	Character = f.Character
	Collision = f.Collision
	Animation = f.Animation
	Sim = f.Sim
	Input = f.Input
}

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
}

// Decode overlays an encoded tuning file onto the current globals. On error
// the globals are left untouched.
func Decode(data []byte, format Format) error {
	f := Snapshot()
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &f); err != nil {
			return fmt.Errorf("decode toml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}
	Apply(f)
	return nil
}

// DecodeValid is Decode followed by Validate. Tuning that decodes but fails
// validation is rolled back, leaving the previous values in place.
func DecodeValid(data []byte, format Format) error {
	previous := Snapshot()
	if err := Decode(data, format); err != nil {
		return err
	}
	if err := Validate(); err != nil {
		Apply(previous)
		return err
	}
	return nil
}

// Encode serializes the current tuning.
func Encode(format Format) ([]byte, error) {
	f := Snapshot()
	switch format {
	case FormatYAML:
		return yaml.Marshal(&f)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported config format %q", format)
}

// LoadFile overlays a YAML or TOML tuning file onto the current globals.
func LoadFile(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := Decode(data, format); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
