package stagekit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EntityConfig is the declarative, YAML-serializable description of one
// entity and its subtree, generalized from code-first scene authoring
// into a data format a level editor or asset pipeline can emit.
type EntityConfig struct {
	Name    string  `yaml:"name"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	Width   float64 `yaml:"width,omitempty"`
	Height  float64 `yaml:"height,omitempty"`
	Radius  float64 `yaml:"radius,omitempty"`
	AnchorX float64 `yaml:"anchorX,omitempty"`
	AnchorY float64 `yaml:"anchorY,omitempty"`
	Scale   float64 `yaml:"scale,omitempty"`
	ZIndex  int     `yaml:"zIndex,omitempty"`

	Tags []string `yaml:"tags,omitempty"`

	Interactive     bool `yaml:"interactive,omitempty"`
	CheckCollisions bool `yaml:"checkCollisions,omitempty"`
	Static          bool `yaml:"static,omitempty"`

	Gravity    *float64 `yaml:"gravity,omitempty"`
	Friction   *float64 `yaml:"friction,omitempty"`
	Bounciness *float64 `yaml:"bounciness,omitempty"`

	Children []EntityConfig `yaml:"children,omitempty"`
}

// SceneConfig is the root of a declarative scene document: a flat list of
// top-level entity trees plus an optional background entity applied once
// on load.
type SceneConfig struct {
	Background *EntityConfig  `yaml:"background,omitempty"`
	Entities   []EntityConfig `yaml:"entities"`
}

// ParseSceneConfig decodes a YAML scene document, the format a level editor
// or asset pipeline would emit for declarative scene loading.
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("stagekit: parse scene config: %w", err)
	}
	return &cfg, nil
}

// Build materializes cfg into entities added to scene. Returns a map from
// each entity's Name to the constructed *Entity so callers can wire
// gameplay logic onto specific named entities after load.
func (cfg *SceneConfig) Build(scene *Scene) map[string]*Entity {
	named := make(map[string]*Entity)
	if cfg.Background != nil {
		bg := buildEntity(*cfg.Background, named)
		scene.SetBackground(bg)
	}
	for _, ec := range cfg.Entities {
		e := buildEntity(ec, named)
		scene.Add(e)
	}
	return named
}

func buildEntity(ec EntityConfig, named map[string]*Entity) *Entity {
	e := NewEntity(ec.Name)
	e.X, e.Y = ec.X, ec.Y
	e.Width, e.Height = ec.Width, ec.Height
	e.Radius = ec.Radius
	if ec.AnchorX != 0 || ec.AnchorY != 0 {
		e.SetAnchor(ec.AnchorX, ec.AnchorY)
	}
	if ec.Scale != 0 {
		e.SetScale(ec.Scale, ec.Scale)
	}
	e.ZIndex = ec.ZIndex
	for _, tag := range ec.Tags {
		e.AddTag(tag)
	}
	e.Interactive = ec.Interactive
	e.CheckCollisions = ec.CheckCollisions
	e.Static = ec.Static
	if ec.Gravity != nil {
		e.SetGravity(*ec.Gravity)
	}
	if ec.Friction != nil {
		e.SetFriction(*ec.Friction)
	}
	if ec.Bounciness != nil {
		e.SetBounciness(*ec.Bounciness)
	}
	e.sanitize()

	if ec.Name != "" {
		named[ec.Name] = e
	}
	for _, childCfg := range ec.Children {
		child := buildEntity(childCfg, named)
		e.AddChild(child)
	}
	return e
}
