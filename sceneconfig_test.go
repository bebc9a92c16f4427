package stagekit

import "testing"

func TestParseSceneConfig(t *testing.T) {
	doc := []byte(`
background:
  name: backdrop
  width: 800
  height: 600
entities:
  - name: player
    x: 100
    y: 200
    width: 32
    height: 32
    interactive: true
    checkCollisions: true
    gravity: 900
    tags: [hero, controllable]
    children:
      - name: shadow
        x: 0
        y: 4
        radius: 10
`)

	cfg, err := ParseSceneConfig(doc)
	if err != nil {
		t.Fatalf("ParseSceneConfig error: %v", err)
	}
	if cfg.Background == nil || cfg.Background.Name != "backdrop" {
		t.Fatalf("background = %+v", cfg.Background)
	}
	if len(cfg.Entities) != 1 {
		t.Fatalf("len(Entities) = %d, want 1", len(cfg.Entities))
	}
	player := cfg.Entities[0]
	if player.Name != "player" || player.X != 100 || player.Y != 200 {
		t.Errorf("player = %+v", player)
	}
	if player.Gravity == nil || *player.Gravity != 900 {
		t.Errorf("player.Gravity = %v, want 900", player.Gravity)
	}
	if len(player.Children) != 1 || player.Children[0].Name != "shadow" {
		t.Errorf("player.Children = %+v", player.Children)
	}
}

func TestParseSceneConfigInvalidYAML(t *testing.T) {
	_, err := ParseSceneConfig([]byte("entities: [this is not: valid: yaml"))
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestSceneConfigBuild(t *testing.T) {
	cfg := &SceneConfig{
		Background: &EntityConfig{Name: "backdrop", Width: 800, Height: 600},
		Entities: []EntityConfig{
			{
				Name:            "player",
				X:               10,
				Y:               20,
				Width:           32,
				Height:          32,
				Interactive:     true,
				CheckCollisions: true,
				Tags:            []string{"hero"},
				Children: []EntityConfig{
					{Name: "shadow", Y: 4, Radius: 10},
				},
			},
			{Name: "floor", Static: true, Width: 800, Height: 40},
		},
	}

	scene := NewScene()
	named := cfg.Build(scene)

	player, ok := named["player"]
	if !ok {
		t.Fatal("expected player in named map")
	}
	if player.X != 10 || player.Y != 20 {
		t.Errorf("player position = (%f, %f)", player.X, player.Y)
	}
	if !player.Interactive || !player.CheckCollisions {
		t.Error("player flags not applied")
	}
	if !player.HasTag("hero") {
		t.Error("expected player to carry the hero tag")
	}

	shadow, ok := named["shadow"]
	if !ok {
		t.Fatal("expected shadow in named map")
	}
	if shadow.Parent != player {
		t.Error("expected shadow to be a child of player")
	}

	floor, ok := named["floor"]
	if !ok {
		t.Fatal("expected floor in named map")
	}
	if !floor.Static {
		t.Error("expected floor to be static")
	}

	if scene.background == nil || scene.background.Name != "backdrop" {
		t.Errorf("scene.background = %+v", scene.background)
	}
}

func TestSceneConfigBuildOptionalScaleAndAnchor(t *testing.T) {
	cfg := &SceneConfig{
		Entities: []EntityConfig{
			{Name: "default", Width: 10, Height: 10},
			{Name: "scaled", Width: 10, Height: 10, Scale: 2, AnchorX: 0.5, AnchorY: 0.5},
		},
	}

	scene := NewScene()
	named := cfg.Build(scene)

	if named["default"].ScaleX != 1 || named["default"].ScaleY != 1 {
		t.Errorf("default entity scale = (%f, %f), want (1, 1)", named["default"].ScaleX, named["default"].ScaleY)
	}
	if named["scaled"].ScaleX != 2 || named["scaled"].ScaleY != 2 {
		t.Errorf("scaled entity scale = (%f, %f), want (2, 2)", named["scaled"].ScaleX, named["scaled"].ScaleY)
	}
	if named["scaled"].AnchorX != 0.5 || named["scaled"].AnchorY != 0.5 {
		t.Errorf("scaled entity anchor = (%f, %f), want (0.5, 0.5)", named["scaled"].AnchorX, named["scaled"].AnchorY)
	}
}
