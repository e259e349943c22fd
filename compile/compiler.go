package compile

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/gdl-engine/component"
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/gdl"
	"github.com/lixenwraith/gdl-engine/registry"
)

// Component defaults applied when a property is absent
const (
	DefaultSpriteSize  = 32.0
	DefaultSpriteColor = "#ffffff"
	DefaultScale       = 1.0
)

// Compiler walks GDL parse trees into immutable game definitions.
// Compiled documents are cached by source hash; the host editor
// recompiles on every keystroke and most of those are replays.
type Compiler struct {
	log *zap.Logger

	mu    sync.Mutex
	cache map[uint64]*GameDefinition
}

// New creates a compiler. A nil logger disables warning output.
func New(log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{
		log:   log,
		cache: make(map[uint64]*GameDefinition),
	}
}

// Compile parses and compiles GDL source. Parse errors fail the whole
// compile; no partial definition set is ever returned. Soft issues
// (unknown keywords, unknown behavior types, bad enum values) warn and
// degrade instead.
func (c *Compiler) Compile(source []byte) (*GameDefinition, error) {
	key := xxhash.Sum64(source)

	c.mu.Lock()
	if def, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return def, nil
	}
	c.mu.Unlock()

	doc, err := gdl.Parse(source)
	if err != nil {
		return nil, err
	}
	def := c.compileDocument(doc)

	c.mu.Lock()
	c.cache[key] = def
	c.mu.Unlock()
	return def, nil
}

// CompileDocument compiles an already-parsed document, bypassing the cache
func (c *Compiler) CompileDocument(doc *gdl.Document) *GameDefinition {
	return c.compileDocument(doc)
}

func (c *Compiler) compileDocument(doc *gdl.Document) *GameDefinition {
	def := &GameDefinition{
		Presets: make(map[string]BehaviorSpec),
	}

	// Presets first so entity blocks can reference them regardless of
	// declaration order
	for _, b := range doc.Blocks {
		if b.Keyword == "behavior" {
			c.compilePreset(b, def)
		}
	}

	for _, b := range doc.Blocks {
		switch b.Keyword {
		case "game":
			c.compileGame(b, def)
		case "scene":
			c.compileScene(b, def)
		case "entity":
			if ent := c.compileEntity(b, def); ent != nil {
				def.Entities = append(def.Entities, *ent)
			}
		case "behavior":
			// handled above
		default:
			// Forward-compatible GDL keeps compiling
			c.log.Warn("unknown top-level block keyword, skipping",
				zap.String("keyword", b.Keyword),
				zap.Int("line", b.Line))
		}
	}
	return def
}

func (c *Compiler) compileGame(b *gdl.Block, def *GameDefinition) {
	def.Title = b.Str("title", b.Name)
	def.Width = b.Float("width", 800)
	def.Height = b.Float("height", 600)
	def.StartScene = b.Str("startScene", "")
}

func (c *Compiler) compileScene(b *gdl.Block, def *GameDefinition) {
	scene := SceneDefinition{
		Name:       b.Name,
		Background: b.Str("background", ""),
	}
	if g, ok := b.Floats("gravity"); ok && len(g) == 2 {
		scene.Gravity = core.Vec2{X: g[0], Y: g[1]}
	}

	if v, ok := b.Prop("entities"); ok && v.Kind == gdl.KindArray {
		for _, el := range v.Arr {
			if el.Kind == gdl.KindString {
				scene.Entities = append(scene.Entities, el.Str)
			}
		}
	}

	// Inline entity definitions are hoisted into the global set and
	// referenced by name, keeping scene load a pure name lookup
	for _, child := range b.Blocks {
		switch child.Keyword {
		case "entity":
			if ent := c.compileEntity(child, def); ent != nil {
				def.Entities = append(def.Entities, *ent)
				scene.Entities = append(scene.Entities, ent.Name)
			}
		default:
			c.log.Warn("unknown scene sub-block, skipping",
				zap.String("scene", b.Name),
				zap.String("keyword", child.Keyword),
				zap.Int("line", child.Line))
		}
	}

	def.Scenes = append(def.Scenes, scene)
	if def.StartScene == "" {
		def.StartScene = scene.Name
	}
}

func (c *Compiler) compilePreset(b *gdl.Block, def *GameDefinition) {
	if b.Name == "" {
		c.log.Warn("top-level behavior block without a name, skipping",
			zap.Int("line", b.Line))
		return
	}
	spec := BehaviorSpec{
		Type:  b.Str("type", b.Name),
		Props: propsOf(b),
	}
	def.Presets[b.Name] = spec
}

func (c *Compiler) compileEntity(b *gdl.Block, def *GameDefinition) *EntityDefinition {
	if b.Name == "" {
		c.log.Warn("entity block without a name, skipping", zap.Int("line", b.Line))
		return nil
	}

	ent := &EntityDefinition{
		Name: b.Name,
		Type: b.Str("type", b.Name),
	}

	for _, child := range b.Blocks {
		switch child.Keyword {
		case "transform":
			ent.Transform = c.compileTransform(child)
		case "sprite":
			ent.Sprite = c.compileSprite(child)
		case "physics":
			ent.Physics = c.compilePhysics(child)
		case "collider":
			ent.Collider = c.compileCollider(b.Name, child)
		case "behavior":
			if spec, ok := c.compileBehavior(b.Name, child, def); ok {
				ent.Behaviors = append(ent.Behaviors, spec)
			}
		case "state":
			ent.State = propsOf(child)
		default:
			c.log.Warn("unknown entity sub-block, skipping",
				zap.String("entity", b.Name),
				zap.String("keyword", child.Keyword),
				zap.Int("line", child.Line))
		}
	}

	// Colliders default to the sprite footprint when a sprite exists
	if ent.Collider != nil && ent.Collider.Shape == component.ShapeRectangle &&
		ent.Collider.Width == 0 && ent.Sprite != nil {
		ent.Collider.Width = ent.Sprite.Width
		ent.Collider.Height = ent.Sprite.Height
	}

	return ent
}

// compileTransform resolves the array-form/field-form precedence:
// `position: [x, y]` seeds the position, then explicit `x:` / `y:`
// fields win when both forms are present.
func (c *Compiler) compileTransform(b *gdl.Block) *component.TransformComponent {
	t := &component.TransformComponent{
		ScaleX: DefaultScale,
		ScaleY: DefaultScale,
	}
	if pos, ok := b.Floats("position"); ok && len(pos) == 2 {
		t.X, t.Y = pos[0], pos[1]
	}
	t.X = b.Float("x", t.X)
	t.Y = b.Float("y", t.Y)
	t.Rotation = b.Float("rotation", 0)
	if s, ok := b.Prop("scale"); ok && s.Kind == gdl.KindNumber {
		t.ScaleX, t.ScaleY = s.Num, s.Num
	}
	t.ScaleX = b.Float("scaleX", t.ScaleX)
	t.ScaleY = b.Float("scaleY", t.ScaleY)
	return t
}

func (c *Compiler) compileSprite(b *gdl.Block) *component.SpriteComponent {
	return &component.SpriteComponent{
		Texture:   b.Str("texture", ""),
		Width:     b.Float("width", DefaultSpriteSize),
		Height:    b.Float("height", DefaultSpriteSize),
		Color:     b.Str("color", DefaultSpriteColor),
		Animation: b.Str("animation", ""),
	}
}

func (c *Compiler) compilePhysics(b *gdl.Block) *component.PhysicsComponent {
	return &component.PhysicsComponent{
		VelX:               b.Float("vx", 0),
		VelY:               b.Float("vy", 0),
		MaxSpeed:           b.Float("maxSpeed", 0),
		Drag:               b.Float("drag", 0),
		GravityScale:       b.Float("gravityScale", defaultGravityScale(b)),
		Static:             b.Flag("static", false),
		CollideWorldBounds: b.Flag("collideWorldBounds", false),
	}
}

// defaultGravityScale: gravity applies unless the body is static
func defaultGravityScale(b *gdl.Block) float64 {
	if b.Flag("static", false) {
		return 0
	}
	return 1
}

func (c *Compiler) compileCollider(entity string, b *gdl.Block) *component.ColliderComponent {
	shape := b.Str("shape", string(component.ShapeRectangle))
	if !component.ValidShape(shape) {
		// Level data is hand-authored; degrade instead of erroring
		c.log.Warn("unknown collider shape, falling back to rectangle",
			zap.String("entity", entity),
			zap.String("shape", shape),
			zap.Int("line", b.Line))
		shape = string(component.ShapeRectangle)
	}
	return &component.ColliderComponent{
		Shape:     component.ColliderShape(shape),
		Width:     b.Float("width", 0),
		Height:    b.Float("height", 0),
		Radius:    b.Float("radius", 0),
		IsTrigger: b.Flag("isTrigger", b.Flag("isSensor", false)),
	}
}

// compileBehavior builds one behavior spec, merging preset properties
// under the entity's own overrides when `use` names a preset
func (c *Compiler) compileBehavior(entity string, b *gdl.Block, def *GameDefinition) (BehaviorSpec, bool) {
	props := propsOf(b)
	typ := b.Str("type", b.Name)

	if use := b.Str("use", ""); use != "" {
		preset, ok := def.Presets[use]
		if !ok {
			c.log.Warn("behavior preset not found",
				zap.String("entity", entity),
				zap.String("use", use),
				zap.Int("line", b.Line))
		} else {
			merged := make(map[string]any, len(preset.Props)+len(props))
			for k, v := range preset.Props {
				merged[k] = v
			}
			for k, v := range props {
				merged[k] = v
			}
			props = merged
			if typ == "" || typ == b.Name {
				typ = preset.Type
			}
		}
		delete(props, "use")
	}

	if typ == "" {
		c.log.Warn("behavior block without a type, skipping",
			zap.String("entity", entity),
			zap.Int("line", b.Line))
		return BehaviorSpec{}, false
	}
	if !registry.HasBehavior(typ) {
		// The entity is still created, just without this behavior, so a
		// typo in one block does not break the whole scene
		c.log.Warn("unknown behavior type, entity keeps compiling without it",
			zap.String("entity", entity),
			zap.String("type", typ),
			zap.Int("line", b.Line))
		return BehaviorSpec{}, false
	}
	delete(props, "type")
	return BehaviorSpec{Type: typ, Props: props}, true
}

// propsOf flattens a block's properties into an untyped map
func propsOf(b *gdl.Block) map[string]any {
	out := make(map[string]any, len(b.Props))
	for _, p := range b.Props {
		out[p.Key] = p.Val.Plain()
	}
	return out
}
