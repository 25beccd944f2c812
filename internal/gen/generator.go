package gen

import (
	"blockgen/internal/api/models"
	"blockgen/internal/blocks"
	"blockgen/internal/gen/names"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// EmitFunc produces code for one block kind.
type EmitFunc func(b *models.Block, ctx *Context) (Result, error)

// Registry maps block kinds to emitters.
type Registry struct {
	mu       sync.RWMutex
	emitters map[string]EmitFunc
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		emitters: make(map[string]EmitFunc),
	}
}

// Register sets the emitter for a block kind, replacing any previous one.
func (r *Registry) Register(kind string, fn EmitFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emitters[kind] = fn
}

// RegisterDefinition binds an emitter to a custom block definition by its
// stable name.
func (r *Registry) RegisterDefinition(def blocks.Definition, fn EmitFunc) {
	r.Register(def.Name, fn)
}

// Get returns the emitter for a block kind
func (r *Registry) Get(kind string) (EmitFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.emitters[kind]
	return fn, ok
}

// Kinds returns the number of registered kinds.
func (r *Registry) Kinds() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.emitters)
}

// Clone copies the registry so callers can extend it without touching the
// original.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := NewRegistry()
	for k, fn := range r.emitters {
		out.emitters[k] = fn
	}
	return out
}

// DefaultRegistry holds every built-in block kind.
var DefaultRegistry = NewRegistry()

func init() {
	registerLogic(DefaultRegistry)
	registerLoops(DefaultRegistry)
	registerMath(DefaultRegistry)
	registerLists(DefaultRegistry)
	registerText(DefaultRegistry)
	registerProcedures(DefaultRegistry)
	registerVariables(DefaultRegistry)
	registerColour(DefaultRegistry)
	registerCustom(DefaultRegistry)
}

// Generator turns workspaces into JavaScript. It keeps no state between
// passes and is safe for concurrent use.
type Generator struct {
	registry      *Registry
	logger        zerolog.Logger
	reserved      []string
	indent        string
	loopTrap      string
	strictHelpers bool
}

type Option func(*Generator)

func WithRegistry(r *Registry) Option {
	return func(g *Generator) {
		g.registry = r
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithReservedWords adds words generated names must avoid.
func WithReservedWords(words ...string) Option {
	return func(g *Generator) {
		g.reserved = append(g.reserved, words...)
	}
}

func WithIndent(indent string) Option {
	return func(g *Generator) {
		g.indent = indent
	}
}

// WithLoopTrap inserts trap at the top of every loop body, e.g. a counter
// that throws after too many iterations. %1 is replaced with the quoted
// block id.
func WithLoopTrap(trap string) Option {
	return func(g *Generator) {
		g.loopTrap = trap
	}
}

// WithStrictHelpers fails a pass that provides one helper name with two
// different bodies.
func WithStrictHelpers() Option {
	return func(g *Generator) {
		g.strictHelpers = true
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		registry: DefaultRegistry,
		logger:   zerolog.Nop(),
		indent:   "  ",
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Init starts a pass over ws: a fresh name registry with every used
// variable declared up front.
func (g *Generator) Init(ws *models.Workspace) (*Context, error) {
	ctx := newContext(g, ws)

	var declared []string
	for _, name := range ws.AllDeveloperVariables() {
		declared = append(declared, ctx.names.GetName(name, names.DeveloperVariable))
	}
	for _, v := range ws.AllUsedVariables() {
		key := v.ID
		if key == "" {
			key = v.Name
		}
		declared = append(declared, ctx.names.GetName(key, names.Variable))
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to declare variables: %w", err)
	}
	if len(declared) > 0 {
		ctx.Define("variables", "var "+strings.Join(declared, ", ")+";")
	}
	return ctx, nil
}

var (
	leadingBlank  = regexp.MustCompile(`^\s+\n`)
	trailingBlank = regexp.MustCompile(`\n\s+$`)
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
)

// Generate runs a full pass over ws. On error no code is returned.
func (g *Generator) Generate(ws *models.Workspace) (string, error) {
	start := time.Now()
	ctx, err := g.Init(ws)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, b := range ws.TopBlocks() {
		res, err := ctx.BlockToCode(b, false)
		if err != nil {
			g.logger.Debug().Err(err).Str("block", b.ID).Msg("generation failed")
			return "", err
		}
		line := res.Code
		if line == "" {
			continue
		}
		if res.IsValue() {
			line = ScrubNakedValue(line)
		}
		lines = append(lines, line)
	}

	helpers := ctx.defs.Len()
	code := ctx.Finish(strings.Join(lines, "\n"))
	code = leadingBlank.ReplaceAllString(code, "")
	code = trailingBlank.ReplaceAllString(code, "\n")
	code = trailingSpace.ReplaceAllString(code, "\n")

	g.logger.Debug().
		Int("topBlocks", len(ws.TopBlocks())).
		Int("definitions", helpers).
		Dur("took", time.Since(start)).
		Msg("workspace generated")
	return code, nil
}
