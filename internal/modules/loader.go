package modules

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/receivers/internal/config"
	"github.com/funvibe/receivers/internal/pipeline"
	"github.com/funvibe/receivers/internal/symbols"
	"github.com/funvibe/receivers/internal/typesystem"
	"github.com/funvibe/receivers/internal/utils"
)

type Loader struct {
	LoadedModules map[string]*Module // Cache of loaded modules by absolute path
	logger        *slog.Logger
}

type LoaderOption func(*Loader)

// WithLoaderLogger sets the logger used by the loader and its sessions.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		LoadedModules: make(map[string]*Module),
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads a declaration file, or every declaration file of a directory,
// into a fresh session.
func (l *Loader) Load(path string) (*Module, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if mod, ok := l.LoadedModules[absPath]; ok {
		return mod, nil
	}

	ctx := &loadContext{
		path: absPath,
		module: &Module{
			Name:    utils.ExtractModuleName(absPath),
			Session: symbols.NewSession(symbols.WithLogger(l.logger)),
		},
	}
	ctx = pipeline.New[*loadContext](
		pipeline.ProcessorFunc[*loadContext](collectFiles),
		pipeline.ProcessorFunc[*loadContext](parseFiles),
		pipeline.ProcessorFunc[*loadContext](declareClasses),
		pipeline.ProcessorFunc[*loadContext](verifySession),
	).Run(ctx)
	if len(ctx.errors) > 0 {
		return nil, errors.Join(ctx.errors...)
	}

	mod := ctx.module
	l.LoadedModules[absPath] = mod
	l.logger.Info("module loaded", "module", mod.Name, "files", len(mod.Files), "classes", len(mod.Session.Classes()))
	return mod, nil
}

// loadContext is threaded through the load stages.
type loadContext struct {
	path   string
	module *Module
	parsed []*File
	errors []error
}

func (ctx *loadContext) fail(err error) *loadContext {
	ctx.errors = append(ctx.errors, err)
	return ctx
}

func collectFiles(ctx *loadContext) *loadContext {
	info, err := os.Stat(ctx.path)
	if err != nil {
		return ctx.fail(fmt.Errorf("loading module %s: %w", ctx.path, err))
	}
	mod := ctx.module
	if !info.IsDir() {
		mod.Dir = utils.GetModuleDir(ctx.path)
		mod.Files = []string{ctx.path}
		return ctx
	}
	mod.Dir = ctx.path
	entries, err := os.ReadDir(ctx.path)
	if err != nil {
		return ctx.fail(fmt.Errorf("reading module dir %s: %w", ctx.path, err))
	}
	for _, e := range entries {
		if !e.IsDir() && config.HasDeclarationExt(e.Name()) {
			mod.Files = append(mod.Files, filepath.Join(ctx.path, e.Name()))
		}
	}
	sort.Strings(mod.Files)
	if len(mod.Files) == 0 {
		return ctx.fail(fmt.Errorf("no declaration files in %s", ctx.path))
	}
	return ctx
}

// parseFiles parses every file, reporting each broken one.
func parseFiles(ctx *loadContext) *loadContext {
	for _, f := range ctx.module.Files {
		data, err := os.ReadFile(f)
		if err != nil {
			ctx.fail(fmt.Errorf("reading %s: %w", f, err))
			continue
		}
		parsed, err := ParseFile(data, f)
		if err != nil {
			ctx.fail(err)
			continue
		}
		ctx.parsed = append(ctx.parsed, parsed)
	}
	return ctx
}

func declareClasses(ctx *loadContext) *loadContext {
	if len(ctx.errors) > 0 {
		return ctx
	}
	for i, f := range ctx.parsed {
		if err := Declare(ctx.module.Session, f, ctx.module.Files[i]); err != nil {
			return ctx.fail(err)
		}
	}
	return ctx
}

func verifySession(ctx *loadContext) *loadContext {
	if len(ctx.errors) > 0 {
		return ctx
	}
	if err := Verify(ctx.module.Session, ctx.module.Name); err != nil {
		return ctx.fail(err)
	}
	return ctx
}

// ParseFile parses declaration YAML from bytes.
// The path argument is used only for error messages.
func ParseFile(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, c := range f.Classes {
		if c.Name == "" {
			return nil, &DeclarationError{File: path, Msg: "class without a name"}
		}
	}
	return &f, nil
}

// Declare defines the classes of f in session.
func Declare(session *symbols.Session, f *File, path string) error {
	for _, decl := range f.Classes {
		class, err := buildClass(session, decl, path)
		if err != nil {
			return err
		}
		tag := session.Reserve(decl.Name)
		if existing, ok := session.Resolve(tag); ok {
			return &DeclarationError{File: path, Class: decl.Name, Msg: fmt.Sprintf("already declared as %s", existing.Kind)}
		}
		session.Define(tag, class)
	}
	return nil
}

// Verify checks that every referenced class was declared and that companions
// point at companion objects.
func Verify(session *symbols.Session, module string) error {
	if pending := session.Pending(); len(pending) > 0 {
		sort.Strings(pending)
		return &UnresolvedReferenceError{Module: module, Names: pending}
	}
	for _, class := range session.Classes() {
		if !class.HasCompanion() {
			continue
		}
		companion, _ := session.Resolve(class.Companion)
		if companion.Kind != symbols.CompanionObject {
			return &DeclarationError{File: module, Class: class.Name, Msg: fmt.Sprintf("companion %s is a %s", companion.Name, companion.Kind)}
		}
	}
	return nil
}

func buildClass(session *symbols.Session, decl ClassDecl, path string) (*symbols.ClassSymbol, error) {
	kind, err := parseClassKind(decl.Kind)
	if err != nil {
		return nil, &DeclarationError{File: path, Class: decl.Name, Msg: err.Error()}
	}
	class := &symbols.ClassSymbol{
		Name:           decl.Name,
		Kind:           kind,
		TypeParameters: decl.TypeParams,
		IsInner:        decl.Inner,
	}
	fail := func(err error) error {
		return &DeclarationError{File: path, Class: decl.Name, Msg: err.Error()}
	}
	for _, st := range decl.Supertypes {
		t, err := parseType(st, session, decl.TypeParams)
		if err != nil {
			return nil, fail(err)
		}
		class.Supertypes = append(class.Supertypes, t)
	}
	if decl.Companion != "" {
		class.Companion = session.Reserve(decl.Companion)
	}
	for _, name := range decl.Classifiers {
		class.Classifiers = append(class.Classifiers, session.Reserve(name))
	}
	owner := session.Reserve(decl.Name)
	for _, fd := range decl.Functions {
		f, err := buildCallable(session, fd, symbols.FunctionSymbolKind, owner, decl.TypeParams)
		if err != nil {
			return nil, fail(err)
		}
		class.Functions = append(class.Functions, f)
	}
	for _, pd := range decl.Properties {
		p, err := buildCallable(session, pd, symbols.PropertySymbolKind, owner, decl.TypeParams)
		if err != nil {
			return nil, fail(err)
		}
		class.Properties = append(class.Properties, p)
	}
	return class, nil
}

func buildCallable(session *symbols.Session, decl CallableDecl, kind symbols.SymbolKind, owner typesystem.LookupTag, typeParams []string) (*symbols.CallableSymbol, error) {
	if decl.Name == "" {
		return nil, fmt.Errorf("%s without a name", kind)
	}
	c := &symbols.CallableSymbol{Name: decl.Name, Kind: kind, IsStatic: decl.Static, Owner: owner}
	if decl.Receiver != "" {
		t, err := parseType(decl.Receiver, session, typeParams)
		if err != nil {
			return nil, err
		}
		c.ReceiverType = t
	}
	if decl.Returns != "" {
		t, err := parseType(decl.Returns, session, typeParams)
		if err != nil {
			return nil, err
		}
		c.ReturnType = t
	}
	return c, nil
}

func parseClassKind(kind string) (symbols.ClassKind, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "class":
		return symbols.Class, nil
	case "interface":
		return symbols.Interface, nil
	case "object":
		return symbols.Object, nil
	case "companion", "companion object":
		return symbols.CompanionObject, nil
	default:
		return 0, fmt.Errorf("unknown class kind %q", kind)
	}
}
