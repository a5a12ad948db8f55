package imports

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"leoc/internal/ast"
	"leoc/internal/source"
)

// Resolver walks package-access specifications and installs imported
// symbols into the running definition store. Resolution is fail-fast: the
// first failure anywhere in a chain aborts the whole import, and nothing
// already installed is rolled back.
type Resolver struct {
	Store  *Store
	Loader *Loader

	// Merger overrides the definition-store merge used for star imports.
	// When nil the store's own merge semantics apply.
	Merger Merger

	// WorkDir is the search root for top-level and transitive imports.
	// When empty the process working directory is used.
	WorkDir string

	// resolving holds the canonical paths of files on the active
	// resolution call path, to refuse cyclic imports.
	resolving map[string]struct{}
}

// NewResolver creates a resolver writing into store.
func NewResolver(store *Store, loader *Loader) *Resolver {
	return &Resolver{
		Store:     store,
		Loader:    loader,
		resolving: make(map[string]struct{}),
	}
}

// EnforceImport resolves one top-level import declaration under the given
// importing scope. This is the sole entry point per import declaration.
func (r *Resolver) EnforceImport(scope string, imp *ast.ImportDecl) error {
	root := r.WorkDir
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return directoryError(err, imp.Span, "")
		}
		root = wd
	}
	return r.EnforcePackage(scope, root, imp.Package)
}

// EnforcePackage locates the package's source file under path/src/ and
// dispatches into its access specification.
func (r *Resolver) EnforcePackage(scope, path string, pkg *ast.Package) error {
	sourceDir := filepath.Join(path, SourceDirectoryName)

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return directoryError(err, pkg.NameSpan, sourceDir)
	}

	// A package named P matches the entry whose name, with the source
	// suffix stripped, equals P. Directories match by their bare name,
	// which is how sub-package roots are found.
	for _, entry := range entries {
		if strings.TrimSuffix(entry.Name(), SourceFileExtension) != pkg.Name {
			continue
		}
		return r.enforcePackageAccess(scope, sourceDir, entry, pkg.Access)
	}
	return unknownPackage(pkg.Name, pkg.NameSpan)
}

// enforcePackageAccess brings one or more imported symbols into scope,
// recursing through sub-packages until the requested symbols are found.
func (r *Resolver) enforcePackageAccess(scope, dir string, entry fs.DirEntry, access ast.PackageAccess) error {
	switch a := access.(type) {
	case *ast.StarAccess:
		return r.enforceImportStar(scope, dir, entry, a.Span)
	case *ast.SymbolAccess:
		return r.enforceImportSymbol(scope, dir, entry, a)
	case *ast.SubPackageAccess:
		// The matched entry becomes a new package root.
		return r.EnforcePackage(scope, filepath.Join(dir, entry.Name()), a.Package)
	case *ast.MultipleAccess:
		for _, nested := range a.Accesses {
			if err := r.enforcePackageAccess(scope, dir, entry, nested); err != nil {
				return err
			}
		}
		return nil
	default:
		return unknownPackage(entry.Name(), source.Span{})
	}
}

// enforceImportStar imports every declaration of the target file into the
// importing scope, unqualified.
func (r *Resolver) enforceImportStar(scope, dir string, entry fs.DirEntry, span source.Span) error {
	release, err := r.guard(dir, entry, span)
	if err != nil {
		return err
	}
	defer release()

	program, err := r.Loader.ParseImportFile(dir, entry, span)
	if err != nil {
		return err
	}

	// Imported symbols share the calling scope's namespace.
	program.Rename(scope)
	return r.resolveDefinitions(program)
}

// enforceImportSymbol imports a single circuit or function, installing it
// under the qualified name derived from the loaded program's name and the
// effective (possibly aliased) symbol name. Afterwards the loaded file's
// own imports are resolved under its name.
func (r *Resolver) enforceImportSymbol(scope, dir string, entry fs.DirEntry, symbol *ast.SymbolAccess) error {
	release, err := r.guard(dir, entry, symbol.Span)
	if err != nil {
		return err
	}
	defer release()

	program, err := r.Loader.ParseImportFile(dir, entry, symbol.Span)
	if err != nil {
		return err
	}

	program.Rename(scope)
	programName := program.Name

	var value Value
	if circuit, ok := program.Circuit(symbol.Name); ok {
		value = &CircuitDefinition{Circuit: circuit}
	} else if fn, ok := program.Function(symbol.Name); ok {
		value = &FunctionDefinition{Function: fn}
	} else {
		return unknownSymbol(symbol.Name, programName, filepath.Join(dir, entry.Name()), symbol.Span)
	}

	resolvedName := NewScope(programName, symbol.EffectiveName())
	r.Store.Install(resolvedName, value)

	// Resolve every import declared inside the loaded file, using its
	// name as the importing scope for the nested resolution.
	for _, nested := range program.Imports {
		if err := r.EnforceImport(programName, nested); err != nil {
			return err
		}
	}
	return nil
}

// resolveDefinitions hands a fully-loaded program to the merge
// collaborator that installs all of its declarations.
func (r *Resolver) resolveDefinitions(program *ast.Program) error {
	if r.Merger != nil {
		return r.Merger.ResolveDefinitions(program)
	}
	// Default merge: install circuits and functions under the program's
	// scope, then resolve the program's own imports under its name.
	for _, circuit := range program.Circuits {
		r.Store.Install(NewScope(program.Name, circuit.Name), &CircuitDefinition{Circuit: circuit})
	}
	for _, fn := range program.Functions {
		r.Store.Install(NewScope(program.Name, fn.Name), &FunctionDefinition{Function: fn})
	}
	for _, nested := range program.Imports {
		if err := r.EnforceImport(program.Name, nested); err != nil {
			return err
		}
	}
	return nil
}

// guard refuses re-entry into a file already on the active resolution
// path. Cycle identity is the canonical absolute path of the matched
// entry. The returned release removes the guard entry.
func (r *Resolver) guard(dir string, entry fs.DirEntry, span source.Span) (func(), error) {
	path := filepath.Join(dir, entry.Name())
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	path = filepath.Clean(path)

	if _, active := r.resolving[path]; active {
		return nil, cyclicImport(path, span)
	}
	if r.resolving == nil {
		r.resolving = make(map[string]struct{})
	}
	r.resolving[path] = struct{}{}
	return func() { delete(r.resolving, path) }, nil
}
