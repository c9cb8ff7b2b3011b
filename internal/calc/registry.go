// File: registry.go
// Title: Operation Registry
// Description: Thread-safe registry of named operations with arity checks,
//              aliases and unique-prefix abbreviations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-01
// Modified: 2026-10-12

package calc

import (
	"sort"
	"strings"
	"sync"

	errcerr "github.com/msto63/errc/foundation/core/error"
	errcerrors "github.com/msto63/errc/foundation/core/errors"
	"github.com/msto63/errc/foundation/core/log"
)

// EvalFunc evaluates an operation on its operands
type EvalFunc func(args []Operand) Operand

// Operation describes a named calculation
type Operation struct {
	Name        string
	Category    string
	Description string
	Usage       string // argument synopsis, e.g. "x y"
	Arity       int
	Aliases     []string
	Eval        EvalFunc
}

// Options configures registry behavior
type Options struct {
	Logger              *log.Logger
	EnableAbbreviations bool
}

// Registry maps names and aliases to operations
type Registry struct {
	operations map[string]*Operation
	aliases    map[string]string
	logger     *log.Logger
	mutex      sync.RWMutex
	options    Options
}

// NewRegistry creates a registry holding the built-in operations
func NewRegistry(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	r := &Registry{
		operations: make(map[string]*Operation),
		aliases:    make(map[string]string),
		logger:     opts.Logger.WithField("component", "calc-registry"),
		options:    opts,
	}

	for _, op := range builtinOperations() {
		if err := r.Register(op); err != nil {
			return nil, errcerr.Wrap(err, "failed to register builtin operations").
				WithCode(errcerr.CodeInternal)
		}
	}

	r.logger.Debug("operation registry initialized", log.Fields{
		"operationCount":      len(r.operations),
		"aliasCount":          len(r.aliases),
		"enableAbbreviations": opts.EnableAbbreviations,
	})

	return r, nil
}

// Register adds op and its aliases
func (r *Registry) Register(op *Operation) error {
	if op == nil || op.Eval == nil {
		return errcerrors.InvalidInput(errcerrors.ModuleCalc, "Register", op, "operation with Eval")
	}

	name := normalize(op.Name)
	if name == "" {
		return errcerrors.InvalidInput(errcerrors.ModuleCalc, "Register", op.Name, "non-empty operation name")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.taken(name) {
		return errcerrors.InvalidInput(errcerrors.ModuleCalc, "Register", name, "unregistered operation name")
	}
	for _, alias := range op.Aliases {
		if r.taken(normalize(alias)) {
			return errcerrors.InvalidInput(errcerrors.ModuleCalc, "Register", alias, "unregistered alias")
		}
	}

	op.Name = name
	r.operations[name] = op
	for _, alias := range op.Aliases {
		r.aliases[normalize(alias)] = name
	}

	r.logger.Trace("operation registered", log.Fields{
		"name":     name,
		"arity":    op.Arity,
		"category": op.Category,
	})

	return nil
}

// RegisterAlias maps alias to an existing operation
func (r *Registry) RegisterAlias(alias, name string) error {
	alias, name = normalize(alias), normalize(name)
	if alias == "" {
		return errcerrors.InvalidInput(errcerrors.ModuleCalc, "RegisterAlias", alias, "non-empty alias")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.operations[name]; !ok {
		return errcerrors.NotFound(errcerrors.ModuleCalc, "RegisterAlias", name)
	}
	if r.taken(alias) {
		return errcerrors.InvalidInput(errcerrors.ModuleCalc, "RegisterAlias", alias, "unregistered alias")
	}

	r.aliases[alias] = name
	return nil
}

func (r *Registry) taken(name string) bool {
	if _, ok := r.operations[name]; ok {
		return true
	}
	_, ok := r.aliases[name]
	return ok
}

// Lookup resolves name, an alias or, when enabled, a unique prefix
func (r *Registry) Lookup(name string) (*Operation, error) {
	key := normalize(name)

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if op, ok := r.operations[key]; ok {
		return op, nil
	}
	if target, ok := r.aliases[key]; ok {
		return r.operations[target], nil
	}

	if r.options.EnableAbbreviations && key != "" {
		var match *Operation
		for opName, op := range r.operations {
			if !strings.HasPrefix(opName, key) {
				continue
			}
			if match != nil {
				return nil, errcerrors.NewErrorBuilder(errcerrors.ModuleCalc).
					Operation("Lookup").
					Messagef("ambiguous operation %q", name).
					Code(errcerr.CodeInvalidInput).
					Detail("input", name).
					Build()
			}
			match = op
		}
		if match != nil {
			return match, nil
		}
	}

	return nil, errcerrors.NotFound(errcerrors.ModuleCalc, "Lookup", name)
}

// Evaluate looks up name and applies it to args after checking the arity
func (r *Registry) Evaluate(name string, args []Operand) (Operand, error) {
	op, err := r.Lookup(name)
	if err != nil {
		return Operand{}, err
	}

	if len(args) != op.Arity {
		return Operand{}, errcerrors.NewErrorBuilder(errcerrors.ModuleCalc).
			Operation("Evaluate").
			Messagef("%s expects %d operand(s), got %d", op.Name, op.Arity, len(args)).
			Code(errcerr.CodeInvalidInput).
			Detail("operation", op.Name).
			Detail("arity", op.Arity).
			Detail("given", len(args)).
			Build()
	}

	result := op.Eval(args)

	r.logger.Debug("operation evaluated", log.Fields{
		"name":   op.Name,
		"result": result.String(),
	})

	return result, nil
}

// Operations returns all operations sorted by category and name
func (r *Registry) Operations() []*Operation {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	ops := make([]*Operation, 0, len(r.operations))
	for _, op := range r.operations {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Category != ops[j].Category {
			return ops[i].Category < ops[j].Category
		}
		return ops[i].Name < ops[j].Name
	})
	return ops
}

// Aliases returns a copy of the alias table
func (r *Registry) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		result[k] = v
	}
	return result
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
