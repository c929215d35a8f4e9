package menu

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownAction is returned when a declaration names an unregistered action.
var ErrUnknownAction = errors.New("menu: unknown action")

// Params carries the declaration-time settings of an action.
type Params struct {
	Step uint32
	Min  uint32
	Max  uint32
}

// ActionFactory builds an Action from its declaration parameters.
type ActionFactory func(Params) (Action, error)

// Registry maps action names used in menu declarations to factories.
type Registry struct {
	factories map[string]ActionFactory
}

// BuildRegistry returns a registry holding the built-in actions.
func BuildRegistry() *Registry {
	r := &Registry{factories: make(map[string]ActionFactory)}
	r.Register("edit", editFactory)
	return r
}

// Register installs factory under name, replacing any previous entry.
func (r *Registry) Register(name string, factory ActionFactory) {
	r.factories[normalizeActionName(name)] = factory
}

// Find locates a factory by name.
func (r *Registry) Find(name string) (ActionFactory, bool) {
	factory, ok := r.factories[normalizeActionName(name)]
	return factory, ok
}

// Action builds the named action.
func (r *Registry) Action(name string, params Params) (Action, error) {
	factory, ok := r.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAction, name)
	}
	return factory(params)
}

// Names lists the registered action names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func editFactory(p Params) (Action, error) {
	if p.Max != 0 && p.Min > p.Max {
		return nil, fmt.Errorf("edit range min %d exceeds max %d", p.Min, p.Max)
	}
	hi := p.Max
	if hi == 0 {
		hi = ^uint32(0)
	}
	return ValueEditor(p.Step, p.Min, hi), nil
}

func normalizeActionName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
