package fibonacci

import (
	"sort"

	apperrors "github.com/awij3301/fibonnaci/internal/errors"
)

// CalculatorFactory provides named access to the registered calculation
// strategies. It decouples the application layer from concrete strategy
// types.
type CalculatorFactory interface {
	// Get returns the calculator registered under the given name, or a
	// ConfigError naming the valid choices.
	Get(name string) (Calculator, error)

	// List returns the registered names in sorted order.
	List() []string

	// GetAll returns all registered calculators, ordered by name.
	GetAll() []Calculator
}

// defaultFactory is the map-backed CalculatorFactory implementation.
type defaultFactory struct {
	calculators map[string]Calculator
}

// NewDefaultFactory creates a factory with all built-in strategies
// registered: recursive, iterative, memoized (with a factory-lifetime
// shared cache), and doubling.
func NewDefaultFactory() CalculatorFactory {
	return &defaultFactory{
		calculators: map[string]Calculator{
			"recursive": NewCalculator(NaiveRecursive{}),
			"iterative": NewCalculator(Iterative{}),
			"memoized":  NewCalculator(NewMemoized(NewMemoCache())),
			"doubling":  NewCalculator(FastDoubling{}),
		},
	}
}

// Get returns the calculator registered under name.
func (f *defaultFactory) Get(name string) (Calculator, error) {
	calc, ok := f.calculators[name]
	if !ok {
		return nil, apperrors.NewConfigError("unknown algorithm %q (valid: %v)", name, f.List())
	}
	return calc, nil
}

// List returns the registered names in sorted order.
func (f *defaultFactory) List() []string {
	names := make([]string, 0, len(f.calculators))
	for name := range f.calculators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns all registered calculators, ordered by name.
func (f *defaultFactory) GetAll() []Calculator {
	all := make([]Calculator, 0, len(f.calculators))
	for _, name := range f.List() {
		all = append(all, f.calculators[name])
	}
	return all
}
