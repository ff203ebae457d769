package bban

import (
	"slices"
	"sync"

	"ibankit/pkg/country"
	dErrors "ibankit/pkg/domain-errors"
)

// Registry maps countries to their BBAN structure. It is safe for concurrent
// use; lookups take a read lock only.
type Registry struct {
	mu         sync.RWMutex
	structures map[country.Code]*Structure
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{structures: make(map[country.Code]*Structure)}
}

// Register adds the structure for code. Registration is write-once: a second
// structure for the same country is rejected with CodeDuplicateStructure.
// Use Replace to overwrite deliberately.
func (r *Registry) Register(code country.Code, s *Structure) error {
	if err := checkRegistration(code, s); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.structures[code]; exists {
		return &dErrors.Error{
			Code:    dErrors.CodeDuplicateStructure,
			Actual:  string(code),
			Message: "structure for country " + string(code) + " already exists",
		}
	}
	r.structures[code] = s
	return nil
}

// Replace sets the structure for code, overwriting any existing one.
func (r *Registry) Replace(code country.Code, s *Structure) error {
	if err := checkRegistration(code, s); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.structures[code] = s
	return nil
}

func checkRegistration(code country.Code, s *Structure) error {
	if s == nil {
		return dErrors.New(dErrors.CodeValidation, "structure for country "+string(code)+" is nil")
	}
	if !country.Exists(string(code)) {
		return dErrors.Violation(dErrors.CodeCountryCodeExists, string(code), "",
			"cannot register a structure for non existing country code "+string(code))
	}
	return nil
}

// Lookup returns the structure for code; ok is false if the country has no
// IBAN scheme.
func (r *Registry) Lookup(code country.Code) (s *Structure, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok = r.structures[code]
	return s, ok
}

// SupportedCountries returns every registered country in alphabetical order,
// so that picking by index from a seeded source is reproducible.
func (r *Registry) SupportedCountries() []country.Code {
	r.mu.RLock()
	codes := make([]country.Code, 0, len(r.structures))
	for code := range r.structures {
		codes = append(codes, code)
	}
	r.mu.RUnlock()
	slices.Sort(codes)
	return codes
}

// Len returns the number of registered countries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.structures)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, populated from the built-in
// dataset on first use. Concurrent first calls run the population once.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		if err := LoadDefaults(r); err != nil {
			// the dataset is static; a duplicate here is a programming error
			panic("bban: loading built-in structures: " + err.Error())
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
