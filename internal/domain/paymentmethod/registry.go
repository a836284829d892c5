package paymentmethod

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

var (
	ErrMethodNotFound  = errors.New("payment method not found")
	ErrNoEnabledMethod = errors.New("at least one payment method must be enabled")
	ErrDefaultDisabled = errors.New("the default payment method must be enabled")
	// ErrDefaultRequired is returned when the current default is disabled
	// without naming a replacement in the same command.
	ErrDefaultRequired = errors.New("disabling the default payment method requires a new default")
)

// MethodUpdate changes the fields that are set; nil fields are left alone.
type MethodUpdate struct {
	ID          vo.PaymentMethod
	Name        *string
	Description *string
	Enabled     *bool
	Fee         *vo.Money
	Position    *int
}

// Registry is a consistent snapshot of all methods. Changes are applied to a
// copy and only committed when every invariant holds, so callers either see
// the whole command or none of it.
type Registry struct {
	methods []*Method
}

func NewRegistry(methods []*Method) *Registry {
	r := &Registry{methods: methods}
	r.sort()
	return r
}

// All returns every method ordered by position.
func (r *Registry) All() []*Method {
	out := make([]*Method, len(r.methods))
	copy(out, r.methods)
	return out
}

// Available returns enabled methods ordered by position.
func (r *Registry) Available() []*Method {
	out := make([]*Method, 0, len(r.methods))
	for _, m := range r.methods {
		if m.enabled {
			out = append(out, m)
		}
	}
	return out
}

// IsAvailable reports whether id exists and is enabled.
func (r *Registry) IsAvailable(id vo.PaymentMethod) bool {
	m := findMethod(r.methods, id)
	return m != nil && m.enabled
}

func (r *Registry) Default() *Method {
	for _, m := range r.methods {
		if m.isDefault {
			return m
		}
	}
	return nil
}

// Apply runs an admin update atomically. newDefault may be nil to keep the current default.
func (r *Registry) Apply(updates []MethodUpdate, newDefault *vo.PaymentMethod, now time.Time) error {
	next := make([]*Method, len(r.methods))
	for i, m := range r.methods {
		next[i] = m.clone()
	}

	for _, u := range updates {
		m := findMethod(next, u.ID)
		if m == nil {
			return fmt.Errorf("%w: %s", ErrMethodNotFound, u.ID)
		}
		if err := applyUpdate(m, u); err != nil {
			return err
		}
		m.updatedAt = now
	}

	if err := setDefault(next, r.Default(), newDefault, now); err != nil {
		return err
	}
	if err := validate(next); err != nil {
		return err
	}

	r.methods = next
	r.sort()
	return nil
}

// Toggle flips the enabled flag of one method and returns its new state.
func (r *Registry) Toggle(id vo.PaymentMethod, newDefault *vo.PaymentMethod, now time.Time) (*Method, error) {
	m := findMethod(r.methods, id)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrMethodNotFound, id)
	}
	enabled := !m.enabled
	if err := r.Apply([]MethodUpdate{{ID: id, Enabled: &enabled}}, newDefault, now); err != nil {
		return nil, err
	}
	return findMethod(r.methods, id), nil
}

func applyUpdate(m *Method, u MethodUpdate) error {
	if u.Name != nil {
		if strings.TrimSpace(*u.Name) == "" {
			return fmt.Errorf("method name is required")
		}
		m.name = strings.TrimSpace(*u.Name)
	}
	if u.Description != nil {
		m.description = *u.Description
	}
	if u.Fee != nil {
		if u.Fee.IsNegative() {
			return fmt.Errorf("method fee must not be negative")
		}
		m.fee = *u.Fee
	}
	if u.Position != nil {
		m.position = *u.Position
	}
	if u.Enabled != nil {
		m.enabled = *u.Enabled
	}
	return nil
}

func setDefault(methods []*Method, current *Method, newDefault *vo.PaymentMethod, now time.Time) error {
	if newDefault == nil {
		if current != nil {
			if m := findMethod(methods, current.id); m != nil && !m.enabled {
				return ErrDefaultRequired
			}
		}
		return nil
	}
	target := findMethod(methods, *newDefault)
	if target == nil {
		return fmt.Errorf("%w: %s", ErrMethodNotFound, *newDefault)
	}
	for _, m := range methods {
		if m.isDefault != (m == target) {
			m.isDefault = m == target
			m.updatedAt = now
		}
	}
	return nil
}

func validate(methods []*Method) error {
	enabled := 0
	defaults := 0
	for _, m := range methods {
		if m.enabled {
			enabled++
		}
		if m.isDefault {
			defaults++
			if !m.enabled {
				return ErrDefaultDisabled
			}
		}
	}
	if enabled == 0 {
		return ErrNoEnabledMethod
	}
	if defaults > 1 {
		return fmt.Errorf("only one default payment method is allowed")
	}
	return nil
}

func findMethod(methods []*Method, id vo.PaymentMethod) *Method {
	for _, m := range methods {
		if m.id == id {
			return m
		}
	}
	return nil
}

func (r *Registry) sort() {
	sort.SliceStable(r.methods, func(i, j int) bool {
		if r.methods[i].position != r.methods[j].position {
			return r.methods[i].position < r.methods[j].position
		}
		return r.methods[i].id < r.methods[j].id
	})
}
