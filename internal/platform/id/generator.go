package id

import "github.com/google/uuid"

// Generator issues unique string identifiers, used as access token ids.
type Generator interface {
	NewID() (string, error)
}

// Func adapts a plain function to Generator.
type Func func() (string, error)

func (f Func) NewID() (string, error) {
	return f()
}

// NewTimeOrdered returns a Generator of UUIDv7 values, which sort by the
// time they were issued.
func NewTimeOrdered() Generator {
	return Func(func() (string, error) {
		v, err := uuid.NewV7()
		if err != nil {
			return "", err
		}
		return v.String(), nil
	})
}
