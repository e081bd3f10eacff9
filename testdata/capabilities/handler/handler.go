package handler

import (
	"errors"
	"fmt"
)

type Glider interface {
	Glide() error
}

// Kite refuses to glide, wrapped.
type Kite struct{}

func (Kite) Glide() error {
	return fmt.Errorf("kite: %w", errors.ErrUnsupported)
}

type Sailplane struct{}

func (Sailplane) Glide() error { return nil }

// Manager launches gliders and counts the ones that declined.
type Manager struct {
	skipped int
}

func (m *Manager) Launch(g Glider) error {
	if err := g.Glide(); errors.Is(err, errors.ErrUnsupported) {
		m.skipped++
		return nil
	} else if err != nil {
		return fmt.Errorf("launch: %w", err)
	}
	return nil
}

func (m *Manager) Declined(err error) bool {
	return err == errors.ErrUnsupported
}

func (m *Manager) Skipped() int { return m.skipped }
