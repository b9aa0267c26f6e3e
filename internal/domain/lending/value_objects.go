package lending

import (
	"strings"
	"time"
)

const (
	MaxJustificationLength = 2000
	MaxGroupLength         = 100
	DefaultLoanPeriod      = 7 * 24 * time.Hour
)

type Justification struct {
	text string
}

func NewJustification(s string) (Justification, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Justification{}, ErrJustificationRequired
	}
	if len(t) > MaxJustificationLength {
		return Justification{}, ErrJustificationTooLong
	}
	return Justification{text: t}, nil
}

func (j Justification) String() string { return j.text }

// Group is the requester's class or cohort as typed on the request form.
type Group struct {
	value string
}

func NewGroup(s string) (Group, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Group{}, ErrGroupRequired
	}
	if len(t) > MaxGroupLength {
		return Group{}, ErrGroupTooLong
	}
	return Group{value: t}, nil
}

func (g Group) String() string { return g.value }
