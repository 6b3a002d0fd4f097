// Package mdfa implements a modified DFA that matches whole tokens, ignoring
// case, against a dictionary of words and returns the diagnostics attached
// to the matched word.
//
// States live in a flat arena and transitions are indices into it. Every
// missing transition leads to the reject placeholder, which is never stored.
// The automaton is built once (Insert) and then only queried; Query is safe
// for concurrent use as long as no Insert runs at the same time.
package mdfa

import (
	"errors"
	"strings"
	"unicode"
)

const (
	// Start is the index of the start state.
	Start = 0

	// Reject is the index of the reject placeholder.
	Reject = 1
)

// ErrInvalidWord is returned by Insert for an empty word.
var ErrInvalidWord = errors.New("invalid word: must be at least 1 character long")

type state struct {
	name  string
	out   []string
	trans map[rune]int
}

// Automaton is a prefix automaton over the runes of inserted words.
type Automaton struct {
	states []state

	// name -> index, first state created with that name
	names map[string]int
}

// New returns an automaton holding only the start and reject states.
func New() *Automaton {
	a := &Automaton{names: map[string]int{}}
	a.states = append(a.states,
		state{name: "", trans: map[rune]int{}},
		state{name: "", trans: map[rune]int{}},
	)
	return a
}

// Insert adds word and its diagnostics. Both the lower and the upper case of
// every rune lead to the same next state, so a prefix inserted once is shared
// by all later spellings of it whatever their case. Inserting a word that is
// already present appends diags to its diagnostics.
func (a *Automaton) Insert(word string, diags []string) error {
	if word == "" {
		return ErrInvalidWord
	}

	runes := []rune(word)
	q := Start
	for i, r := range runes {
		s, ok := a.states[q].trans[r]
		last := i == len(runes)-1

		switch {
		case !ok && last:
			s = a.addState(word, diags)
		case !ok:
			s = a.addState(string(runes[:i+1]), nil)
		case last:
			a.states[s].out = append(a.states[s].out, diags...)
		}

		a.addTransition(q, r, s)
		q = s
	}

	return nil
}

func (a *Automaton) addState(name string, out []string) int {
	a.states = append(a.states, state{
		name:  name,
		out:   append([]string(nil), out...),
		trans: map[rune]int{},
	})

	idx := len(a.states) - 1
	if _, ok := a.names[name]; !ok {
		a.names[name] = idx
	}
	return idx
}

// addTransition links r and its lower and upper case. A titlecase rune such
// as ǅ differs from both.
func (a *Automaton) addTransition(from int, r rune, to int) {
	a.states[from].trans[r] = to
	a.states[from].trans[unicode.ToLower(r)] = to
	a.states[from].trans[unicode.ToUpper(r)] = to
}

// Query returns the diagnostics of token, or nil when token is not an
// inserted word. A token that is only a prefix of an inserted word lands on
// an intermediate state whose name differs from it and does not match.
func (a *Automaton) Query(token string) []string {
	q := Start
	for _, r := range token {
		s, ok := a.states[q].trans[r]
		if !ok {
			return nil
		}
		q = s
	}

	st := a.states[q]
	if !matches(st.name, token) || len(st.out) == 0 {
		return nil
	}

	return append([]string(nil), st.out...)
}

func matches(name, token string) bool {
	return strings.ToLower(name) == strings.ToLower(token)
}

// Len returns the number of states, start and reject included.
func (a *Automaton) Len() int {
	return len(a.states)
}

// State returns the index of the first state named name.
func (a *Automaton) State(name string) (int, bool) {
	idx, ok := a.names[name]
	return idx, ok
}

// Next returns the state reached from state from with rune r, or Reject.
func (a *Automaton) Next(from int, r rune) int {
	if from < 0 || from >= len(a.states) {
		return Reject
	}
	if s, ok := a.states[from].trans[r]; ok {
		return s
	}
	return Reject
}

// Name returns the name of a state.
func (a *Automaton) Name(idx int) string {
	return a.states[idx].name
}

// Out returns a copy of the diagnostics of a state.
func (a *Automaton) Out(idx int) []string {
	return append([]string(nil), a.states[idx].out...)
}
