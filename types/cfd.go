package types

import (
	"fmt"
	"strings"
)

// Relativity selects which family of transforms a run uses. It is chosen once
// per run from the input deck, never per cell.
type Relativity uint8

const (
	Newtonian Relativity = iota
	SpecialRelativistic
	GeneralRelativistic
)

func (r Relativity) String() string {
	switch r {
	case Newtonian:
		return "Newtonian"
	case SpecialRelativistic:
		return "SpecialRelativistic"
	case GeneralRelativistic:
		return "GeneralRelativistic"
	}
	return fmt.Sprintf("Relativity(%d)", uint8(r))
}

var RelativityNameMap = map[string]Relativity{
	"newtonian": Newtonian,
	"nr":        Newtonian,
	"sr":        SpecialRelativistic,
	"special":   SpecialRelativistic,
	"gr":        GeneralRelativistic,
	"general":   GeneralRelativistic,
}

func NewRelativity(label string) (r Relativity, err error) {
	var ok bool
	if r, ok = RelativityNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown relativity type [%s]", label)
	}
	return
}

// RelativityFromFlags mirrors the input deck switches, where both flags being
// set is a configuration error.
func RelativityFromFlags(specialRel, generalRel bool) (r Relativity, err error) {
	switch {
	case specialRel && generalRel:
		err = fmt.Errorf("cannot specify both special and general relativity at the same time")
	case specialRel:
		r = SpecialRelativistic
	case generalRel:
		r = GeneralRelativistic
	default:
		r = Newtonian
	}
	return
}
