package table

import (
	"strings"
	"testing"
)

func reportHas(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestValidateWellFormed(t *testing.T) {
	r := Validate(mustLocate(t, sampleTable))
	if !r.IsValid || len(r.Errors) != 0 || len(r.Warnings) != 0 {
		t.Errorf("unexpected report: %+v", r)
	}
}

func TestValidateSeparatorMismatch(t *testing.T) {
	tbl := mustLocate(t, sampleTable)
	tbl.Separator = tbl.Separator[:1]

	r := Validate(tbl)
	if r.IsValid {
		t.Error("separator mismatch should be an error")
	}
	if !reportHas(r.Errors, "separator") {
		t.Errorf("errors = %v", r.Errors)
	}
}

func TestValidateMalformedToken(t *testing.T) {
	tbl := mustLocate(t, sampleTable)
	tbl.Separator[0] = ":-:-"

	r := Validate(tbl)
	if r.IsValid {
		t.Error("malformed token should be an error")
	}
	if !reportHas(r.Errors, "malformed") {
		t.Errorf("errors = %v", r.Errors)
	}
}

func TestValidateWarnings(t *testing.T) {
	tbl := mustLocate(t, "| Name |  | name |\n| --- | --- | --- |\n| a | b |")

	r := Validate(tbl)
	if !r.IsValid {
		t.Errorf("warnings must not invalidate: %+v", r)
	}
	if !reportHas(r.Warnings, "empty") {
		t.Errorf("missing empty-header warning: %v", r.Warnings)
	}
	if !reportHas(r.Warnings, "duplicates") {
		t.Errorf("missing duplicate-header warning: %v", r.Warnings)
	}
	if !reportHas(r.Warnings, "cells") {
		t.Errorf("missing row-count warning: %v", r.Warnings)
	}
}

func TestValidateDoesNotMutate(t *testing.T) {
	tbl := mustLocate(t, sampleTable)
	before := tbl.String()
	Validate(tbl)
	if tbl.String() != before {
		t.Error("Validate mutated the table")
	}
}
