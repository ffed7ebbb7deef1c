package csv

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

type appliedRow struct {
	source, relationship, target string
}

func collect(applied *[]appliedRow) ApplyFunc {
	return func(source, relationship, target string) error {
		*applied = append(*applied, appliedRow{source, relationship, target})
		return nil
	}
}

func TestLoad(t *testing.T) {
	input := strings.Join([]string{
		"Entity1,Relationship,Entity2",
		"Alice Johnson,enrolled_in,Data Science",
		"Bob Miller,advised_by,Dr. Williams",
		"  Carol  , teaches ,  Statistics ",
	}, "\n")

	var applied []appliedRow
	res, err := Load(strings.NewReader(input), collect(&applied))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Added != 3 {
		t.Fatalf("unexpected added count: got %d, want 3", res.Added)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected row errors: %v", res.Errors)
	}

	want := []appliedRow{
		{"Alice Johnson", "enrolled_in", "Data Science"},
		{"Bob Miller", "advised_by", "Dr. Williams"},
		{"Carol", "teaches", "Statistics"},
	}
	if !reflect.DeepEqual(applied, want) {
		t.Fatalf("unexpected applied rows: got %+v, want %+v", applied, want)
	}
}

func TestLoadMissingColumns(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "wrong header", input: "From,Label,To\nA,r,B\n"},
		{name: "partial header", input: "Entity1,Entity2\nA,B\n"},
		{name: "case mismatch", input: "entity1,relationship,entity2\nA,r,B\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var applied []appliedRow
			_, err := Load(strings.NewReader(tt.input), collect(&applied))
			if !errors.Is(err, ErrMissingColumns) {
				t.Fatalf("unexpected error: got %v, want ErrMissingColumns", err)
			}
			if len(applied) != 0 {
				t.Fatalf("rows were applied despite schema error: %+v", applied)
			}
		})
	}
}

func TestLoadReorderedAndExtraColumns(t *testing.T) {
	input := strings.Join([]string{
		"Notes,Entity2,Relationship,Entity1",
		"ignored,Computer Science,enrolled_in,John Doe",
	}, "\n")

	var applied []appliedRow
	res, err := Load(strings.NewReader(input), collect(&applied))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Added != 1 {
		t.Fatalf("unexpected added count: got %d, want 1", res.Added)
	}
	want := []appliedRow{{"John Doe", "enrolled_in", "Computer Science"}}
	if !reflect.DeepEqual(applied, want) {
		t.Fatalf("unexpected applied rows: got %+v, want %+v", applied, want)
	}
}

func TestLoadSkipsEmptyFieldRows(t *testing.T) {
	input := strings.Join([]string{
		"Entity1,Relationship,Entity2",
		"X,y,Z",
		",bad,Q",
		"A,  ,B",
		"",
	}, "\n")

	var applied []appliedRow
	res, err := Load(strings.NewReader(input), collect(&applied))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Empty-field rows are skipped silently: not applied, not errored.
	if res.Added != 1 {
		t.Fatalf("unexpected added count: got %d, want 1", res.Added)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("empty-field rows must not be reported as errors: %v", res.Errors)
	}
	want := []appliedRow{{"X", "y", "Z"}}
	if !reflect.DeepEqual(applied, want) {
		t.Fatalf("unexpected applied rows: got %+v, want %+v", applied, want)
	}
}

func TestLoadCollectsRowErrorsAndContinues(t *testing.T) {
	input := strings.Join([]string{
		"Entity1,Relationship,Entity2",
		"A,r,B",
		"C,r",
		"D,r,E",
	}, "\n")

	var applied []appliedRow
	res, err := Load(strings.NewReader(input), collect(&applied))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Added != 2 {
		t.Fatalf("unexpected added count: got %d, want 2", res.Added)
	}
	if len(res.Errors) != 1 || !strings.HasPrefix(res.Errors[0], "Row 2:") {
		t.Fatalf("unexpected row errors: %v", res.Errors)
	}
	want := []appliedRow{{"A", "r", "B"}, {"D", "r", "E"}}
	if !reflect.DeepEqual(applied, want) {
		t.Fatalf("rows after a failing row were not applied: got %+v, want %+v", applied, want)
	}
}

func TestLoadApplyErrorDoesNotAbort(t *testing.T) {
	input := strings.Join([]string{
		"Entity1,Relationship,Entity2",
		"A,r,B",
		"poison,r,B",
		"C,r,D",
	}, "\n")

	apply := func(source, relationship, target string) error {
		if source == "poison" {
			return fmt.Errorf("boom")
		}
		return nil
	}

	res, err := Load(strings.NewReader(input), apply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Added != 2 {
		t.Fatalf("unexpected added count: got %d, want 2", res.Added)
	}
	if len(res.Errors) != 1 || res.Errors[0] != "Row 2: boom" {
		t.Fatalf("unexpected row errors: %v", res.Errors)
	}
}

func TestLoadQuotedFields(t *testing.T) {
	input := strings.Join([]string{
		"Entity1,Relationship,Entity2",
		`"Doe, John",enrolled_in,"Computer Science"`,
	}, "\n")

	var applied []appliedRow
	res, err := Load(strings.NewReader(input), collect(&applied))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Added != 1 {
		t.Fatalf("unexpected added count: got %d, want 1", res.Added)
	}
	if applied[0].source != "Doe, John" {
		t.Fatalf("quoted field mishandled: %+v", applied[0])
	}
}
