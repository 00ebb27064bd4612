package openapi

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const lintDocument = `
openapi: 3.0.3
info:
  title: Lint
  version: "1.0"
paths: {}
components:
  schemas:
    Slot:
      type: object
      properties:
        good:
          type: string
          x-timepicker:
            type: 24
            second: true
            spliter: "."
            i18n:
              hour: h
        bad:
          type: string
          x-timepicker:
            type: "13"
            second: "yes"
            colour: red
            i18n:
              hours: h
        flag:
          type: boolean
          x-timepicker: true
        off:
          type: string
          x-timepicker: false
`

func TestLint(t *testing.T) {
	violations, err := NewBinder().Lint(context.Background(), []byte(lintDocument))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	var got []string
	for _, v := range violations {
		got = append(got, v.String())
	}
	expected := []string{
		`Slot.bad -> unknown option "colour"`,
		`Slot.bad -> unknown i18n label "hours"`,
		`Slot.bad -> second must be a boolean, got string`,
		`Slot.bad -> type "13" is not one of 12, 24, 100`,
		`Slot.flag -> unsupported property type "boolean"`,
		`Slot.off -> extension is false; remove it instead`,
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
}
