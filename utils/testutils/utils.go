package testutils

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func AssertEqual(t *testing.T, got, exp interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, got) {
		t.Fatalf("expected\n%v\n got \n%v", exp, got)
	}
}

// AssertMatrixApprox fails the test when got and exp differ by more than tol
// in any entry (or differ in shape).
func AssertMatrixApprox(t *testing.T, got, exp mat.Matrix, tol float64) {
	t.Helper()
	if !mat.EqualApprox(got, exp, tol) {
		t.Fatalf("expected\n%v\n got \n%v",
			mat.Formatted(exp), mat.Formatted(got))
	}
}
