package testutil

import (
	"errors"
	"testing"
)

func TestSameErrorString(t *testing.T) {
	tests := []struct {
		err, target error
		same        bool
	}{
		{nil, nil, true},
		{errors.New("a"), nil, false},
		{nil, errors.New("a"), false},
		{errors.New("a"), errors.New("a"), true},
		{errors.New("a"), errors.New("b"), false},
	}
	for i, test := range tests {
		if got := SameErrorString(test.err, test.target); got != test.same {
			t.Errorf("%d, got %v, want %v", i, got, test.same)
		}
	}
}
