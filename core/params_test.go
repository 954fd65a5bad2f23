package core

import (
	"testing"

	mceliece "github.com/BackendStack21/mceliece-go"
)

func TestGetParams(t *testing.T) {
	p, err := GetParams(mceliece.Hamming1511)
	if err != nil {
		t.Fatalf("GetParams failed: %v", err)
	}
	if p.N != 15 || p.K != 11 || p.T != 1 {
		t.Errorf("Hamming params = %+v, want (15, 11, 1)", p)
	}

	p, err = GetParams(mceliece.BCH157)
	if err != nil {
		t.Fatalf("GetParams failed: %v", err)
	}
	if p.N != 15 || p.K != 7 || p.T != 2 {
		t.Errorf("BCH params = %+v, want (15, 7, 2)", p)
	}

	if _, err := GetParams(mceliece.Variant("goppa-1024-524")); err == nil {
		t.Error("GetParams should reject unknown variants")
	}
}

func TestValidateParams(t *testing.T) {
	for _, p := range []mceliece.CodeParams{Hamming1511Params, BCH157Params} {
		if err := ValidateParams(p); err != nil {
			t.Errorf("ValidateParams(%+v) = %v, want nil", p, err)
		}
	}

	bad := []struct {
		name string
		p    mceliece.CodeParams
	}{
		{"zero dimensions", mceliece.CodeParams{}},
		{"k >= n", mceliece.CodeParams{N: 15, K: 15, T: 1}},
		{"t < 1", mceliece.CodeParams{N: 15, K: 11, T: 0}},
		{"t exceeds redundancy", mceliece.CodeParams{N: 15, K: 11, T: 3}},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateParams(tc.p); err == nil {
				t.Errorf("ValidateParams(%+v) should fail", tc.p)
			}
		})
	}
}

func TestExpansionRatio(t *testing.T) {
	if got := ExpansionRatio(Hamming1511Params); got != 15.0/11.0 {
		t.Errorf("Hamming expansion ratio = %v, want 15/11", got)
	}
	if got := ExpansionRatio(BCH157Params); got != 15.0/7.0 {
		t.Errorf("BCH expansion ratio = %v, want 15/7", got)
	}
}
