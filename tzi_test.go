// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package guesttz

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// pacificTZI is the registry record for Pacific Standard Time. The
// transition dates are recurring rules with a zero year, the day field
// holding the week ordinal.
var pacificTZI = regTZI{
	Bias:         480,
	StandardBias: 0,
	DaylightBias: -60,
	StandardDate: systemTime{Month: 11, Day: 1, Hour: 2},
	DaylightDate: systemTime{Month: 3, Day: 2, Hour: 2},
}

func TestParseRegTZI(t *testing.T) {
	var buf bytes.Buffer
	err := binary.Write(&buf, binary.LittleEndian, pacificTZI)
	if err != nil {
		t.Fatalf("unexpected error encoding record: %v", err)
	}
	if n := buf.Len(); n != 44 {
		t.Fatalf("unexpected record length: got:%d want:44", n)
	}
	got, err := parseRegTZI(buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cmp.Equal(got, pacificTZI) {
		t.Errorf("unexpected record:\n%s", cmp.Diff(got, pacificTZI))
	}

	_, err = parseRegTZI(buf.Bytes()[:40])
	if err == nil {
		t.Error("expected error for short record")
	}
}

func TestRegTZIRule(t *testing.T) {
	got := pacificTZI.rule()
	want := Rule{
		StandardOffset: -28800,
		DaylightOffset: 3600,
		DaylightStart:  Civil{Month: 3, Day: 2, Hour: 2},
		StandardStart:  Civil{Month: 11, Day: 1, Hour: 2},
	}
	if !cmp.Equal(got, want) {
		t.Errorf("unexpected rule:\n%s", cmp.Diff(got, want))
	}
}

func TestRegTZIRuleNoDST(t *testing.T) {
	tzi := regTZI{Bias: -570} // Australia/Darwin.
	got := tzi.rule()
	want := Rule{StandardOffset: 34200}
	if !cmp.Equal(got, want) {
		t.Errorf("unexpected rule:\n%s", cmp.Diff(got, want))
	}
}
