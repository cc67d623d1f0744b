package checks

import (
	"errors"
	"strings"
	"testing"

	"github.com/slicer-infra/extcheck/internal/description"
	"github.com/slicer-infra/extcheck/pkg/extcheck"
)

// TestApply_MissingKeyShortCircuits verifies the guard fails with a
// missing-key outcome and the semantic body never runs
func TestApply_MissingKeyShortCircuits(t *testing.T) {
	bodyRan := false
	check := Check{
		Name:     "instrumented",
		Requires: []string{"scmurl"},
		Run: func(extension string, meta *description.Metadata) error {
			bodyRan = true
			return nil
		},
	}

	err := check.Apply("FooExtension", description.Parse(nil))
	if err == nil {
		t.Fatal("Expected missing-key failure")
	}
	if bodyRan {
		t.Error("Expected semantic body to never run when a required key is absent")
	}

	var checkErr *CheckError
	if !errors.As(err, &checkErr) {
		t.Fatalf("Expected *CheckError, got %T", err)
	}
	if checkErr.Check != extcheck.RequireKeyCheckName {
		t.Errorf("Expected failure attributed to the guard, got check %q", checkErr.Check)
	}
	if checkErr.Extension != "FooExtension" {
		t.Errorf("Expected failure attributed to FooExtension, got %q", checkErr.Extension)
	}
	if checkErr.Details != "scmurl key is missing" {
		t.Errorf("Unexpected details: %q", checkErr.Details)
	}
}

// TestApply_FirstMissingKeyWins verifies required keys are evaluated in
// declared order and only one failure is raised per invocation
func TestApply_FirstMissingKeyWins(t *testing.T) {
	check := Check{
		Name:     "two-keys",
		Requires: []string{"scm", "scmurl"},
		Run: func(extension string, meta *description.Metadata) error {
			t.Fatal("semantic body must not run")
			return nil
		},
	}

	err := check.Apply("FooExtension", description.Parse(nil))
	var checkErr *CheckError
	if !errors.As(err, &checkErr) {
		t.Fatalf("Expected *CheckError, got %T", err)
	}
	if checkErr.Details != "scm key is missing" {
		t.Errorf("Expected first declared key to be reported, got %q", checkErr.Details)
	}
}

// TestApply_SecondKeyMissing verifies the guard reports the key that is
// actually absent, not just the first declared one
func TestApply_SecondKeyMissing(t *testing.T) {
	check := Check{
		Name:     "two-keys",
		Requires: []string{"scm", "scmurl"},
		Run: func(extension string, meta *description.Metadata) error {
			return nil
		},
	}

	err := check.Apply("FooExtension", description.Parse([]byte("scm git\n")))
	var checkErr *CheckError
	if !errors.As(err, &checkErr) {
		t.Fatalf("Expected *CheckError, got %T", err)
	}
	if checkErr.Details != "scmurl key is missing" {
		t.Errorf("Expected scmurl to be reported missing, got %q", checkErr.Details)
	}
}

// TestApply_AllKeysPresentDelegates verifies the body runs once all
// preconditions hold
func TestApply_AllKeysPresentDelegates(t *testing.T) {
	bodyRan := false
	check := Check{
		Name:     "delegating",
		Requires: []string{"scm"},
		Run: func(extension string, meta *description.Metadata) error {
			bodyRan = true
			if meta.Text("scm") != "git" {
				t.Errorf("Expected body to see parsed metadata, got scm=%q", meta.Text("scm"))
			}
			return nil
		},
	}

	if err := check.Apply("FooExtension", description.Parse([]byte("scm git\n"))); err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}
	if !bodyRan {
		t.Error("Expected semantic body to run")
	}
}

// TestApply_BareKeySatisfiesGuard verifies a bare key (absent value)
// still satisfies the precondition; value handling is the body's concern
func TestApply_BareKeySatisfiesGuard(t *testing.T) {
	check := SCMURLSyntax()

	err := check.Apply("FooExtension", description.Parse([]byte("scmurl\n")))
	var checkErr *CheckError
	if !errors.As(err, &checkErr) {
		t.Fatalf("Expected *CheckError, got %T", err)
	}
	if checkErr.Check == "require-metadata-key" {
		t.Error("Expected semantic failure, not a precondition failure")
	}
	if !strings.Contains(checkErr.Details, "scheme://host/path") {
		t.Errorf("Expected malformed-syntax details, got %q", checkErr.Details)
	}
}

// TestCheckError_ErrorIsDetails verifies the error text is the detail
// string alone
func TestCheckError_ErrorIsDetails(t *testing.T) {
	err := &CheckError{Extension: "Foo", Check: "scm-not-local", Details: "scm cannot be local"}
	if err.Error() != "scm cannot be local" {
		t.Errorf("Unexpected error text: %q", err.Error())
	}
}
