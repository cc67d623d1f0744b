package extcheck

import "testing"

func TestFileReport_Passed(t *testing.T) {
	passing := FileReport{Path: "./FooExtension.s4ext"}
	if !passing.Passed() {
		t.Error("Expected report without failures to pass")
	}

	failing := FileReport{
		Path: "./BarExtension.s4ext",
		Failures: []Failure{
			{Extension: "BarExtension", Check: "scm-not-local", Details: "scm cannot be local"},
		},
	}
	if failing.Passed() {
		t.Error("Expected report with failures to not pass")
	}
}

func TestRunResult_Passed(t *testing.T) {
	clean := RunResult{FilesChecked: 3}
	if !clean.Passed() {
		t.Error("Expected run with zero failures to pass")
	}

	dirty := RunResult{FilesChecked: 3, TotalFailures: 1}
	if dirty.Passed() {
		t.Error("Expected run with failures to not pass")
	}
}
