package checks

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/slicer-infra/extcheck/internal/description"
)

// Metadata keys inspected by the source-control checks.
const (
	KeySCM    = "scm"
	KeySCMURL = "scmurl"
)

// supportedSchemes are the URL schemes accepted for scmurl.
var supportedSchemes = []string{"git", "https", "svn"}

// repositoryPrefixes are the accepted naming variations suggested when a
// git repository name lacks the Slicer prefix.
var repositoryPrefixes = []string{"Slicer-", "Slicer_", "SlicerExtension-", "SlicerExtension_"}

// SCMURLSyntax validates that scmurl looks like scheme://host/path and
// uses a supported scheme.
func SCMURLSyntax() Check {
	const name = "scmurl-syntax"
	return Check{
		Name:     name,
		Requires: []string{KeySCMURL},
		Run: func(extension string, meta *description.Metadata) error {
			value := meta.Text(KeySCMURL)

			if !strings.Contains(value, "://") {
				return &CheckError{
					Extension: extension,
					Check:     name,
					Details:   "scmurl does not match scheme://host/path",
				}
			}

			parsed, err := url.Parse(value)
			if err != nil {
				return &CheckError{
					Extension: extension,
					Check:     name,
					Details:   fmt.Sprintf("scmurl is not a valid URL: %v", err),
				}
			}

			scheme := parsed.Scheme
			for _, supported := range supportedSchemes {
				if scheme == supported {
					return nil
				}
			}
			return &CheckError{
				Extension: extension,
				Check:     name,
				Details:   fmt.Sprintf("scmurl scheme is '%s' but it should be any of %v", scheme, supportedSchemes),
			}
		},
	}
}

// SCMNotLocal validates that the declared source-control system is not
// the placeholder value "local", which has no publicly reachable
// repository behind it.
func SCMNotLocal() Check {
	const name = "scm-not-local"
	return Check{
		Name:     name,
		Requires: []string{KeySCM},
		Run: func(extension string, meta *description.Metadata) error {
			if meta.Text(KeySCM) == "local" {
				return &CheckError{
					Extension: extension,
					Check:     name,
					Details:   "scm cannot be local",
				}
			}
			return nil
		},
	}
}

// GitRepositoryName validates that a git repository is named after the
// Slicer naming convention: the repository name (last URL path segment,
// suffix stripped) must start with "Slicer". The check is a no-op for
// non-git source control; that is a conditional skip, not a failure.
func GitRepositoryName() Check {
	const name = "git-repository-name"
	return Check{
		Name:     name,
		Requires: []string{KeySCM, KeySCMURL},
		Run: func(extension string, meta *description.Metadata) error {
			if meta.Text(KeySCM) != "git" {
				return nil
			}

			repoName := repositoryName(meta.Text(KeySCMURL))
			if strings.HasPrefix(repoName, "Slicer") {
				return nil
			}

			variations := make([]string, 0, len(repositoryPrefixes))
			for _, prefix := range repositoryPrefixes {
				variations = append(variations, prefix+repoName)
			}
			return &CheckError{
				Extension: extension,
				Check:     name,
				Details: fmt.Sprintf(
					"extension repository name is '%s'. Please, consider changing it to 'Slicer%s' or any of these variations %v.",
					repoName, repoName, variations),
			}
		},
	}
}

// repositoryName extracts the repository name from a source-control URL:
// the last path segment with its extension suffix (.git and alike)
// stripped. Falls back to treating the whole value as a path when it
// does not parse as a URL.
func repositoryName(scmurl string) string {
	urlPath := scmurl
	if parsed, err := url.Parse(scmurl); err == nil {
		urlPath = parsed.Path
	}

	segments := strings.Split(urlPath, "/")
	last := segments[len(segments)-1]
	return strings.TrimSuffix(last, path.Ext(last))
}

// Configured returns the ordered check list for a run. The repository
// name check is optional and runs first when enabled; the scmurl syntax
// and scm-not-local checks always run.
func Configured(enableRepositoryNameCheck bool) []Check {
	var list []Check
	if enableRepositoryNameCheck {
		list = append(list, GitRepositoryName())
	}
	return append(list, SCMURLSyntax(), SCMNotLocal())
}
