// Package repository resolves the GitHub Packages Maven repositories a project
// pulls from and the credentials needed to read them.
package repository

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	oerrors "github.com/bitfist/jcefbuild/internal/errors"
)

// BaseURL is the GitHub Packages Maven endpoint.
const BaseURL = "https://maven.pkg.github.com/"

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// Repository is one GitHub Packages Maven repository.
type Repository struct {
	// Name is owner/repo.
	Name string `json:"name" yaml:"name"`

	// URL is the Maven endpoint for Name.
	URL string `json:"url" yaml:"url"`
}

// GitHub returns the repository for "owner/repo".
func GitHub(name string) (Repository, error) {
	name = strings.TrimSpace(name)
	if !namePattern.MatchString(name) {
		return Repository{}, oerrors.NewValidationError(
			fmt.Sprintf("repository %q is not in owner/name form", name),
			"", "repositories",
			"Use a value such as bitfist/jcef-spring-boot-starter")
	}
	return Repository{Name: name, URL: BaseURL + name}, nil
}

// Authenticated is a repository together with the credentials to read it.
type Authenticated struct {
	Repository  `yaml:",inline"`
	Credentials Credentials `json:"credentials" yaml:"credentials"`
}

// List maps repository names to repositories without touching credentials.
// Names are de-duplicated and sorted.
func List(names []string) ([]Repository, error) {
	unique := make(map[string]bool, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			unique[n] = true
		}
	}
	if len(unique) == 0 {
		return nil, nil
	}

	sorted := make([]string, 0, len(unique))
	for n := range unique {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	out := make([]Repository, 0, len(sorted))
	for _, n := range sorted {
		repo, err := GitHub(n)
		if err != nil {
			return nil, err
		}
		out = append(out, repo)
	}
	return out, nil
}

// Resolve maps repository names to repositories with credentials, in List order.
// A missing credential for any of them is an error.
func Resolve(names []string, lookup *Lookup) ([]Authenticated, error) {
	repos, err := List(names)
	if err != nil || len(repos) == 0 {
		return nil, err
	}

	out := make([]Authenticated, 0, len(repos))
	for _, repo := range repos {
		creds, err := lookup.Credentials(repo.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, Authenticated{Repository: repo, Credentials: creds})
	}
	return out, nil
}
