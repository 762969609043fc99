// Package verify scans deployment manifests for component versions that
// fall outside the documented compatibility matrix.
package verify

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Severity classifies a finding. Errors fail the run; warnings fail it
// only in strict mode.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Constraint is the tested version window for one component.
type Constraint struct {
	Min         string
	Recommended string
	Max         string
	Pattern     *regexp.Regexp
}

// Finding is a single version reference that was checked.
type Finding struct {
	File      string
	Line      int
	Component string
	Version   string
	Issue     string
	Severity  Severity
}

// Summary aggregates one run.
type Summary struct {
	FilesScanned int
	Errors       int
	Warnings     int
}

// Config controls a verification run.
type Config struct {
	// Root is the directory tree to scan for YAML manifests.
	Root string

	// Verbose includes INFO findings (recommended-version nudges and
	// recognized API versions) in the report.
	Verbose bool

	// Strict fails the run on warnings as well as errors.
	Strict bool

	// OverridesPath optionally points at a YAML file that replaces or
	// extends the built-in matrix.
	OverridesPath string
}

// DefaultMatrix returns the built-in constraint set. Callers own the map.
func DefaultMatrix() map[string]Constraint {
	return map[string]Constraint{
		"kubernetes": {
			Min:         "1.29.0",
			Recommended: "1.32.0",
			Max:         "1.32.2",
			Pattern:     regexp.MustCompile(`kubernetes:\s*v?([0-9]+\.[0-9]+(?:\.[0-9]+)?)`),
		},
		"argocd": {
			Min:         "3.0.0",
			Recommended: "3.1.0",
			Max:         "3.1.2",
			Pattern:     regexp.MustCompile(`argocd:\s*v?([0-9]+\.[0-9]+(?:\.[0-9]+)?)`),
		},
		"kpt": {
			Min:         "v1.0.0-beta.50",
			Recommended: "v1.0.0-beta.55",
			Max:         "v1.0.0-beta.57",
			Pattern:     regexp.MustCompile(`kpt(?:/kpt)?[@:]?\s*v?([0-9]+\.[0-9]+\.[0-9]+[-\w.]+)`),
		},
		"prometheus": {
			Min:         "2.48.0",
			Recommended: "3.5.0",
			Max:         "3.5.1",
			Pattern:     regexp.MustCompile(`prometheus:\s*v?([0-9]+\.[0-9]+(?:\.[0-9]+)?)`),
		},
		"grafana": {
			Min:         "10.3.0",
			Recommended: "12.1.0",
			Max:         "12.1.1",
			Pattern:     regexp.MustCompile(`grafana:\s*v?([0-9]+\.[0-9]+(?:\.[0-9]+)?)`),
		},
	}
}

// knownAPIVersions maps recognized apiVersion values to what they declare.
var knownAPIVersions = map[string]string{
	"argoproj.io/v1alpha1":            "ArgoCD Application/ApplicationSet",
	"kpt.dev/v1":                      "Kpt package",
	"metal3.io/v1alpha1":              "Metal3 BareMetalHost",
	"monitoring.coreos.com/v1":        "Prometheus ServiceMonitor",
	"admissionregistration.k8s.io/v1": "ValidatingWebhookConfiguration",
	"networking.k8s.io/v1":            "Ingress/NetworkPolicy",
	"batch/v1":                        "Job/CronJob",
	"apps/v1":                         "Deployment/StatefulSet/DaemonSet",
	"v1":                              "Core resources",
}

// Run scans cfg.Root, writes a report to out and returns the summary.
// The returned error is non-nil when the run fails per cfg.Strict.
func Run(cfg Config, out io.Writer) (Summary, error) {
	matrix := DefaultMatrix()
	if cfg.OverridesPath != "" {
		overrides, err := LoadOverrides(cfg.OverridesPath)
		if err != nil {
			return Summary{}, fmt.Errorf("loading overrides: %w", err)
		}
		for name, c := range overrides {
			matrix[name] = c
		}
	}

	var (
		summary  Summary
		findings []Finding
	)

	err := filepath.WalkDir(cfg.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || (!strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml")) {
			return nil
		}
		if strings.Contains(path, "/vendor/") || strings.Contains(path, "/test/") {
			return nil
		}

		summary.FilesScanned++
		fileFindings, err := scanFile(path, matrix, cfg.Verbose)
		if err != nil {
			return err
		}
		findings = append(findings, fileFindings...)
		return nil
	})
	if err != nil {
		return summary, fmt.Errorf("walking %s: %w", cfg.Root, err)
	}

	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			summary.Errors++
		case SeverityWarning:
			summary.Warnings++
		}
	}

	report(findings, summary, out)

	switch {
	case summary.Errors > 0:
		return summary, fmt.Errorf("validation failed with %d errors", summary.Errors)
	case summary.Warnings > 0 && cfg.Strict:
		return summary, fmt.Errorf("validation failed with %d warnings in strict mode", summary.Warnings)
	}
	return summary, nil
}

func scanFile(path string, matrix map[string]Constraint, verbose bool) ([]Finding, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	components := make([]string, 0, len(matrix))
	for name := range matrix {
		components = append(components, name)
	}
	sort.Strings(components)

	var findings []Finding
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		for _, component := range components {
			constraint := matrix[component]
			matches := constraint.Pattern.FindStringSubmatch(line)
			if len(matches) < 2 {
				continue
			}
			if f := checkVersion(path, lineNum, component, matches[1], constraint, verbose); f != nil {
				findings = append(findings, *f)
			}
		}

		if verbose && strings.HasPrefix(strings.TrimSpace(line), "apiVersion:") {
			apiVersion := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "apiVersion:"))
			if desc, ok := knownAPIVersions[apiVersion]; ok {
				findings = append(findings, Finding{
					File:      path,
					Line:      lineNum,
					Component: "api",
					Version:   apiVersion,
					Issue:     fmt.Sprintf("recognized API version for %s", desc),
					Severity:  SeverityInfo,
				})
			}
		}

		// KRaft replaced ZooKeeper in the broker versions we test against.
		if strings.Contains(line, "zookeeper.connect") {
			findings = append(findings, Finding{
				File:      path,
				Line:      lineNum,
				Component: "kafka",
				Version:   "zookeeper",
				Issue:     "ZooKeeper mode is deprecated, use KRaft",
				Severity:  SeverityWarning,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return findings, err
	}
	return findings, nil
}

func checkVersion(file string, line int, component, version string, c Constraint, verbose bool) *Finding {
	version = normalizeVersion(component, version)

	if CompareVersions(version, c.Min) < 0 {
		return &Finding{
			File: file, Line: line, Component: component, Version: version,
			Issue:    fmt.Sprintf("version %s is below minimum %s", version, c.Min),
			Severity: SeverityError,
		}
	}
	if CompareVersions(version, c.Max) > 0 {
		return &Finding{
			File: file, Line: line, Component: component, Version: version,
			Issue:    fmt.Sprintf("version %s exceeds maximum tested %s", version, c.Max),
			Severity: SeverityWarning,
		}
	}
	if verbose && CompareVersions(version, c.Recommended) != 0 {
		return &Finding{
			File: file, Line: line, Component: component, Version: version,
			Issue:    fmt.Sprintf("consider the recommended version %s", c.Recommended),
			Severity: SeverityInfo,
		}
	}
	return nil
}

func normalizeVersion(component, version string) string {
	version = strings.TrimSuffix(version, "+")
	if component == "kpt" && !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return version
}

// CompareVersions orders two dotted versions numerically, with beta
// pre-release suffixes ("v1.0.0-beta.55") compared by beta number.
func CompareVersions(a, b string) int {
	a = strings.TrimPrefix(a, "v")
	b = strings.TrimPrefix(b, "v")

	aBase, aBeta, aIsBeta := splitBeta(a)
	bBase, bBeta, bIsBeta := splitBeta(b)

	if c := compareDotted(aBase, bBase); c != 0 {
		return c
	}

	// A pre-release sorts before the same base release.
	switch {
	case aIsBeta && !bIsBeta:
		return -1
	case !aIsBeta && bIsBeta:
		return 1
	case aIsBeta && bIsBeta:
		switch {
		case aBeta < bBeta:
			return -1
		case aBeta > bBeta:
			return 1
		}
	}
	return 0
}

func splitBeta(v string) (base string, beta int, ok bool) {
	base, suffix, found := strings.Cut(v, "-beta.")
	if !found {
		return v, 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil {
		return v, 0, false
	}
	return base, n, true
}

func compareDotted(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var an, bn int
		if i < len(as) {
			an, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bn, _ = strconv.Atoi(bs[i])
		}
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		}
	}
	return 0
}

func report(findings []Finding, summary Summary, out io.Writer) {
	bySeverity := map[Severity][]Finding{}
	for _, f := range findings {
		bySeverity[f.Severity] = append(bySeverity[f.Severity], f)
	}

	if len(findings) == 0 {
		fmt.Fprintln(out, "No issues found.")
	}
	for _, sev := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		group := bySeverity[sev]
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s:\n", sev)
		for _, f := range group {
			fmt.Fprintf(out, "  %s:%d - %s %s: %s\n", f.File, f.Line, f.Component, f.Version, f.Issue)
		}
	}

	fmt.Fprintf(out, "\nFiles scanned: %d\n", summary.FilesScanned)
	fmt.Fprintf(out, "Errors: %d\n", summary.Errors)
	fmt.Fprintf(out, "Warnings: %d\n", summary.Warnings)
}
