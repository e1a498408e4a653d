package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Set with -ldflags "-X main.buildVersion=... -X main.buildCommit=..."; they
// take precedence over versions.yaml.
var (
	buildVersion string
	buildCommit  string
)

// versionConfig holds parsed version command configuration
type versionConfig struct {
	format string
}

// versionInfo is printed as text or JSON
type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// versionsYAML represents the versions.yaml file structure
type versionsYAML struct {
	Project struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
		Branch string `yaml:"branch"`
	} `yaml:"git"`
	Build struct {
		Time      string `yaml:"time"`
		GoVersion string `yaml:"go_version"`
	} `yaml:"build"`
}

func runVersion(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseVersionFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	info := getVersionInfo()
	if cfg.format == OutputFormatJSON {
		return outputVersionJSON(info, stdout, stderr)
	}
	return outputVersionText(info, stdout)
}

func outputVersionJSON(info *versionInfo, stdout, stderr io.Writer) int {
	return writeJSON(info, stdout, stderr)
}

func outputVersionText(info *versionInfo, stdout io.Writer) int {
	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline,
		info.Version, info.Commit, info.Branch, info.BuildTime, info.GoVersion)
	return ExitCodeSuccess
}

func parseVersionFlags(args []string) (*versionConfig, error) {
	fs := flag.NewFlagSet(CmdNameVersion, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &versionConfig{}
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch cfg.format {
	case OutputFormatText, OutputFormatJSON:
		return cfg, nil
	default:
		return nil, errors.New(ErrMsgInvalidFormat)
	}
}

// getVersionInfo layers build flags over versions.yaml over defaults.
func getVersionInfo() *versionInfo {
	info := &versionInfo{
		Version:   VersionUnknown,
		Commit:    VersionUnknown,
		Branch:    VersionUnknown,
		BuildTime: VersionUnknown,
		GoVersion: runtime.Version(),
	}
	if vy, ok := loadVersionsFile(versionSearchDirs); ok {
		info.apply(vy)
	}
	setIfPresent(&info.Version, buildVersion)
	setIfPresent(&info.Commit, buildCommit)
	return info
}

// versionSearchDirs covers running from the repo root and from cmd/fmtxx.
var versionSearchDirs = []string{".", "..", filepath.Join("..", "..")}

// loadVersionsFile returns the first readable, well-formed versions.yaml in dirs.
func loadVersionsFile(dirs []string) (*versionsYAML, bool) {
	for _, dir := range dirs {
		data, err := os.ReadFile(filepath.Join(dir, VersionsFileName))
		if err != nil {
			continue
		}
		vy := &versionsYAML{}
		if err := yaml.Unmarshal(data, vy); err != nil {
			continue
		}
		return vy, true
	}
	return nil, false
}

func (v *versionInfo) apply(vy *versionsYAML) {
	setIfPresent(&v.Version, vy.Project.Version)
	setIfPresent(&v.Commit, vy.Git.Commit)
	setIfPresent(&v.Branch, vy.Git.Branch)
	setIfPresent(&v.BuildTime, vy.Build.Time)
	setIfPresent(&v.GoVersion, vy.Build.GoVersion)
}

func setIfPresent(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
