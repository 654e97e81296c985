// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package project loads the per-project settings that drive disttool.
//
// Every setting has a default, so a project with conventional layout and
// tooling needs no config file at all.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// DefaultConfigFile is the config filename looked up in the project root
// when --config isn't given.
const DefaultConfigFile = "disttool.yaml"

// Jupyter configures the `disttool install` workflow.
type Jupyter struct {
	// Command is the jupyter executable.
	Command string `json:"command,omitempty"`
	// App is the server application to launch ("notebook", "lab", ...).
	App string `json:"app,omitempty"`
	// Extension is the server extension to enable before launching; empty
	// means the enable step is skipped.
	Extension string `json:"extension,omitempty"`
	// Args are extra arguments for the server launch.
	Args []string `json:"args,omitempty"`
}

type Project struct {
	// Root is the project directory.  It is set from the command line, not
	// from the config file.
	Root string `json:"-"`

	// Name is the distribution's name on the package index; empty disables
	// the publish preflight.
	Name string `json:"name,omitempty"`
	// DistDir (relative to Root) is where the build tool leaves artifacts.
	DistDir string `json:"distDir,omitempty"`
	// BuildTool produces distribution artifacts in DistDir.
	BuildTool []string `json:"buildTool,omitempty"`
	// UploadTool gets invoked with the artifact paths appended.
	UploadTool []string `json:"uploadTool,omitempty"`
	// IndexURL is the package index's Simple API root.
	IndexURL string `json:"indexURL,omitempty"`
	// Python is the interpreter used for the editable install.
	Python string `json:"python,omitempty"`

	Jupyter Jupyter `json:"jupyter,omitempty"`
}

func Defaults(root string) *Project {
	return &Project{
		Root:       root,
		DistDir:    "dist",
		BuildTool:  []string{"python3", "-m", "build"},
		UploadTool: []string{"twine", "upload"},
		IndexURL:   "https://pypi.org/simple/",
		Python:     "python3",
		Jupyter: Jupyter{
			Command: "jupyter",
			App:     "notebook",
		},
	}
}

// Load returns the settings for the project at root, overlaying the
// defaults with the YAML config file if there is one.  file == "" means
// "root/disttool.yaml, and it's fine for it to not exist"; an explicit
// file must exist.
func Load(root, file string) (*Project, error) {
	proj := Defaults(root)
	explicit := file != ""
	if !explicit {
		file = filepath.Join(root, DefaultConfigFile)
	}
	yamlBytes, err := os.ReadFile(file)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return proj, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(yamlBytes, proj, yaml.DisallowUnknownFields); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if len(proj.BuildTool) == 0 {
		return nil, fmt.Errorf("%s: buildTool must not be empty", file)
	}
	if len(proj.UploadTool) == 0 {
		return nil, fmt.Errorf("%s: uploadTool must not be empty", file)
	}
	return proj, nil
}

// DistPath is the absolute-or-relative-to-cwd path of the dist directory.
func (p *Project) DistPath() string {
	return filepath.Join(p.Root, p.DistDir)
}
