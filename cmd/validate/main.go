package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jwebster45206/dream-forest/pkg/scenario"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &WorldValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	for _, w := range validator.warnings {
		fmt.Println("Warning: " + w)
	}
	fmt.Println("World file is valid!")
}

type WorldValidator struct {
	errors   []string
	warnings []string
}

func (v *WorldValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	// Validate filename format
	baseName := filepath.Base(filename)
	ext := filepath.Ext(baseName)
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("world file must have .yaml extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ext)
	if !isValidWorldFilename(nameWithoutExt) {
		return fmt.Errorf("world filename '%s' must be lowercase snake_case (e.g., my_world.yaml, not my-world.yaml or MyWorld.yaml)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return v.validateData(filename, data)
}

func (v *WorldValidator) validateData(filename string, data []byte) error {
	v.errors = nil
	v.warnings = nil

	f, err := scenario.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("file %s failed strict YAML unmarshaling: %w", filename, err)
	}

	v.validateWorld(f)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	// The builder catches anything the checks above missed.
	if _, err := f.Build(); err != nil {
		return fmt.Errorf("file %s does not build: %w", filename, err)
	}

	return nil
}

func (v *WorldValidator) validateWorld(f *scenario.File) {
	if f.Name == "" {
		v.addError("world name is required")
	}

	if len(f.Locations) == 0 {
		v.addError("world has no locations")
		return
	}

	v.validateIDFormat("start", f.Start)
	if _, ok := f.Locations[f.Start]; !ok {
		v.addError(fmt.Sprintf("start '%s' is not a location", f.Start))
	}

	fold := cases.Fold()
	seenNames := make(map[string]string)

	for _, id := range f.IDs() {
		loc := f.Locations[id]
		v.validateIDFormat("location ID", id)

		if loc.Name == "" {
			v.addError(fmt.Sprintf("location %s has no name", id))
		} else {
			key := fold.String(loc.Name)
			if other, ok := seenNames[key]; ok {
				v.addError(fmt.Sprintf("locations %s and %s share the name '%s'", other, id, loc.Name))
			} else {
				seenNames[key] = id
			}
		}

		if strings.Contains(loc.Sound, "/") || strings.Contains(loc.Sound, `\`) {
			v.addError(fmt.Sprintf("location %s sound '%s' must be a file name, not a path", id, loc.Sound))
		}

		v.validateExits(f, id, loc)
	}

	v.warnAsymmetricExits(f)
	v.warnUnreachable(f)
}

func (v *WorldValidator) validateExits(f *scenario.File, id string, loc scenario.LocationFile) {
	for dir, target := range loc.Exits {
		if _, ok := scenario.ParseDirection(dir); !ok {
			v.addError(fmt.Sprintf("location %s has exit '%s' - directions are north, east, south, west", id, dir))
			continue
		}
		if _, ok := f.Locations[target]; !ok {
			v.addError(fmt.Sprintf("location %s exit %s leads to unknown location '%s'", id, dir, target))
		}
	}
}

func (v *WorldValidator) warnAsymmetricExits(f *scenario.File) {
	for _, id := range f.IDs() {
		for _, d := range scenario.Compass {
			target, ok := f.Locations[id].Exits[string(d)]
			if !ok {
				continue
			}
			back, ok := f.Locations[target].Exits[string(d.Opposite())]
			if !ok || back != id {
				v.addWarning(fmt.Sprintf("exit %s from %s to %s has no way back %s", d, id, target, d.Opposite()))
			}
		}
	}
}

func (v *WorldValidator) warnUnreachable(f *scenario.File) {
	if _, ok := f.Locations[f.Start]; !ok {
		return
	}
	seen := map[string]bool{f.Start: true}
	queue := []string{f.Start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, target := range f.Locations[id].Exits {
			if _, ok := f.Locations[target]; ok && !seen[target] {
				seen[target] = true
				queue = append(queue, target)
			}
		}
	}

	var unreachable []string
	for _, id := range f.IDs() {
		if !seen[id] {
			unreachable = append(unreachable, id)
		}
	}
	slices.Sort(unreachable)
	for _, id := range unreachable {
		v.addWarning(fmt.Sprintf("location %s cannot be reached from %s", id, f.Start))
	}
}

func (v *WorldValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		v.addError(fmt.Sprintf("%s is required", fieldName))
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *WorldValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

func (v *WorldValidator) addWarning(msg string) {
	v.warnings = append(v.warnings, msg)
}

var (
	validIDRegex       = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}

func isValidWorldFilename(name string) bool {
	// Allow 'x.' prefix for experimental worlds
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
