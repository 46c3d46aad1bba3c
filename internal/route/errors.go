package route

import (
	"fmt"
	"strings"
)

// DefectKind categorizes route table authoring mistakes.
type DefectKind string

const (
	// DefectMissingComponent: a leaf or index descriptor has no component.
	DefectMissingComponent DefectKind = "MISSING_COMPONENT"

	// DefectIndexChildren: an index descriptor declares children.
	DefectIndexChildren DefectKind = "INDEX_WITH_CHILDREN"

	// DefectMultipleIndex: more than one sibling is marked as index.
	DefectMultipleIndex DefectKind = "MULTIPLE_INDEX"

	// DefectLayoutConflict: a nested descriptor declares a layout other than
	// the one its ancestors already applied.
	DefectLayoutConflict DefectKind = "LAYOUT_CONFLICT"

	// DefectInvalidLayout: the layout kind is outside the enumeration.
	DefectInvalidLayout DefectKind = "INVALID_LAYOUT"

	// DefectDuplicatePath: two routes resolve to the same URL pattern.
	DefectDuplicatePath DefectKind = "DUPLICATE_PATH"

	// DefectMisplacedCatchAll: "*" used anywhere but as a top-level leaf.
	DefectMisplacedCatchAll DefectKind = "MISPLACED_CATCH_ALL"

	// DefectMountConflict: the router rejected the pattern while mounting.
	DefectMountConflict DefectKind = "MOUNT_CONFLICT"
)

// Defect is a single configuration error found while building the tree.
type Defect struct {
	Kind    DefectKind
	Path    string
	Message string
}

func (d Defect) Error() string {
	if d.Path == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", d.Kind, d.Message, d.Path)
}

// ValidationErrors collects every defect of a route table.
type ValidationErrors struct {
	Defects []Defect
}

func (e *ValidationErrors) Error() string {
	switch len(e.Defects) {
	case 0:
		return "no route defects"
	case 1:
		return e.Defects[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d route defects:\n", len(e.Defects))
	for i, d := range e.Defects {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, d.Error())
	}
	return sb.String()
}

// Has reports whether a defect of the given kind was recorded.
func (e *ValidationErrors) Has(kind DefectKind) bool {
	for _, d := range e.Defects {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

func (e *ValidationErrors) add(kind DefectKind, path, format string, args ...any) {
	e.Defects = append(e.Defects, Defect{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationErrors) err() error {
	if len(e.Defects) == 0 {
		return nil
	}
	return e
}
