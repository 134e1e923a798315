package entity

import "fmt"

// UnknownEntityError is returned when a data-table name has no entry
type UnknownEntityError struct {
	Category Category
	Name     string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Category, e.Name)
}

// UnknownStageError is returned when a stage name or index cannot be resolved
type UnknownStageError struct {
	Name  string
	Index int
}

func (e *UnknownStageError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("unknown stage at index %d", e.Index)
	}
	return fmt.Sprintf("unknown stage %q", e.Name)
}

// DuplicateEntityError is returned when an id is registered twice in one category
type DuplicateEntityError struct {
	Category Category
	ID       EntityID
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("duplicate %s id %d", e.Category, e.ID)
}

// UnknownTweenKindError is returned for a tweener name missing from the table,
// or for a table entry whose kind has no constructor
type UnknownTweenKindError struct {
	Name string
	Kind string
}

func (e *UnknownTweenKindError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("unknown tweener %q", e.Name)
	}
	return fmt.Sprintf("tweener %q: unknown kind %q", e.Name, e.Kind)
}
