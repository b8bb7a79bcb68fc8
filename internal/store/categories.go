package store

import (
	"fmt"
	"slices"
)

// hasCategory reports whether the category exists. Callers must hold the mutex.
func (inv *Inventory) hasCategory(name string) bool {
	return slices.Contains(inv.categories, name)
}

// Categories returns the category list in its stored order.
func (inv *Inventory) Categories() []string {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return append([]string(nil), inv.categories...)
}

// AddCategory appends a new category and gives it an initial empty bin.
func (inv *Inventory) AddCategory(name string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.hasCategory(name) {
		return fmt.Errorf("category %q: %w", name, ErrConflict)
	}

	inv.categories = append(inv.categories, name)
	inv.createBin(name)

	inv.save()
	return nil
}

// RenameCategory renames a category everywhere it is referenced: the category
// list, every bin and item assigned to it, and its subtype list.
func (inv *Inventory) RenameCategory(oldName, newName string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	idx := slices.Index(inv.categories, oldName)
	if idx < 0 {
		return fmt.Errorf("category %q: %w", oldName, ErrNotFound)
	}
	if inv.hasCategory(newName) {
		return fmt.Errorf("category %q: %w", newName, ErrConflict)
	}

	inv.categories[idx] = newName

	for _, id := range inv.binOrder {
		if bin := inv.bins[id]; bin.Category == oldName {
			bin.Category = newName
		}
	}

	for _, id := range inv.itemOrder {
		if item := inv.items[id]; item.Category == oldName {
			item.Category = newName
		}
	}

	if subtypes, ok := inv.subtypes[oldName]; ok {
		inv.subtypes[newName] = subtypes
		delete(inv.subtypes, oldName)
	}

	inv.save()
	return nil
}

// DeleteCategory removes a category, its bins, and its subtype list. It fails
// while any item still references the category.
func (inv *Inventory) DeleteCategory(name string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if !inv.hasCategory(name) {
		return fmt.Errorf("category %q: %w", name, ErrNotFound)
	}

	for _, id := range inv.itemOrder {
		if inv.items[id].Category == name {
			return fmt.Errorf("category %q: %w", name, ErrCategoryInUse)
		}
	}

	inv.categories = slices.DeleteFunc(inv.categories, func(c string) bool {
		return c == name
	})

	for _, id := range slices.Clone(inv.binOrder) {
		if inv.bins[id].Category == name {
			inv.deleteBin(id)
		}
	}

	delete(inv.subtypes, name)

	inv.save()
	return nil
}

// Subtypes returns the subtype names registered under a category.
func (inv *Inventory) Subtypes(category string) []string {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return append([]string(nil), inv.subtypes[category]...)
}

// AddSubtype registers a subtype name under a category.
func (inv *Inventory) AddSubtype(category, name string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if !inv.hasCategory(category) {
		return fmt.Errorf("category %q: %w", category, ErrNotFound)
	}
	if slices.Contains(inv.subtypes[category], name) {
		return fmt.Errorf("subtype %q: %w", name, ErrConflict)
	}

	inv.subtypes[category] = append(inv.subtypes[category], name)

	inv.save()
	return nil
}

// DeleteSubtype removes a subtype name from a category. Items already tagged
// with the subtype keep their tag.
func (inv *Inventory) DeleteSubtype(category, name string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	idx := slices.Index(inv.subtypes[category], name)
	if idx < 0 {
		return fmt.Errorf("subtype %q: %w", name, ErrNotFound)
	}

	inv.subtypes[category] = slices.Delete(inv.subtypes[category], idx, idx+1)

	inv.save()
	return nil
}
