// Package categories provides the TUI view for managing categories and
// their subtypes.
package categories

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stockroom/stockroom/internal/store"
	"github.com/stockroom/stockroom/internal/tui/components"
)

// ActionType identifies a pending category operation.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionAddCategory
	ActionRenameCategory
	ActionDeleteCategory
	ActionAddSubtype
	ActionDeleteSubtype
)

// Action is an operation confirmed by the user, ready for the store.
type Action struct {
	Type     ActionType
	Category string
	Name     string // new category name or subtype name
}

// promptKind tracks which operation the text prompt collects input for.
type promptKind int

const (
	promptNone promptKind = iota
	promptAdd
	promptRename
	promptAddSubtype
)

// View displays categories and their subtypes, with inline prompts for
// create and rename operations.
type View struct {
	inv        *store.Inventory
	categories []string
	selected   int

	// Subtype browsing within the selected category.
	subtypeMode     bool
	subtypes        []string
	subtypeSelected int

	prompt promptKind
	input  *components.Input
	err    string
}

// NewView creates a category management view.
func NewView(inv *store.Inventory) *View {
	return &View{inv: inv}
}

// Load refreshes the category and subtype lists from the store.
func (v *View) Load() {
	v.categories = v.inv.Categories()
	if v.selected >= len(v.categories) {
		v.selected = len(v.categories) - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}

	if v.subtypeMode && len(v.categories) > 0 {
		v.subtypes = v.inv.Subtypes(v.categories[v.selected])
		if v.subtypeSelected >= len(v.subtypes) {
			v.subtypeSelected = len(v.subtypes) - 1
		}
		if v.subtypeSelected < 0 {
			v.subtypeSelected = 0
		}
	}
}

// SelectedCategory returns the highlighted category name.
func (v *View) SelectedCategory() string {
	if v.selected >= 0 && v.selected < len(v.categories) {
		return v.categories[v.selected]
	}
	return ""
}

// InPrompt reports whether the view is collecting text input and needs all
// key events routed to it.
func (v *View) InPrompt() bool {
	return v.prompt != promptNone
}

// SetError surfaces a store-level error.
func (v *View) SetError(err string) {
	v.err = err
}

// HandleKey processes a key press. A non-zero Action means the user has
// confirmed an operation for the caller to execute.
func (v *View) HandleKey(key string) Action {
	if v.prompt != promptNone {
		return v.handlePromptKey(key)
	}

	if v.subtypeMode {
		return v.handleSubtypeKey(key)
	}

	switch key {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.categories)-1 {
			v.selected++
		}
	case "enter":
		if v.SelectedCategory() != "" {
			v.subtypeMode = true
			v.subtypeSelected = 0
			v.Load()
		}
	case "a":
		v.openPrompt(promptAdd, "")
	case "r":
		if v.SelectedCategory() != "" {
			v.openPrompt(promptRename, v.SelectedCategory())
		}
	case "d":
		if cat := v.SelectedCategory(); cat != "" {
			return Action{Type: ActionDeleteCategory, Category: cat}
		}
	}

	return Action{}
}

func (v *View) handleSubtypeKey(key string) Action {
	switch key {
	case "esc":
		v.subtypeMode = false
	case "up", "k":
		if v.subtypeSelected > 0 {
			v.subtypeSelected--
		}
	case "down", "j":
		if v.subtypeSelected < len(v.subtypes)-1 {
			v.subtypeSelected++
		}
	case "a":
		v.openPrompt(promptAddSubtype, "")
	case "d":
		if v.subtypeSelected >= 0 && v.subtypeSelected < len(v.subtypes) {
			return Action{
				Type:     ActionDeleteSubtype,
				Category: v.SelectedCategory(),
				Name:     v.subtypes[v.subtypeSelected],
			}
		}
	}

	return Action{}
}

func (v *View) openPrompt(kind promptKind, initial string) {
	v.prompt = kind
	v.err = ""

	label := "Name"
	switch kind {
	case promptRename:
		label = "New name"
	case promptAddSubtype:
		label = "Subtype"
	}

	v.input = components.NewInput(label).SetRequired(true).SetWidth(24).SetValue(initial)
	v.input.Focus(true)
}

func (v *View) handlePromptKey(key string) Action {
	switch key {
	case "esc":
		v.prompt = promptNone
		v.input = nil
		return Action{}
	case "enter":
		if !v.input.Validate() {
			return Action{}
		}
		name := strings.TrimSpace(v.input.Value())
		kind := v.prompt
		v.prompt = promptNone
		v.input = nil

		switch kind {
		case promptAdd:
			return Action{Type: ActionAddCategory, Name: name}
		case promptRename:
			return Action{Type: ActionRenameCategory, Category: v.SelectedCategory(), Name: name}
		case promptAddSubtype:
			return Action{Type: ActionAddSubtype, Category: v.SelectedCategory(), Name: name}
		}
		return Action{}
	default:
		v.input.HandleKey(key)
		return Action{}
	}
}

// Render renders the category view.
func (v *View) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	selStyle := lipgloss.NewStyle().Background(lipgloss.Color("#00FF00")).Foreground(lipgloss.Color("#000000"))
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	var b strings.Builder

	if v.subtypeMode {
		b.WriteString(titleStyle.Render(fmt.Sprintf("=== SUBTYPES: %s ===", strings.ToUpper(v.SelectedCategory()))))
	} else {
		b.WriteString(titleStyle.Render("=== CATEGORIES ==="))
	}
	b.WriteString("\n\n")

	if v.err != "" {
		b.WriteString(errStyle.Render("Error: " + v.err))
		b.WriteString("\n\n")
	}

	if v.subtypeMode {
		if len(v.subtypes) == 0 {
			b.WriteString(labelStyle.Render("No subtypes defined."))
			b.WriteString("\n")
		}
		for i, sub := range v.subtypes {
			line := fmt.Sprintf("  %-30s", sub)
			if i == v.subtypeSelected {
				b.WriteString(selStyle.Render(line))
			} else {
				b.WriteString(rowStyle.Render(line))
			}
			b.WriteString("\n")
		}
	} else {
		for i, cat := range v.categories {
			count := len(v.inv.Subtypes(cat))
			line := fmt.Sprintf("  %-24s %d subtypes", cat, count)
			if i == v.selected {
				b.WriteString(selStyle.Render(line))
			} else {
				b.WriteString(rowStyle.Render(line))
			}
			b.WriteString("\n")
		}
	}

	if v.prompt != promptNone && v.input != nil {
		b.WriteString("\n")
		b.WriteString(v.input.Render())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Enter:Confirm  Esc:Cancel"))
		return b.String()
	}

	b.WriteString("\n")
	if v.subtypeMode {
		b.WriteString(helpStyle.Render("Up/Down:Select  a:Add  d:Delete  Esc:Back"))
	} else {
		b.WriteString(helpStyle.Render("Up/Down:Select  Enter:Subtypes  a:Add  r:Rename  d:Delete"))
	}

	return b.String()
}
