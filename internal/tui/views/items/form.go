package items

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stockroom/stockroom/internal/models"
	"github.com/stockroom/stockroom/internal/store"
	"github.com/stockroom/stockroom/internal/tui/components"
	"github.com/stockroom/stockroom/internal/util"
)

// FormMode indicates the form mode.
type FormMode int

const (
	FormModeAdd FormMode = iota
	FormModeEdit
)

// Form is the add/edit item form.
type Form struct {
	mode FormMode
	item *models.Item

	name       *components.Input
	category   *components.Select
	subtype    *components.Input
	quantity   *components.Input
	expiration *components.Input
	location   *components.Input
	barcode    *components.Input

	focusIndex int
	fields     []components.FormField
	submitted  bool
	cancelled  bool
	err        string
}

// NewForm creates an item form over the given category list.
func NewForm(mode FormMode, categories []string) *Form {
	f := &Form{
		mode: mode,

		name:       components.NewInput("Name").SetRequired(true).SetWidth(30),
		category:   components.NewSelect("Category", categories),
		subtype:    components.NewInput("Subtype").SetWidth(20),
		quantity:   components.NewInput("Quantity").SetRequired(true).SetWidth(8).SetMaxLength(7).SetValue("1"),
		expiration: components.NewInput("Expires").SetRequired(true).SetWidth(12).SetMaxLength(10).SetPlaceholder("YYYY-MM-DD"),
		location:   components.NewInput("Location").SetWidth(20),
		barcode:    components.NewInput("Barcode").SetRequired(true).SetWidth(16),
	}

	f.fields = []components.FormField{
		f.name,
		f.category,
		f.subtype,
		f.quantity,
		f.expiration,
		f.location,
		f.barcode,
	}

	f.fields[0].Focus(true)

	return f
}

// SetItem populates the form with an existing item for editing.
func (f *Form) SetItem(item *models.Item) {
	f.item = item
	f.name.SetValue(item.Name)
	f.category.SelectValue(item.Category)
	f.subtype.SetValue(item.SubType)
	f.quantity.SetValue(strconv.Itoa(item.Quantity))
	f.expiration.SetValue(item.ExpirationDate)
	f.location.SetValue(item.Location)
	f.barcode.SetValue(item.Barcode)
}

// ItemID returns the ID of the item being edited, or empty in add mode.
func (f *Form) ItemID() string {
	if f.item == nil {
		return ""
	}
	return f.item.ID
}

// HandleKey handles key input.
func (f *Form) HandleKey(key string) {
	switch key {
	case "tab", "down":
		f.nextField()
	case "shift+tab", "up":
		f.prevField()
	case "ctrl+s":
		f.submit()
	case "esc":
		f.cancelled = true
	case "enter":
		if f.focusIndex == len(f.fields)-1 {
			f.submit()
		} else {
			f.nextField()
		}
	default:
		f.fields[f.focusIndex].HandleKey(key)
	}
}

func (f *Form) nextField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex = (f.focusIndex + 1) % len(f.fields)
	f.fields[f.focusIndex].Focus(true)
}

func (f *Form) prevField() {
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}
	f.fields[f.focusIndex].Focus(true)
}

func (f *Form) submit() {
	f.err = ""

	valid := true
	if !f.name.Validate() {
		valid = false
	}
	if !f.barcode.Validate() {
		valid = false
	}

	if qty, err := strconv.Atoi(strings.TrimSpace(f.quantity.Value())); err != nil || qty < 0 {
		f.quantity.SetError("Whole number")
		f.err = "Quantity must be a non-negative whole number"
		valid = false
	} else {
		f.quantity.SetError("")
	}

	if !util.IsValidDate(f.expiration.Value()) {
		f.expiration.SetError("YYYY-MM-DD")
		f.err = "Expiration must be a YYYY-MM-DD date"
		valid = false
	} else {
		f.expiration.SetError("")
	}

	if !valid {
		if f.err == "" {
			f.err = "Please fill in all required fields"
		}
		return
	}

	f.submitted = true
}

// IsSubmitted returns true if the form was submitted.
func (f *Form) IsSubmitted() bool {
	return f.submitted
}

// IsCancelled returns true if the form was cancelled.
func (f *Form) IsCancelled() bool {
	return f.cancelled
}

// SetError surfaces a store-level error on the form, clearing the submitted
// state so the user can correct the input.
func (f *Form) SetError(err string) {
	f.err = err
	f.submitted = false
}

// Data returns the validated form data.
func (f *Form) Data() store.AddItemInput {
	qty, _ := strconv.Atoi(strings.TrimSpace(f.quantity.Value()))

	return store.AddItemInput{
		Name:           strings.TrimSpace(f.name.Value()),
		Category:       f.category.Value(),
		SubType:        strings.TrimSpace(f.subtype.Value()),
		Quantity:       qty,
		ExpirationDate: f.expiration.Value(),
		Location:       strings.TrimSpace(f.location.Value()),
		Barcode:        strings.TrimSpace(f.barcode.Value()),
	}
}

// Render renders the form.
func (f *Form) Render() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#66FF66")).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444"))

	var b strings.Builder

	title := "ADD ITEM"
	if f.mode == FormModeEdit {
		title = "EDIT ITEM"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("═══ %s ═══", title)))
	b.WriteString("\n\n")

	for _, field := range f.fields {
		b.WriteString(field.Render())
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render("Error: " + f.err))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Tab/Down:Next  Shift+Tab/Up:Prev  Ctrl+S:Save  Esc:Cancel"))

	return b.String()
}
