package components

import (
	"strings"
	"testing"
)

func TestInput_BasicOperations(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Arduino")

	if input.Value() != "Arduino" {
		t.Errorf("Expected 'Arduino', got %q", input.Value())
	}

	input.SetWidth(30)
	input.SetMaxLength(50)
	input.SetRequired(true)
	input.SetPlaceholder("Enter name")

	if !input.Validate() {
		t.Error("Expected validation to pass with value set")
	}
}

func TestInput_RequiredValidation(t *testing.T) {
	input := NewInput("Name").SetRequired(true)

	// Empty value should fail
	if input.Validate() {
		t.Error("Expected validation to fail for empty required field")
	}

	// With value should pass
	input.SetValue("Arduino")
	if !input.Validate() {
		t.Error("Expected validation to pass with value set")
	}

	// Whitespace-only should fail
	input.SetValue("   ")
	if input.Validate() {
		t.Error("Expected validation to fail for whitespace-only required field")
	}
}

func TestInput_Focus(t *testing.T) {
	input := NewInput("Name")

	if input.IsFocused() {
		t.Error("Should not be focused initially")
	}

	input.Focus(true)
	if !input.IsFocused() {
		t.Error("Should be focused after Focus(true)")
	}

	input.Focus(false)
	if input.IsFocused() {
		t.Error("Should not be focused after Focus(false)")
	}
}

func TestInput_HandleKey_TypeCharacter(t *testing.T) {
	input := NewInput("Name")
	input.Focus(true)

	input.HandleKey("A")
	input.HandleKey("B")
	input.HandleKey("C")

	if input.Value() != "ABC" {
		t.Errorf("Expected 'ABC', got %q", input.Value())
	}
}

func TestInput_HandleKey_IgnoredWhenUnfocused(t *testing.T) {
	input := NewInput("Name")

	input.HandleKey("A")
	if input.Value() != "" {
		t.Errorf("Expected no input when unfocused, got %q", input.Value())
	}
}

func TestInput_HandleKey_Backspace(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Hello")
	input.Focus(true)

	input.HandleKey("backspace")
	if input.Value() != "Hell" {
		t.Errorf("Expected 'Hell', got %q", input.Value())
	}
}

func TestInput_HandleKey_CursorMovement(t *testing.T) {
	input := NewInput("Name")
	input.SetValue("Hello")
	input.Focus(true)

	// Cursor at end (5), move left
	input.HandleKey("left")
	// Now at 4, type a char
	input.HandleKey("X")
	if input.Value() != "HellXo" {
		t.Errorf("Expected 'HellXo', got %q", input.Value())
	}

	input.HandleKey("home")
	input.HandleKey("Y")
	if input.Value() != "YHellXo" {
		t.Errorf("Expected 'YHellXo', got %q", input.Value())
	}

	input.HandleKey("end")
	input.HandleKey("Z")
	if input.Value() != "YHellXoZ" {
		t.Errorf("Expected 'YHellXoZ', got %q", input.Value())
	}
}

func TestInput_MaxLength(t *testing.T) {
	input := NewInput("Code").SetMaxLength(3)
	input.Focus(true)

	input.HandleKey("A")
	input.HandleKey("B")
	input.HandleKey("C")
	input.HandleKey("D")

	if input.Value() != "ABC" {
		t.Errorf("Expected input capped at 'ABC', got %q", input.Value())
	}
}

func TestInput_MaskedRender(t *testing.T) {
	input := NewInput("Passphrase").SetMasked(true)
	input.SetValue("secret")

	output := input.Render()
	if strings.Contains(output, "secret") {
		t.Error("Expected masked input to hide the value")
	}
	if !strings.Contains(output, "******") {
		t.Error("Expected asterisks in masked output")
	}
}

func TestInput_Render_ShowsError(t *testing.T) {
	input := NewInput("Expires").SetRequired(true)
	input.Validate()

	output := input.Render()
	if !strings.Contains(output, "Required") {
		t.Error("Expected error message in output")
	}
	if !strings.Contains(output, "Expires*") {
		t.Error("Expected required marker on label")
	}
}

func TestInput_Render_Placeholder(t *testing.T) {
	input := NewInput("Expires").SetPlaceholder("YYYY-MM-DD")

	output := input.Render()
	if !strings.Contains(output, "YYYY-MM-DD") {
		t.Error("Expected placeholder in unfocused empty input")
	}
}

func TestSelect_Navigation(t *testing.T) {
	sel := NewSelect("Category", []string{"Electronics", "Tools", "Food"})
	sel.Focus(true)

	if sel.Value() != "Electronics" {
		t.Errorf("Expected default 'Electronics', got %q", sel.Value())
	}

	sel.HandleKey("right")
	if sel.Value() != "Tools" {
		t.Errorf("Expected 'Tools', got %q", sel.Value())
	}

	sel.HandleKey("right")
	sel.HandleKey("right") // clamped at last option
	if sel.Value() != "Food" {
		t.Errorf("Expected 'Food', got %q", sel.Value())
	}

	sel.HandleKey("left")
	if sel.Value() != "Tools" {
		t.Errorf("Expected 'Tools', got %q", sel.Value())
	}
}

func TestSelect_SelectValue(t *testing.T) {
	sel := NewSelect("Category", []string{"Electronics", "Tools", "Food"})

	sel.SelectValue("Food")
	if sel.SelectedIndex() != 2 {
		t.Errorf("Expected index 2, got %d", sel.SelectedIndex())
	}

	// Unknown value leaves the selection alone
	sel.SelectValue("Optics")
	if sel.SelectedIndex() != 2 {
		t.Errorf("Expected index unchanged, got %d", sel.SelectedIndex())
	}
}

func TestSelect_SetOptions_KeepsSelectionInBounds(t *testing.T) {
	sel := NewSelect("Category", []string{"A", "B", "C"})
	sel.SetSelected(2)

	sel.SetOptions([]string{"A"})
	if sel.SelectedIndex() != 0 {
		t.Errorf("Expected selection reset to 0, got %d", sel.SelectedIndex())
	}
}

func TestSelect_IgnoresKeysWhenUnfocused(t *testing.T) {
	sel := NewSelect("Category", []string{"A", "B"})

	sel.HandleKey("right")
	if sel.SelectedIndex() != 0 {
		t.Error("Expected unfocused select to ignore keys")
	}
}

func TestSelect_Render(t *testing.T) {
	sel := NewSelect("Category", []string{"Electronics", "Tools"})
	sel.Focus(true)

	output := sel.Render()
	if !strings.Contains(output, "[Electronics]") {
		t.Error("Expected focused selection brackets in output")
	}
	if !strings.Contains(output, "Tools") {
		t.Error("Expected other options in output")
	}
}
