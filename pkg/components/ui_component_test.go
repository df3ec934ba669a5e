package components

import "testing"

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		name  string
		state UIState
		value int
		str   string
	}{
		{"UINormal should be 0", UINormal, 0, "Normal"},
		{"UIHovered should be 1", UIHovered, 1, "Hovered"},
		{"UIClicked should be 2", UIClicked, 2, "Clicked"},
		{"UIDisabled should be 3", UIDisabled, 3, "Disabled"},
		{"out of range", UIState(7), 7, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
			if tt.state.String() != tt.str {
				t.Errorf("String() = %q, want %q", tt.state.String(), tt.str)
			}
		})
	}
}

// TestButtonComponent_ZeroValue 零值按钮既不可见也不可用
func TestButtonComponent_ZeroValue(t *testing.T) {
	var button ButtonComponent
	if button.Visible || button.Enabled {
		t.Error("Zero-value button should be hidden and disabled")
	}
	if button.State != UINormal {
		t.Errorf("Zero-value state: got %v", button.State)
	}
}
