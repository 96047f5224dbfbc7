package view

// Control names the button pressed on a cart line item.
type Control string

const (
	ControlIncrease Control = "increase"
	ControlDecrease Control = "decrease"
	ControlDelete   Control = "delete"
)

// ParseControl reports false for anything that is not one of the three
// line item controls.
func ParseControl(s string) (Control, bool) {
	switch c := Control(s); c {
	case ControlIncrease, ControlDecrease, ControlDelete:
		return c, true
	}
	return "", false
}
