package bthome

// ButtonEvent is an event code for the button object (object.Button).
type ButtonEvent uint8

const (
	ButtonNone            ButtonEvent = 0x00
	ButtonPress           ButtonEvent = 0x01
	ButtonDoublePress     ButtonEvent = 0x02
	ButtonTriplePress     ButtonEvent = 0x03
	ButtonLongPress       ButtonEvent = 0x04
	ButtonLongDoublePress ButtonEvent = 0x05
	ButtonLongTriplePress ButtonEvent = 0x06
	ButtonHoldPress       ButtonEvent = 0x80
)

const (
	dimmerNone        = 0x00
	dimmerRotateLeft  = 0x01
	dimmerRotateRight = 0x02
)

// DimmerSteps converts a signed rotation to the dimmer event wire value (object.Dimmer): a
// direction byte followed by the step count. Negative steps rotate left (counterclockwise),
// positive rotate right, zero means no event. Magnitudes over 255 are capped at 255 steps.
func DimmerSteps(steps int) uint16 {
	switch {
	case steps == 0:
		return dimmerNone
	case steps > 0:
		return dimmerRotateRight | uint16(min(steps, 255))<<8
	default:
		return dimmerRotateLeft | uint16(min(-steps, 255))<<8
	}
}
