package model

import "fmt"

// InvalidPressStateError reports a raw press code outside {0,1,2}.
type InvalidPressStateError struct {
	Value int
}

func (e *InvalidPressStateError) Error() string {
	return fmt.Sprintf("model: invalid press state %d", e.Value)
}

// UnsupportedKeyError reports a physical key not in the Key taxonomy.
type UnsupportedKeyError struct {
	Raw string
}

func (e *UnsupportedKeyError) Error() string {
	return fmt.Sprintf("model: unsupported key %q", e.Raw)
}

// UnbindableKeyError reports a well-formed key with no binding.
type UnbindableKeyError struct {
	Key string
}

func (e *UnbindableKeyError) Error() string {
	return fmt.Sprintf("model: key %q is not bound to any button", e.Key)
}

// InvalidPolarityError reports a zero magnitude where a signed polarity
// was required.
type InvalidPolarityError struct {
	Value float64
}

func (e *InvalidPolarityError) Error() string {
	return fmt.Sprintf("model: invalid polarity %v", e.Value)
}

// UnsupportedEventError reports a raw event that is neither a key nor a
// relative-axis event.
type UnsupportedEventError struct {
	Raw string
}

func (e *UnsupportedEventError) Error() string {
	return fmt.Sprintf("model: unsupported event %q", e.Raw)
}

// SinkError wraps a virtual-device emission failure.
type SinkError struct {
	Cause error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("model: sink error: %v", e.Cause)
}

func (e *SinkError) Unwrap() error { return e.Cause }

// DeviceInitError wraps a fatal device enumeration/creation failure.
type DeviceInitError struct {
	Cause error
}

func (e *DeviceInitError) Error() string {
	return fmt.Sprintf("model: device init error: %v", e.Cause)
}

func (e *DeviceInitError) Unwrap() error { return e.Cause }
