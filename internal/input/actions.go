package input

// BindingKind discriminates the payload of a Binding.
type BindingKind int

const (
	// BindKey binds a keyboard key.
	BindKey BindingKind = iota
	// BindMouse binds a mouse button.
	BindMouse
	// BindGamepad binds a gamepad button, optionally scoped to one joystick.
	BindGamepad
)

// Binding maps one raw input unit to an action. Immutable once created.
type Binding struct {
	Kind     BindingKind
	Key      Key
	Mouse    MouseButton
	Button   GamepadButton
	Joystick JoystickID // AnyJoystick matches every known joystick
}

// action is an ordered list of bindings. An action with no bindings is never
// active.
type action struct {
	bindings []Binding
}

// ActionMap resolves symbolic action names against a Registry.
//
// Each query ORs the states of the action's bindings in insertion order and
// short-circuits on the first match. The map only stores raw input
// identifiers; button records stay owned by the registry.
type ActionMap struct {
	registry *Registry
	actions  map[string]*action
}

// NewActionMap creates an empty action map querying the given registry.
func NewActionMap(registry *Registry) *ActionMap {
	return &ActionMap{
		registry: registry,
		actions:  make(map[string]*action),
	}
}

// BindKey appends a keyboard binding to the named action.
func (m *ActionMap) BindKey(name string, k Key) {
	a := m.action(name)
	a.bindings = append(a.bindings, Binding{Kind: BindKey, Key: k})
}

// BindMouseButton appends a mouse button binding to the named action.
func (m *ActionMap) BindMouseButton(name string, b MouseButton) {
	a := m.action(name)
	a.bindings = append(a.bindings, Binding{Kind: BindMouse, Mouse: b})
}

// BindGamepadButton appends a gamepad button binding to the named action.
// Pass AnyJoystick to match the button on whichever joystick reports it.
func (m *ActionMap) BindGamepadButton(name string, b GamepadButton, id JoystickID) {
	a := m.action(name)
	a.bindings = append(a.bindings, Binding{Kind: BindGamepad, Button: b, Joystick: id})
}

// IsClicked reports whether any binding of the action was clicked this frame.
func (m *ActionMap) IsClicked(name string) bool {
	return m.anyBinding(name, func(b Binding) bool {
		switch b.Kind {
		case BindKey:
			return m.registry.IsKeyClicked(b.Key)
		case BindMouse:
			return m.registry.IsMouseClicked(b.Mouse)
		case BindGamepad:
			return m.anyJoystick(b, m.registry.IsGamepadClicked)
		default:
			return false
		}
	})
}

// IsHeld reports whether any binding of the action is held.
func (m *ActionMap) IsHeld(name string) bool {
	return m.anyBinding(name, func(b Binding) bool {
		switch b.Kind {
		case BindKey:
			return m.registry.IsKeyHeld(b.Key)
		case BindMouse:
			return m.registry.IsMouseHeld(b.Mouse)
		case BindGamepad:
			return m.anyJoystick(b, m.registry.IsGamepadHeld)
		default:
			return false
		}
	})
}

// IsDown reports whether any binding of the action is currently pressed.
func (m *ActionMap) IsDown(name string) bool {
	return m.anyBinding(name, func(b Binding) bool {
		switch b.Kind {
		case BindKey:
			return m.registry.IsKeyDown(b.Key)
		case BindMouse:
			return m.registry.IsMouseDown(b.Mouse)
		case BindGamepad:
			return m.anyJoystick(b, m.registry.IsGamepadDown)
		default:
			return false
		}
	})
}

// IsReleased reports whether any binding of the action was released this
// frame after a hold.
func (m *ActionMap) IsReleased(name string) bool {
	return m.anyBinding(name, func(b Binding) bool {
		switch b.Kind {
		case BindKey:
			return m.registry.IsKeyReleased(b.Key)
		case BindMouse:
			return m.registry.IsMouseReleased(b.Mouse)
		case BindGamepad:
			return m.anyJoystick(b, m.registry.IsGamepadReleased)
		default:
			return false
		}
	})
}

// anyBinding evaluates pred over the action's bindings in insertion order,
// short-circuiting on the first match. Unknown actions report false.
func (m *ActionMap) anyBinding(name string, pred func(Binding) bool) bool {
	a, ok := m.actions[name]
	if !ok {
		return false
	}
	for _, b := range a.bindings {
		if pred(b) {
			return true
		}
	}
	return false
}

// anyJoystick resolves the wildcard joystick: a binding scoped to
// AnyJoystick is satisfied by any currently known joystick, while a concrete
// id queries that joystick alone.
func (m *ActionMap) anyJoystick(b Binding, pred func(JoystickID, GamepadButton) bool) bool {
	if b.Joystick != AnyJoystick {
		return pred(b.Joystick, b.Button)
	}
	for _, id := range m.registry.Joysticks() {
		if pred(id, b.Button) {
			return true
		}
	}
	return false
}

func (m *ActionMap) action(name string) *action {
	a, ok := m.actions[name]
	if !ok {
		a = &action{}
		m.actions[name] = a
	}
	return a
}
