package engine

// PropertyType identifies the type of a view-model property.
type PropertyType uint8

const (
	PropertyNumber PropertyType = iota
	PropertyString
	PropertyBoolean
	PropertyColor
	PropertyEnum
	PropertyTrigger
	PropertyList
	PropertyViewModel
	PropertyImage
)

// String returns a human-readable name for the property type.
func (t PropertyType) String() string {
	switch t {
	case PropertyNumber:
		return "Number"
	case PropertyString:
		return "String"
	case PropertyBoolean:
		return "Boolean"
	case PropertyColor:
		return "Color"
	case PropertyEnum:
		return "Enum"
	case PropertyTrigger:
		return "Trigger"
	case PropertyList:
		return "List"
	case PropertyViewModel:
		return "ViewModel"
	case PropertyImage:
		return "Image"
	}
	return "Unknown"
}

// Property describes one view-model property: its path-addressable name
// and its type.
type Property struct {
	Name string
	Type PropertyType
}

// PropertyEvent reports a change to a subscribed property. Exactly one of
// the value fields is meaningful, selected by Type; trigger events carry
// no value at all.
type PropertyEvent struct {
	Path      string
	Type      PropertyType
	Number    float64
	Str       string
	Bool      bool
	Color     uint32
	EnumValue string
}

// ViewModel is a data-binding blueprint defined by a file. It mints
// ViewModelInstance values.
type ViewModel interface {
	// Name returns the view model's name.
	Name() string

	// InstanceNames returns the names of pre-authored instances.
	InstanceNames() []string

	// Properties describes the properties every instance exposes.
	Properties() []Property

	// NewBlankInstance creates an instance with zero-valued properties.
	NewBlankInstance() (ViewModelInstance, error)

	// NewDefaultInstance creates the default pre-authored instance.
	NewDefaultInstance() (ViewModelInstance, error)

	// NewInstanceNamed creates the named pre-authored instance.
	NewInstanceNamed(name string) (ViewModelInstance, error)

	// NewInstanceAt creates the pre-authored instance at the given index.
	NewInstanceAt(index int) (ViewModelInstance, error)
}

// ViewModelInstance exposes typed properties addressed by slash-separated
// paths ("nested/child/value" descends through nested instances).
//
// Nested-instance and list properties may form reference cycles; Close
// releases only the instance itself and never traverses reachable
// instances.
type ViewModelInstance interface {
	// Name returns the instance name ("" for blank instances).
	Name() string

	// Properties describes the instance's own properties.
	Properties() []Property

	Number(path string) (float64, error)
	SetNumber(path string, v float64) error

	String(path string) (string, error)
	SetString(path string, v string) error

	Boolean(path string) (bool, error)
	SetBoolean(path string, v bool) error

	// Color values are packed 0xAARRGGBB.
	Color(path string) (uint32, error)
	SetColor(path string, v uint32) error

	Enum(path string) (string, error)
	SetEnum(path string, v string) error

	// Fire fires a trigger property.
	Fire(path string) error

	// Instance returns the nested instance at path.
	Instance(path string) (ViewModelInstance, error)

	// SetInstance replaces the nested instance at path.
	SetInstance(path string, v ViewModelInstance) error

	ListSize(path string) (int, error)
	ListItem(path string, index int) (ViewModelInstance, error)
	ListAppend(path string, v ViewModelInstance) error
	ListInsert(path string, v ViewModelInstance, index int) error
	ListRemove(path string, index int) error
	ListSwap(path string, i, j int) error

	// SetImage replaces the image property at path with a decoded asset.
	SetImage(path string, img ImageAsset) error

	// Subscribe registers fn to be called whenever the property at path
	// changes. Calls happen synchronously on the goroutine mutating the
	// property. Subscribing an already-subscribed (path, type) pair
	// replaces the callback.
	Subscribe(path string, t PropertyType, fn func(PropertyEvent)) error

	// Unsubscribe removes the subscription for (path, type), if any.
	Unsubscribe(path string, t PropertyType) error

	// Close releases the instance. Nested instances stay valid.
	Close()
}
