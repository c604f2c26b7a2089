package enginetest

import "github.com/gogpu/motion/engine"

// FileSpec is the JSON document Load accepts in place of a binary
// animation file.
type FileSpec struct {
	Artboards  []ArtboardSpec  `json:"artboards"`
	ViewModels []ViewModelSpec `json:"viewModels,omitempty"`
	Enums      []engine.Enum   `json:"enums,omitempty"`

	// Named out-of-band assets the file requires. Each name must be
	// resolvable through the AssetResolver passed to Load.
	ImageRefs []string `json:"imageRefs,omitempty"`
	AudioRefs []string `json:"audioRefs,omitempty"`
	FontRefs  []string `json:"fontRefs,omitempty"`
}

// ArtboardSpec describes one artboard blueprint.
type ArtboardSpec struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// ViewModel names the view model the artboard binds by default.
	ViewModel string `json:"viewModel,omitempty"`

	StateMachines []StateMachineSpec `json:"stateMachines,omitempty"`
	Animations    []AnimationSpec    `json:"animations,omitempty"`
}

// StateMachineSpec describes one state machine blueprint.
type StateMachineSpec struct {
	Name string `json:"name"`

	// SettleAfter is how many seconds of Advance the machine animates
	// before reporting settled. Zero settles on the first Advance.
	SettleAfter float64 `json:"settleAfter,omitempty"`

	Inputs []InputSpec `json:"inputs,omitempty"`
}

// InputSpec describes one state-machine input and its initial value.
// Type is "number", "boolean", or "trigger".
type InputSpec struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Number  float64 `json:"number,omitempty"`
	Boolean bool    `json:"boolean,omitempty"`
}

// AnimationSpec describes one linear animation blueprint.
type AnimationSpec struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

// ViewModelSpec describes one view-model blueprint.
type ViewModelSpec struct {
	Name       string         `json:"name"`
	Properties []PropertySpec `json:"properties,omitempty"`

	// Instances are the pre-authored instance names. The first is the
	// default.
	Instances []string `json:"instances,omitempty"`
}

// PropertySpec describes one view-model property and its default value.
// Type is the lower-cased engine.PropertyType name ("number", "string",
// "boolean", "color", "enum", "trigger", "list", "viewModel", "image").
type PropertySpec struct {
	Name string `json:"name"`
	Type string `json:"type"`

	Number  float64 `json:"number,omitempty"`
	Str     string  `json:"str,omitempty"`
	Boolean bool    `json:"boolean,omitempty"`
	Color   uint32  `json:"color,omitempty"`
	Enum    string  `json:"enum,omitempty"`

	// ViewModel names the blueprint for nested-instance and list
	// properties.
	ViewModel string `json:"viewModel,omitempty"`
}

var propertyTypes = map[string]engine.PropertyType{
	"number":    engine.PropertyNumber,
	"string":    engine.PropertyString,
	"boolean":   engine.PropertyBoolean,
	"color":     engine.PropertyColor,
	"enum":      engine.PropertyEnum,
	"trigger":   engine.PropertyTrigger,
	"list":      engine.PropertyList,
	"viewModel": engine.PropertyViewModel,
	"image":     engine.PropertyImage,
}

var inputTypes = map[string]engine.InputType{
	"number":  engine.InputNumber,
	"boolean": engine.InputBoolean,
	"trigger": engine.InputTrigger,
}
