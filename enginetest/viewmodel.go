package enginetest

import (
	"fmt"
	"strings"

	"github.com/gogpu/motion/engine"
)

// ViewModel is one view-model blueprint from a FileSpec.
type ViewModel struct {
	Spec ViewModelSpec

	file *File
}

var _ engine.ViewModel = (*ViewModel)(nil)

func (vm *ViewModel) Name() string { return vm.Spec.Name }

func (vm *ViewModel) InstanceNames() []string {
	return vm.Spec.Instances
}

func (vm *ViewModel) Properties() []engine.Property {
	props := make([]engine.Property, len(vm.Spec.Properties))
	for i, p := range vm.Spec.Properties {
		props[i] = engine.Property{Name: p.Name, Type: propertyTypes[p.Type]}
	}
	return props
}

func (vm *ViewModel) NewBlankInstance() (engine.ViewModelInstance, error) {
	return vm.newInstance("", false), nil
}

func (vm *ViewModel) NewDefaultInstance() (engine.ViewModelInstance, error) {
	name := ""
	if len(vm.Spec.Instances) > 0 {
		name = vm.Spec.Instances[0]
	}
	return vm.newInstance(name, true), nil
}

func (vm *ViewModel) NewInstanceNamed(name string) (engine.ViewModelInstance, error) {
	for _, n := range vm.Spec.Instances {
		if n == name {
			return vm.newInstance(name, true), nil
		}
	}
	return nil, fmt.Errorf("%w: instance %q of view model %q", engine.ErrNotFound, name, vm.Spec.Name)
}

func (vm *ViewModel) NewInstanceAt(index int) (engine.ViewModelInstance, error) {
	if index < 0 || index >= len(vm.Spec.Instances) {
		return nil, fmt.Errorf("%w: instance index %d", engine.ErrOutOfRange, index)
	}
	return vm.newInstance(vm.Spec.Instances[index], true), nil
}

// newInstance builds an instance. Pre-authored instances start from the
// blueprint's default values; blank instances start zeroed.
func (vm *ViewModel) newInstance(name string, defaults bool) *Instance {
	inst := &Instance{
		VMName: vm.Spec.Name,
		name:   name,
		file:   vm.file,
		props:  make(map[string]*propValue, len(vm.Spec.Properties)),
		subs:   make(map[instSubKey]func(engine.PropertyEvent)),
	}
	for _, p := range vm.Spec.Properties {
		v := &propValue{typ: propertyTypes[p.Type], vmName: p.ViewModel}
		if defaults {
			v.num, v.str, v.b, v.color, v.enum = p.Number, p.Str, p.Boolean, p.Color, p.Enum
		}
		inst.props[p.Name] = v
		inst.order = append(inst.order, engine.Property{Name: p.Name, Type: v.typ})
	}
	return inst
}

type propValue struct {
	typ   engine.PropertyType
	num   float64
	str   string
	b     bool
	color uint32
	enum  string

	// viewModel and list properties
	vmName string
	inst   engine.ViewModelInstance
	list   []engine.ViewModelInstance

	// image properties
	img engine.ImageAsset
}

type instSubKey struct {
	path string
	typ  engine.PropertyType
}

// Instance is one view-model instance. Property mutations fire
// subscriptions registered on this instance synchronously.
type Instance struct {
	VMName string
	Closed bool

	// Fired counts trigger fires by path.
	Fired map[string]int

	name  string
	file  *File
	props map[string]*propValue
	order []engine.Property
	subs  map[instSubKey]func(engine.PropertyEvent)
}

var _ engine.ViewModelInstance = (*Instance)(nil)

func (in *Instance) Name() string { return in.name }

func (in *Instance) Properties() []engine.Property {
	return in.order
}

// resolve walks slash-separated path segments through nested instances
// and returns the owning instance and the typed leaf property.
func (in *Instance) resolve(path string, want engine.PropertyType) (*Instance, *propValue, error) {
	owner := in
	segs := strings.Split(path, "/")
	for _, seg := range segs[:len(segs)-1] {
		v, ok := owner.props[seg]
		if !ok {
			return nil, nil, fmt.Errorf("%w: property %q", engine.ErrNotFound, seg)
		}
		if v.typ != engine.PropertyViewModel {
			return nil, nil, fmt.Errorf("%w: %q is %s, not ViewModel", engine.ErrTypeMismatch, seg, v.typ)
		}
		nested, err := owner.nested(v)
		if err != nil {
			return nil, nil, err
		}
		owner = nested
	}
	leaf := segs[len(segs)-1]
	v, ok := owner.props[leaf]
	if !ok {
		return nil, nil, fmt.Errorf("%w: property %q", engine.ErrNotFound, leaf)
	}
	if v.typ != want {
		return nil, nil, fmt.Errorf("%w: %q is %s, not %s", engine.ErrTypeMismatch, leaf, v.typ, want)
	}
	return owner, v, nil
}

// nested mints the nested instance behind a viewModel property on first
// access and caches it.
func (in *Instance) nested(v *propValue) (*Instance, error) {
	if v.inst == nil {
		vm, err := in.file.ViewModelNamed(v.vmName)
		if err != nil {
			return nil, err
		}
		v.inst, _ = vm.(*ViewModel).NewBlankInstance()
	}
	ti, ok := v.inst.(*Instance)
	if !ok {
		return nil, fmt.Errorf("%w: foreign nested instance", engine.ErrUnsupported)
	}
	return ti, nil
}

// notify fires the subscription for (path, type) registered on the
// instance the caller addressed, if any.
func (in *Instance) notify(path string, ev engine.PropertyEvent) {
	if fn, ok := in.subs[instSubKey{path: path, typ: ev.Type}]; ok {
		ev.Path = path
		fn(ev)
	}
}

func (in *Instance) Number(path string) (float64, error) {
	_, v, err := in.resolve(path, engine.PropertyNumber)
	if err != nil {
		return 0, err
	}
	return v.num, nil
}

func (in *Instance) SetNumber(path string, value float64) error {
	_, v, err := in.resolve(path, engine.PropertyNumber)
	if err != nil {
		return err
	}
	v.num = value
	in.notify(path, engine.PropertyEvent{Type: engine.PropertyNumber, Number: value})
	return nil
}

func (in *Instance) String(path string) (string, error) {
	_, v, err := in.resolve(path, engine.PropertyString)
	if err != nil {
		return "", err
	}
	return v.str, nil
}

func (in *Instance) SetString(path string, value string) error {
	_, v, err := in.resolve(path, engine.PropertyString)
	if err != nil {
		return err
	}
	v.str = value
	in.notify(path, engine.PropertyEvent{Type: engine.PropertyString, Str: value})
	return nil
}

func (in *Instance) Boolean(path string) (bool, error) {
	_, v, err := in.resolve(path, engine.PropertyBoolean)
	if err != nil {
		return false, err
	}
	return v.b, nil
}

func (in *Instance) SetBoolean(path string, value bool) error {
	_, v, err := in.resolve(path, engine.PropertyBoolean)
	if err != nil {
		return err
	}
	v.b = value
	in.notify(path, engine.PropertyEvent{Type: engine.PropertyBoolean, Bool: value})
	return nil
}

func (in *Instance) Color(path string) (uint32, error) {
	_, v, err := in.resolve(path, engine.PropertyColor)
	if err != nil {
		return 0, err
	}
	return v.color, nil
}

func (in *Instance) SetColor(path string, value uint32) error {
	_, v, err := in.resolve(path, engine.PropertyColor)
	if err != nil {
		return err
	}
	v.color = value
	in.notify(path, engine.PropertyEvent{Type: engine.PropertyColor, Color: value})
	return nil
}

func (in *Instance) Enum(path string) (string, error) {
	_, v, err := in.resolve(path, engine.PropertyEnum)
	if err != nil {
		return "", err
	}
	return v.enum, nil
}

func (in *Instance) SetEnum(path string, value string) error {
	_, v, err := in.resolve(path, engine.PropertyEnum)
	if err != nil {
		return err
	}
	v.enum = value
	in.notify(path, engine.PropertyEvent{Type: engine.PropertyEnum, EnumValue: value})
	return nil
}

func (in *Instance) Fire(path string) error {
	_, _, err := in.resolve(path, engine.PropertyTrigger)
	if err != nil {
		return err
	}
	if in.Fired == nil {
		in.Fired = make(map[string]int)
	}
	in.Fired[path]++
	in.notify(path, engine.PropertyEvent{Type: engine.PropertyTrigger})
	return nil
}

func (in *Instance) Instance(path string) (engine.ViewModelInstance, error) {
	owner, v, err := in.resolve(path, engine.PropertyViewModel)
	if err != nil {
		return nil, err
	}
	return owner.nested(v)
}

func (in *Instance) SetInstance(path string, value engine.ViewModelInstance) error {
	_, v, err := in.resolve(path, engine.PropertyViewModel)
	if err != nil {
		return err
	}
	v.inst = value
	return nil
}

func (in *Instance) ListSize(path string) (int, error) {
	_, v, err := in.resolve(path, engine.PropertyList)
	if err != nil {
		return 0, err
	}
	return len(v.list), nil
}

func (in *Instance) ListItem(path string, index int) (engine.ViewModelInstance, error) {
	_, v, err := in.resolve(path, engine.PropertyList)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(v.list) {
		return nil, fmt.Errorf("%w: list index %d of %d", engine.ErrOutOfRange, index, len(v.list))
	}
	return v.list[index], nil
}

func (in *Instance) ListAppend(path string, value engine.ViewModelInstance) error {
	_, v, err := in.resolve(path, engine.PropertyList)
	if err != nil {
		return err
	}
	v.list = append(v.list, value)
	return nil
}

func (in *Instance) ListInsert(path string, value engine.ViewModelInstance, index int) error {
	_, v, err := in.resolve(path, engine.PropertyList)
	if err != nil {
		return err
	}
	if index < 0 || index > len(v.list) {
		return fmt.Errorf("%w: list index %d of %d", engine.ErrOutOfRange, index, len(v.list))
	}
	v.list = append(v.list[:index], append([]engine.ViewModelInstance{value}, v.list[index:]...)...)
	return nil
}

func (in *Instance) ListRemove(path string, index int) error {
	_, v, err := in.resolve(path, engine.PropertyList)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(v.list) {
		return fmt.Errorf("%w: list index %d of %d", engine.ErrOutOfRange, index, len(v.list))
	}
	v.list = append(v.list[:index], v.list[index+1:]...)
	return nil
}

func (in *Instance) ListSwap(path string, i, j int) error {
	_, v, err := in.resolve(path, engine.PropertyList)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(v.list) || j < 0 || j >= len(v.list) {
		return fmt.Errorf("%w: swap %d,%d of %d", engine.ErrOutOfRange, i, j, len(v.list))
	}
	v.list[i], v.list[j] = v.list[j], v.list[i]
	return nil
}

func (in *Instance) SetImage(path string, img engine.ImageAsset) error {
	_, v, err := in.resolve(path, engine.PropertyImage)
	if err != nil {
		return err
	}
	v.img = img
	return nil
}

func (in *Instance) Subscribe(path string, t engine.PropertyType, fn func(engine.PropertyEvent)) error {
	if _, _, err := in.resolve(path, t); err != nil {
		return err
	}
	in.subs[instSubKey{path: path, typ: t}] = fn
	return nil
}

func (in *Instance) Unsubscribe(path string, t engine.PropertyType) error {
	delete(in.subs, instSubKey{path: path, typ: t})
	return nil
}

func (in *Instance) Close() {
	in.Closed = true
}
