package server

import (
	"fmt"

	"github.com/gogpu/motion/engine"
)

// CreateBlankViewModelInstance creates a zero-valued instance of a file's
// named view model. Produces ViewModelInstanceCreated or
// ViewModelInstanceError.
func (s *Server) CreateBlankViewModelInstance(requestID uint64, file Handle, viewModel string) {
	s.enqueue(Command{typ: cmdCreateBlankVMI, requestID: requestID, handle: file, name: viewModel})
}

// CreateDefaultViewModelInstance creates the default pre-authored
// instance of a file's named view model. Produces
// ViewModelInstanceCreated or ViewModelInstanceError.
func (s *Server) CreateDefaultViewModelInstance(requestID uint64, file Handle, viewModel string) {
	s.enqueue(Command{typ: cmdCreateDefaultVMI, requestID: requestID, handle: file, name: viewModel})
}

// CreateNamedViewModelInstance creates a named pre-authored instance of a
// file's named view model. Produces ViewModelInstanceCreated or
// ViewModelInstanceError.
func (s *Server) CreateNamedViewModelInstance(requestID uint64, file Handle, viewModel, instance string) {
	s.enqueue(Command{typ: cmdCreateNamedVMI, requestID: requestID, handle: file, name: viewModel, str: instance})
}

// CreateArtboardViewModelInstance creates the default instance of the
// view model an artboard binds by default. Produces
// ViewModelInstanceCreated or ViewModelInstanceError.
func (s *Server) CreateArtboardViewModelInstance(requestID uint64, file, artboard Handle) {
	s.enqueue(Command{typ: cmdCreateArtboardVMI, requestID: requestID, handle: file, owner: artboard})
}

// DeleteViewModelInstance releases one instance handle. Nested instances
// previously surfaced through GetInstanceProperty or GetListItem keep
// their own handles and are deleted independently; subscriptions on the
// deleted handle are dropped. Produces ViewModelInstanceDeleted or
// ViewModelInstanceError.
func (s *Server) DeleteViewModelInstance(requestID uint64, vmi Handle) {
	s.enqueue(Command{typ: cmdDeleteVMI, requestID: requestID, handle: vmi})
}

// GetProperty reads the typed property at path. Produces PropertyValue or
// PropertyError.
func (s *Server) GetProperty(requestID uint64, vmi Handle, path string, t engine.PropertyType) {
	s.enqueue(Command{typ: cmdGetProperty, requestID: requestID, handle: vmi, path: path, propType: t})
}

// SetProperty writes the typed property at path. value.Type selects the
// accessor and value field. Produces PropertyError on failure; success is
// silent.
func (s *Server) SetProperty(requestID uint64, vmi Handle, path string, value PropertyValue) {
	str := value.Str
	if value.Type == engine.PropertyEnum {
		str = value.EnumValue
	}
	s.enqueue(Command{
		typ: cmdSetProperty, requestID: requestID, handle: vmi, path: path,
		propType: value.Type, num: value.Number, str: str,
		boolean: value.Bool, color: value.Color,
	})
}

// FireProperty fires the trigger property at path.
// Produces PropertyError on failure; success is silent.
func (s *Server) FireProperty(requestID uint64, vmi Handle, path string) {
	s.enqueue(Command{typ: cmdFireProperty, requestID: requestID, handle: vmi, path: path})
}

// GetListSize reads the length of the list property at path.
// Produces ListSize or PropertyError.
func (s *Server) GetListSize(requestID uint64, vmi Handle, path string) {
	s.enqueue(Command{typ: cmdGetListSize, requestID: requestID, handle: vmi, path: path})
}

// GetListItem surfaces the instance at index in the list property at path
// under a new handle. Produces ViewModelInstanceCreated or PropertyError.
func (s *Server) GetListItem(requestID uint64, vmi Handle, path string, index int) {
	s.enqueue(Command{typ: cmdGetListItem, requestID: requestID, handle: vmi, path: path, index: index})
}

// ListAppend appends the instance item to the list property at path.
// Produces PropertyError on failure; success is silent.
func (s *Server) ListAppend(requestID uint64, vmi Handle, path string, item Handle) {
	s.enqueue(Command{typ: cmdListAppend, requestID: requestID, handle: vmi, path: path, owner: item})
}

// ListInsert inserts the instance item at index in the list property at
// path. Produces PropertyError on failure; success is silent.
func (s *Server) ListInsert(requestID uint64, vmi Handle, path string, item Handle, index int) {
	s.enqueue(Command{typ: cmdListInsert, requestID: requestID, handle: vmi, path: path, owner: item, index: index})
}

// ListRemove removes the item at index from the list property at path.
// Produces PropertyError on failure; success is silent.
func (s *Server) ListRemove(requestID uint64, vmi Handle, path string, index int) {
	s.enqueue(Command{typ: cmdListRemove, requestID: requestID, handle: vmi, path: path, index: index})
}

// ListSwap swaps the items at indices i and j in the list property at
// path. Produces PropertyError on failure; success is silent.
func (s *Server) ListSwap(requestID uint64, vmi Handle, path string, i, j int) {
	s.enqueue(Command{typ: cmdListSwap, requestID: requestID, handle: vmi, path: path, index: i, index2: j})
}

// GetInstanceProperty surfaces the nested instance at path under a new
// handle. Produces ViewModelInstanceCreated or PropertyError.
func (s *Server) GetInstanceProperty(requestID uint64, vmi Handle, path string) {
	s.enqueue(Command{typ: cmdGetInstanceProperty, requestID: requestID, handle: vmi, path: path})
}

// SetInstanceProperty replaces the nested instance at path with the
// instance value. Produces PropertyError on failure; success is silent.
func (s *Server) SetInstanceProperty(requestID uint64, vmi Handle, path string, value Handle) {
	s.enqueue(Command{typ: cmdSetInstanceProperty, requestID: requestID, handle: vmi, path: path, owner: value})
}

// SetImageProperty replaces the image property at path with a decoded
// image asset. Produces PropertyError on failure; success is silent.
func (s *Server) SetImageProperty(requestID uint64, vmi Handle, path string, image Handle) {
	s.enqueue(Command{typ: cmdSetImageProperty, requestID: requestID, handle: vmi, path: path, owner: image})
}

// SubscribeProperty starts forwarding changes of the typed property at
// path as PropertyUpdated messages (TriggerFired for trigger properties).
// Subscribing an already-subscribed (path, type) pair is a no-op.
// Produces PropertyError when the property cannot be subscribed.
func (s *Server) SubscribeProperty(requestID uint64, vmi Handle, path string, t engine.PropertyType) {
	s.enqueue(Command{typ: cmdSubscribeProperty, requestID: requestID, handle: vmi, path: path, propType: t})
}

// UnsubscribeProperty stops forwarding changes for (path, type).
// Unsubscribing a pair that was never subscribed is a no-op.
func (s *Server) UnsubscribeProperty(requestID uint64, vmi Handle, path string, t engine.PropertyType) {
	s.enqueue(Command{typ: cmdUnsubscribeProperty, requestID: requestID, handle: vmi, path: path, propType: t})
}

// registerInstance allocates a handle for a freshly minted instance and
// posts its creation message.
func (s *Server) registerInstance(requestID uint64, vmi engine.ViewModelInstance) {
	h := s.handles.Allocate()
	s.instances[h] = vmi
	s.post(Message{Type: MsgViewModelInstanceCreated, RequestID: requestID, Handle: h, Name: vmi.Name()})
}

func (s *Server) applyCreateVMI(c Command) {
	fail := func(err error) {
		s.post(Message{Type: MsgViewModelInstanceError, RequestID: c.requestID, Err: err.Error()})
	}
	f, ok := s.files[c.handle]
	if !ok {
		fail(fmt.Errorf("%w: file %d", ErrInvalidHandle, c.handle))
		return
	}
	var (
		vm  engine.ViewModel
		err error
	)
	if c.typ == cmdCreateArtboardVMI {
		e, ok := s.artboards[c.owner]
		if !ok {
			fail(fmt.Errorf("%w: artboard %d", ErrInvalidHandle, c.owner))
			return
		}
		vm, err = f.DefaultViewModel(e.artboard)
	} else {
		vm, err = f.ViewModelNamed(c.name)
	}
	if err != nil {
		fail(err)
		return
	}
	var vmi engine.ViewModelInstance
	switch c.typ {
	case cmdCreateBlankVMI:
		vmi, err = vm.NewBlankInstance()
	case cmdCreateNamedVMI:
		vmi, err = vm.NewInstanceNamed(c.str)
	default: // cmdCreateDefaultVMI, cmdCreateArtboardVMI
		vmi, err = vm.NewDefaultInstance()
	}
	if err != nil {
		fail(err)
		return
	}
	s.registerInstance(c.requestID, vmi)
}

func (s *Server) applyDeleteVMI(c Command) {
	vmi, ok := s.instances[c.handle]
	if !ok {
		s.post(Message{Type: MsgViewModelInstanceError, RequestID: c.requestID, Err: fmt.Sprintf("invalid view model instance handle %d", c.handle)})
		return
	}
	delete(s.instances, c.handle)
	for k := range s.subs {
		if k.handle == c.handle {
			vmi.Unsubscribe(k.path, k.typ)
			delete(s.subs, k)
		}
	}
	vmi.Close()
	s.post(Message{Type: MsgViewModelInstanceDeleted, RequestID: c.requestID, Handle: c.handle})
}

// lookupInstance resolves an instance handle for a property operation,
// posting PropertyError on a miss.
func (s *Server) lookupInstance(c Command) (engine.ViewModelInstance, bool) {
	vmi, ok := s.instances[c.handle]
	if !ok {
		s.post(Message{
			Type:      MsgPropertyError,
			RequestID: c.requestID,
			Path:      c.path,
			Err:       fmt.Sprintf("invalid view model instance handle %d", c.handle),
		})
	}
	return vmi, ok
}

func (s *Server) propertyError(c Command, err error) {
	s.post(Message{
		Type:      MsgPropertyError,
		RequestID: c.requestID,
		Handle:    c.handle,
		Path:      c.path,
		Err:       fmt.Sprintf("property %q: %v", c.path, err),
	})
}

func (s *Server) applyGetProperty(c Command) {
	vmi, ok := s.lookupInstance(c)
	if !ok {
		return
	}
	v := PropertyValue{Type: c.propType}
	var err error
	switch c.propType {
	case engine.PropertyNumber:
		v.Number, err = vmi.Number(c.path)
	case engine.PropertyString:
		v.Str, err = vmi.String(c.path)
	case engine.PropertyBoolean:
		v.Bool, err = vmi.Boolean(c.path)
	case engine.PropertyColor:
		v.Color, err = vmi.Color(c.path)
	case engine.PropertyEnum:
		v.EnumValue, err = vmi.Enum(c.path)
	default:
		err = fmt.Errorf("%s is not a value type", c.propType)
	}
	if err != nil {
		s.propertyError(c, err)
		return
	}
	s.post(Message{Type: MsgPropertyValue, RequestID: c.requestID, Handle: c.handle, Path: c.path, Value: v})
}

func (s *Server) applySetProperty(c Command) {
	vmi, ok := s.lookupInstance(c)
	if !ok {
		return
	}
	var err error
	switch c.propType {
	case engine.PropertyNumber:
		err = vmi.SetNumber(c.path, c.num)
	case engine.PropertyString:
		err = vmi.SetString(c.path, c.str)
	case engine.PropertyBoolean:
		err = vmi.SetBoolean(c.path, c.boolean)
	case engine.PropertyColor:
		err = vmi.SetColor(c.path, c.color)
	case engine.PropertyEnum:
		err = vmi.SetEnum(c.path, c.str)
	default:
		err = fmt.Errorf("%s is not a value type", c.propType)
	}
	if err != nil {
		s.propertyError(c, err)
	}
}

func (s *Server) applyFireProperty(c Command) {
	vmi, ok := s.lookupInstance(c)
	if !ok {
		return
	}
	if err := vmi.Fire(c.path); err != nil {
		s.propertyError(c, err)
	}
}

func (s *Server) applyListOp(c Command) {
	vmi, ok := s.lookupInstance(c)
	if !ok {
		return
	}
	switch c.typ {
	case cmdGetListSize:
		n, err := vmi.ListSize(c.path)
		if err != nil {
			s.propertyError(c, err)
			return
		}
		s.post(Message{Type: MsgListSize, RequestID: c.requestID, Handle: c.handle, Path: c.path, Size: n})
	case cmdGetListItem:
		item, err := vmi.ListItem(c.path, c.index)
		if err != nil {
			s.propertyError(c, err)
			return
		}
		s.registerInstance(c.requestID, item)
	case cmdListAppend, cmdListInsert:
		item, ok := s.instances[c.owner]
		if !ok {
			s.propertyError(c, fmt.Errorf("%w: item %d", ErrInvalidHandle, c.owner))
			return
		}
		var err error
		if c.typ == cmdListAppend {
			err = vmi.ListAppend(c.path, item)
		} else {
			err = vmi.ListInsert(c.path, item, c.index)
		}
		if err != nil {
			s.propertyError(c, err)
		}
	case cmdListRemove:
		if err := vmi.ListRemove(c.path, c.index); err != nil {
			s.propertyError(c, err)
		}
	case cmdListSwap:
		if err := vmi.ListSwap(c.path, c.index, c.index2); err != nil {
			s.propertyError(c, err)
		}
	}
}

func (s *Server) applyInstanceProperty(c Command) {
	vmi, ok := s.lookupInstance(c)
	if !ok {
		return
	}
	if c.typ == cmdGetInstanceProperty {
		nested, err := vmi.Instance(c.path)
		if err != nil {
			s.propertyError(c, err)
			return
		}
		s.registerInstance(c.requestID, nested)
		return
	}
	value, ok := s.instances[c.owner]
	if !ok {
		s.propertyError(c, fmt.Errorf("%w: instance %d", ErrInvalidHandle, c.owner))
		return
	}
	if err := vmi.SetInstance(c.path, value); err != nil {
		s.propertyError(c, err)
	}
}

func (s *Server) applySetImageProperty(c Command) {
	vmi, ok := s.lookupInstance(c)
	if !ok {
		return
	}
	img, ok := s.images[c.owner]
	if !ok {
		s.propertyError(c, fmt.Errorf("%w: image %d", ErrInvalidHandle, c.owner))
		return
	}
	if err := vmi.SetImage(c.path, img); err != nil {
		s.propertyError(c, err)
	}
}

func (s *Server) applySubscription(c Command) {
	vmi, ok := s.lookupInstance(c)
	if !ok {
		return
	}
	k := subKey{handle: c.handle, path: c.path, typ: c.propType}
	if c.typ == cmdUnsubscribeProperty {
		if _, ok := s.subs[k]; !ok {
			return
		}
		delete(s.subs, k)
		vmi.Unsubscribe(c.path, c.propType)
		return
	}
	if _, ok := s.subs[k]; ok {
		return
	}
	handle := c.handle
	err := vmi.Subscribe(c.path, c.propType, func(ev engine.PropertyEvent) {
		// Callbacks fire on the server goroutine: every property
		// mutation flows through a command handler, so posting here is
		// ordered with the mutation that caused it.
		if ev.Type == engine.PropertyTrigger {
			s.post(Message{Type: MsgTriggerFired, Handle: handle, Path: ev.Path})
			return
		}
		s.post(Message{
			Type:   MsgPropertyUpdated,
			Handle: handle,
			Path:   ev.Path,
			Value: PropertyValue{
				Type:      ev.Type,
				Number:    ev.Number,
				Str:       ev.Str,
				Bool:      ev.Bool,
				Color:     ev.Color,
				EnumValue: ev.EnumValue,
			},
		})
	})
	if err != nil {
		s.propertyError(c, err)
		return
	}
	s.subs[k] = struct{}{}
}
