package server

import (
	"reflect"
	"testing"

	"github.com/gogpu/motion/engine"
)

// createVMI creates the default Dashboard instance and returns its handle.
func createVMI(t *testing.T, s *Server, file Handle) Handle {
	t.Helper()
	s.CreateDefaultViewModelInstance(1, file, "Dashboard")
	m := drainOne(t, s)
	if m.Type != MsgViewModelInstanceCreated {
		t.Fatalf("got %+v, want ViewModelInstanceCreated", m)
	}
	return m.Handle
}

func TestServer_FileIntrospection(t *testing.T) {
	s, _ := newTestServer(t)
	file := loadSample(t, s)

	s.GetViewModelNames(2, file)
	m := drainOne(t, s)
	if want := []string{"Dashboard", "Item"}; !reflect.DeepEqual(m.Names, want) {
		t.Errorf("view model names = %v, want %v", m.Names, want)
	}

	s.GetViewModelInstanceNames(3, file, "Dashboard")
	m = drainOne(t, s)
	if want := []string{"Default", "Other"}; !reflect.DeepEqual(m.Names, want) {
		t.Errorf("instance names = %v, want %v", m.Names, want)
	}

	s.GetViewModelProperties(4, file, "Dashboard")
	m = drainOne(t, s)
	if m.Type != MsgViewModelPropertiesListed || len(m.Props) != 9 {
		t.Errorf("got %+v, want 9 Dashboard properties", m)
	}

	s.GetEnums(5, file)
	m = drainOne(t, s)
	if m.Type != MsgEnumsListed || len(m.Enums) != 1 || m.Enums[0].Name != "Mode" {
		t.Errorf("got %+v, want one enum Mode", m)
	}

	s.GetViewModelProperties(6, file, "Nope")
	if m := drainOne(t, s); m.Type != MsgFileError {
		t.Errorf("unknown view model: got %+v, want FileError", m)
	}
}

func TestServer_CreateViewModelInstances(t *testing.T) {
	s, _ := newTestServer(t)
	file := loadSample(t, s)

	tests := []struct {
		name     string
		create   func()
		wantName string
		wantErr  bool
	}{
		{"default", func() { s.CreateDefaultViewModelInstance(1, file, "Dashboard") }, "Default", false},
		{"named", func() { s.CreateNamedViewModelInstance(2, file, "Dashboard", "Other") }, "Other", false},
		{"blank", func() { s.CreateBlankViewModelInstance(3, file, "Dashboard") }, "", false},
		{"unknown instance", func() { s.CreateNamedViewModelInstance(4, file, "Dashboard", "Nope") }, "", true},
		{"unknown view model", func() { s.CreateDefaultViewModelInstance(5, file, "Nope") }, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.create()
			m := drainOne(t, s)
			if tt.wantErr {
				if m.Type != MsgViewModelInstanceError {
					t.Errorf("got %+v, want ViewModelInstanceError", m)
				}
				return
			}
			if m.Type != MsgViewModelInstanceCreated || m.Name != tt.wantName {
				t.Errorf("got %+v, want ViewModelInstanceCreated name %q", m, tt.wantName)
			}
		})
	}
}

func TestServer_CreateArtboardViewModelInstance(t *testing.T) {
	s, _ := newTestServer(t)
	file := loadSample(t, s)
	ab := s.CreateDefaultArtboardSync(file)

	// Main declares Dashboard as its default view model.
	s.CreateArtboardViewModelInstance(1, file, ab)
	m := drainOne(t, s)
	if m.Type != MsgViewModelInstanceCreated || m.Name != "Default" {
		t.Fatalf("got %+v, want ViewModelInstanceCreated Default", m)
	}

	// Alt declares none.
	alt := s.CreateArtboardByNameSync(file, "Alt")
	s.CreateArtboardViewModelInstance(2, file, alt)
	if m := drainOne(t, s); m.Type != MsgViewModelInstanceError {
		t.Errorf("got %+v, want ViewModelInstanceError", m)
	}
}

func TestServer_Properties(t *testing.T) {
	s, _ := newTestServer(t)
	file := loadSample(t, s)
	vmi := createVMI(t, s, file)

	get := func(path string, typ engine.PropertyType) Message {
		t.Helper()
		s.GetProperty(10, vmi, path, typ)
		return drainOne(t, s)
	}

	// Defaults from the fixture.
	if m := get("count", engine.PropertyNumber); m.Value.Number != 7 {
		t.Errorf("count = %+v, want 7", m.Value)
	}
	if m := get("title", engine.PropertyString); m.Value.Str != "hello" {
		t.Errorf("title = %+v, want hello", m.Value)
	}
	if m := get("tint", engine.PropertyColor); m.Value.Color != 0xFF336699 {
		t.Errorf("tint = %+v, want 0xFF336699", m.Value)
	}

	// Set then get round trip.
	s.SetProperty(11, vmi, "count", PropertyValue{Type: engine.PropertyNumber, Number: 42})
	if m := get("count", engine.PropertyNumber); m.Value.Number != 42 {
		t.Errorf("count after set = %+v, want 42", m.Value)
	}
	s.SetProperty(12, vmi, "mode", PropertyValue{Type: engine.PropertyEnum, EnumValue: "Slow"})
	if m := get("mode", engine.PropertyEnum); m.Value.EnumValue != "Slow" {
		t.Errorf("mode after set = %+v, want Slow", m.Value)
	}

	// Wrong accessor type.
	if m := get("count", engine.PropertyBoolean); m.Type != MsgPropertyError {
		t.Errorf("type mismatch: got %+v, want PropertyError", m)
	}

	// Unknown path.
	if m := get("missing", engine.PropertyNumber); m.Type != MsgPropertyError {
		t.Errorf("unknown path: got %+v, want PropertyError", m)
	}

	// Dead instance handle.
	s.SetProperty(13, Handle(9999), "count", PropertyValue{Type: engine.PropertyNumber})
	if m := drainOne(t, s); m.Type != MsgPropertyError {
		t.Errorf("dead handle: got %+v, want PropertyError", m)
	}
}

func TestServer_NestedInstance(t *testing.T) {
	s, _ := newTestServer(t)
	file := loadSample(t, s)
	vmi := createVMI(t, s, file)

	s.GetInstanceProperty(1, vmi, "child")
	m := drainOne(t, s)
	if m.Type != MsgViewModelInstanceCreated || m.Handle == vmi {
		t.Fatalf("got %+v, want a fresh instance handle", m)
	}
	child := m.Handle

	// The child is addressable both through its own handle and through a
	// nested path on the parent.
	s.SetProperty(2, child, "value", PropertyValue{Type: engine.PropertyNumber, Number: 5})
	s.GetProperty(3, vmi, "child/value", engine.PropertyNumber)
	m = drainOne(t, s)
	if m.Type != MsgPropertyValue || m.Value.Number != 5 {
		t.Errorf("child/value = %+v, want 5", m)
	}
}

func TestServer_ListOperations(t *testing.T) {
	s, _ := newTestServer(t)
	file := loadSample(t, s)
	vmi := createVMI(t, s, file)

	size := func() int {
		t.Helper()
		s.GetListSize(1, vmi, "items")
		m := drainOne(t, s)
		if m.Type != MsgListSize {
			t.Fatalf("got %+v, want ListSize", m)
		}
		return m.Size
	}

	if n := size(); n != 0 {
		t.Fatalf("initial size = %d, want 0", n)
	}

	s.CreateBlankViewModelInstance(2, file, "Item")
	item := drainOne(t, s).Handle

	s.ListAppend(3, vmi, "items", item)
	if n := size(); n != 1 {
		t.Fatalf("size after append = %d, want 1", n)
	}

	s.CreateBlankViewModelInstance(4, file, "Item")
	second := drainOne(t, s).Handle
	s.ListInsert(5, vmi, "items", second, 0)
	if n := size(); n != 2 {
		t.Fatalf("size after insert = %d, want 2", n)
	}

	// Items come back under fresh handles.
	s.GetListItem(6, vmi, "items", 0)
	m := drainOne(t, s)
	if m.Type != MsgViewModelInstanceCreated {
		t.Fatalf("got %+v, want ViewModelInstanceCreated", m)
	}

	s.GetListItem(7, vmi, "items", 5)
	if m := drainOne(t, s); m.Type != MsgPropertyError {
		t.Errorf("out of range: got %+v, want PropertyError", m)
	}

	s.ListSwap(8, vmi, "items", 0, 1)
	s.ListRemove(9, vmi, "items", 0)
	if n := size(); n != 1 {
		t.Errorf("size after remove = %d, want 1", n)
	}

	s.ListRemove(10, vmi, "items", 7)
	if m := drainOne(t, s); m.Type != MsgPropertyError {
		t.Errorf("remove out of range: got %+v, want PropertyError", m)
	}
}

func TestServer_Subscriptions(t *testing.T) {
	s, _ := newTestServer(t)
	file := loadSample(t, s)
	vmi := createVMI(t, s, file)

	s.SubscribeProperty(1, vmi, "count", engine.PropertyNumber)
	s.SetProperty(2, vmi, "count", PropertyValue{Type: engine.PropertyNumber, Number: 9})
	m := drainOne(t, s)
	if m.Type != MsgPropertyUpdated || m.Handle != vmi || m.Path != "count" || m.Value.Number != 9 {
		t.Fatalf("got %+v, want PropertyUpdated count=9", m)
	}
	if m.RequestID != 0 {
		t.Errorf("unsolicited update carried request ID %d", m.RequestID)
	}

	// Trigger subscriptions surface as TriggerFired.
	s.SubscribeProperty(3, vmi, "tap", engine.PropertyTrigger)
	s.FireProperty(4, vmi, "tap")
	m = drainOne(t, s)
	if m.Type != MsgTriggerFired || m.Path != "tap" {
		t.Errorf("got %+v, want TriggerFired tap", m)
	}

	// Double subscribe is a no-op: one update per change.
	s.SubscribeProperty(5, vmi, "count", engine.PropertyNumber)
	s.SetProperty(6, vmi, "count", PropertyValue{Type: engine.PropertyNumber, Number: 10})
	if msgs := drain(t, s); len(msgs) != 1 {
		t.Errorf("after duplicate subscribe: %d messages, want 1", len(msgs))
	}

	// Unsubscribed changes are silent.
	s.UnsubscribeProperty(7, vmi, "count", engine.PropertyNumber)
	s.SetProperty(7, vmi, "count", PropertyValue{Type: engine.PropertyNumber, Number: 11})
	if msgs := drain(t, s); len(msgs) != 0 {
		t.Errorf("after unsubscribe: %+v, want none", msgs)
	}

	// Subscribing a missing property fails.
	s.SubscribeProperty(8, vmi, "missing", engine.PropertyNumber)
	if m := drainOne(t, s); m.Type != MsgPropertyError {
		t.Errorf("got %+v, want PropertyError", m)
	}
}

func TestServer_DeleteViewModelInstance(t *testing.T) {
	s, _ := newTestServer(t)
	file := loadSample(t, s)
	vmi := createVMI(t, s, file)

	s.SubscribeProperty(1, vmi, "count", engine.PropertyNumber)
	settle(t, s)

	s.DeleteViewModelInstance(2, vmi)
	if m := drainOne(t, s); m.Type != MsgViewModelInstanceDeleted {
		t.Fatalf("got %+v, want ViewModelInstanceDeleted", m)
	}

	// Property access through the dead handle fails.
	s.GetProperty(3, vmi, "count", engine.PropertyNumber)
	if m := drainOne(t, s); m.Type != MsgPropertyError {
		t.Errorf("got %+v, want PropertyError", m)
	}

	s.DeleteViewModelInstance(4, vmi)
	if m := drainOne(t, s); m.Type != MsgViewModelInstanceError {
		t.Errorf("double delete: got %+v, want ViewModelInstanceError", m)
	}
}
