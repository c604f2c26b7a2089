package server

import "fmt"

// LoadFile parses file bytes on the server goroutine. Named assets the
// file references are resolved through the server's asset registry.
// Produces FileLoaded or FileError.
func (s *Server) LoadFile(requestID uint64, data []byte) {
	s.enqueue(Command{typ: cmdLoadFile, requestID: requestID, data: data})
}

// DeleteFile releases a loaded file. Artboards and instances created from
// it stay valid and must be deleted independently.
// Produces FileDeleted or FileError.
func (s *Server) DeleteFile(requestID uint64, file Handle) {
	s.enqueue(Command{typ: cmdDeleteFile, requestID: requestID, handle: file})
}

// GetArtboardNames lists a file's artboard names in file order.
// Produces ArtboardsListed or FileError.
func (s *Server) GetArtboardNames(requestID uint64, file Handle) {
	s.enqueue(Command{typ: cmdGetArtboardNames, requestID: requestID, handle: file})
}

// GetViewModelNames lists a file's view-model names in file order.
// Produces ViewModelsListed or FileError.
func (s *Server) GetViewModelNames(requestID uint64, file Handle) {
	s.enqueue(Command{typ: cmdGetViewModelNames, requestID: requestID, handle: file})
}

// GetViewModelInstanceNames lists the pre-authored instance names of the
// named view model. Produces ViewModelInstanceNamesListed or FileError.
func (s *Server) GetViewModelInstanceNames(requestID uint64, file Handle, viewModel string) {
	s.enqueue(Command{typ: cmdGetViewModelInstanceNames, requestID: requestID, handle: file, name: viewModel})
}

// GetViewModelProperties lists the property names and types of the named
// view model. Produces ViewModelPropertiesListed or FileError.
func (s *Server) GetViewModelProperties(requestID uint64, file Handle, viewModel string) {
	s.enqueue(Command{typ: cmdGetViewModelProperties, requestID: requestID, handle: file, name: viewModel})
}

// GetEnums lists the enumerations defined by a file.
// Produces EnumsListed or FileError.
func (s *Server) GetEnums(requestID uint64, file Handle) {
	s.enqueue(Command{typ: cmdGetEnums, requestID: requestID, handle: file})
}

func (s *Server) applyLoadFile(c Command) {
	f, err := s.eng.Load(c.data, s.resolver())
	if err != nil {
		s.post(Message{Type: MsgFileError, RequestID: c.requestID, Err: fmt.Sprintf("load file: %v", err)})
		return
	}
	h := s.handles.Allocate()
	s.files[h] = f
	s.post(Message{Type: MsgFileLoaded, RequestID: c.requestID, Handle: h})
}

func (s *Server) applyDeleteFile(c Command) {
	f, ok := s.files[c.handle]
	if !ok {
		s.post(Message{Type: MsgFileError, RequestID: c.requestID, Err: fmt.Sprintf("invalid file handle %d", c.handle)})
		return
	}
	// Remove the table entry before releasing the resource so no later
	// command can observe a half-destroyed file.
	delete(s.files, c.handle)
	f.Close()
	s.post(Message{Type: MsgFileDeleted, RequestID: c.requestID, Handle: c.handle})
}

func (s *Server) applyGetArtboardNames(c Command) {
	f, ok := s.files[c.handle]
	if !ok {
		s.post(Message{Type: MsgFileError, RequestID: c.requestID, Err: fmt.Sprintf("invalid file handle %d", c.handle)})
		return
	}
	s.post(Message{Type: MsgArtboardsListed, RequestID: c.requestID, Handle: c.handle, Names: f.ArtboardNames()})
}

func (s *Server) applyGetViewModelNames(c Command) {
	f, ok := s.files[c.handle]
	if !ok {
		s.post(Message{Type: MsgFileError, RequestID: c.requestID, Err: fmt.Sprintf("invalid file handle %d", c.handle)})
		return
	}
	s.post(Message{Type: MsgViewModelsListed, RequestID: c.requestID, Handle: c.handle, Names: f.ViewModelNames()})
}

func (s *Server) applyGetViewModelInstanceNames(c Command) {
	f, ok := s.files[c.handle]
	if !ok {
		s.post(Message{Type: MsgFileError, RequestID: c.requestID, Err: fmt.Sprintf("invalid file handle %d", c.handle)})
		return
	}
	vm, err := f.ViewModelNamed(c.name)
	if err != nil {
		s.post(Message{Type: MsgFileError, RequestID: c.requestID, Err: fmt.Sprintf("view model %q: %v", c.name, err)})
		return
	}
	s.post(Message{
		Type:      MsgViewModelInstanceNamesListed,
		RequestID: c.requestID,
		Handle:    c.handle,
		Name:      c.name,
		Names:     vm.InstanceNames(),
	})
}

func (s *Server) applyGetViewModelProperties(c Command) {
	f, ok := s.files[c.handle]
	if !ok {
		s.post(Message{Type: MsgFileError, RequestID: c.requestID, Err: fmt.Sprintf("invalid file handle %d", c.handle)})
		return
	}
	vm, err := f.ViewModelNamed(c.name)
	if err != nil {
		s.post(Message{Type: MsgFileError, RequestID: c.requestID, Err: fmt.Sprintf("view model %q: %v", c.name, err)})
		return
	}
	s.post(Message{
		Type:      MsgViewModelPropertiesListed,
		RequestID: c.requestID,
		Handle:    c.handle,
		Name:      c.name,
		Props:     vm.Properties(),
	})
}

func (s *Server) applyGetEnums(c Command) {
	f, ok := s.files[c.handle]
	if !ok {
		s.post(Message{Type: MsgFileError, RequestID: c.requestID, Err: fmt.Sprintf("invalid file handle %d", c.handle)})
		return
	}
	s.post(Message{Type: MsgEnumsListed, RequestID: c.requestID, Handle: c.handle, Enums: f.Enums()})
}
