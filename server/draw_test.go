package server

import (
	"testing"

	"github.com/gogpu/motion"
)

func TestServer_CreateRenderTargetSync(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name    string
		w, h    int
		wantNil bool
	}{
		{"valid", 64, 64, false},
		{"zero width", 0, 64, true},
		{"negative height", 64, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := s.CreateRenderTargetSync(tt.w, tt.h)
			if (h == NilHandle) != tt.wantNil {
				t.Errorf("CreateRenderTargetSync(%d, %d) = %d, wantNil %v", tt.w, tt.h, h, tt.wantNil)
			}
		})
	}
}

func TestServer_Draw(t *testing.T) {
	s, eng := newTestServer(t)
	file := loadSample(t, s)
	ab := s.CreateDefaultArtboardSync(file)
	s.CreateDefaultStateMachine(1, ab)
	sm := drainOne(t, s).Handle
	target := s.CreateRenderTargetSync(200, 200)

	s.Draw(2, target, DrawEntry{
		Artboard:     ab,
		StateMachine: sm,
		Fit:          motion.FitContain,
		Alignment:    motion.AlignCenter,
		ScaleFactor:  1,
		DrawKey:      77,
	})
	m := drainOne(t, s)
	if m.Type != MsgDrawComplete || m.DrawKey != 77 || m.Handle != target {
		t.Fatalf("got %+v, want DrawComplete key 77", m)
	}
	if n := eng.Files[0].Artboards[0].DrawCount; n != 1 {
		t.Errorf("artboard drawn %d times, want 1", n)
	}

	// A static draw needs no state machine.
	s.Draw(3, target, DrawEntry{Artboard: ab, Fit: motion.FitFill, Alignment: motion.AlignCenter, DrawKey: 78})
	if m := drainOne(t, s); m.Type != MsgDrawComplete || m.DrawKey != 78 {
		t.Errorf("static draw: got %+v, want DrawComplete key 78", m)
	}
}

func TestServer_DrawErrors(t *testing.T) {
	s, _ := newTestServer(t)
	file := loadSample(t, s)
	ab := s.CreateDefaultArtboardSync(file)
	target := s.CreateRenderTargetSync(100, 100)

	// Dead target fails the whole request.
	s.Draw(1, Handle(9999), DrawEntry{Artboard: ab, DrawKey: 1})
	if m := drainOne(t, s); m.Type != MsgDrawError {
		t.Errorf("dead target: got %+v, want DrawError", m)
	}

	// Dead artboard fails the entry.
	s.Draw(2, target, DrawEntry{Artboard: Handle(9999), DrawKey: 2})
	m := drainOne(t, s)
	if m.Type != MsgDrawError || m.DrawKey != 2 {
		t.Errorf("dead artboard: got %+v, want DrawError key 2", m)
	}

	// Dead state machine fails the entry.
	s.Draw(3, target, DrawEntry{Artboard: ab, StateMachine: Handle(9999), DrawKey: 3})
	if m := drainOne(t, s); m.Type != MsgDrawError || m.DrawKey != 3 {
		t.Errorf("dead state machine: got %+v, want DrawError key 3", m)
	}
}

func TestServer_DrawBatch(t *testing.T) {
	s, eng := newTestServer(t)
	file := loadSample(t, s)
	main := s.CreateDefaultArtboardSync(file)
	alt := s.CreateArtboardByNameSync(file, "Alt")
	target := s.CreateRenderTargetSync(100, 100)

	// One bad entry does not stop the rest of the batch.
	s.DrawBatch(1, target, []DrawEntry{
		{Artboard: main, Fit: motion.FitContain, Alignment: motion.AlignCenter, DrawKey: 10},
		{Artboard: Handle(9999), DrawKey: 11},
		{Artboard: alt, Fit: motion.FitCover, Alignment: motion.AlignTopLeft, DrawKey: 12},
	})
	msgs := drain(t, s)
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3: %+v", len(msgs), msgs)
	}

	byKey := make(map[uint64]MessageType, 3)
	for _, m := range msgs {
		byKey[m.DrawKey] = m.Type
	}
	if byKey[10] != MsgDrawComplete || byKey[12] != MsgDrawComplete {
		t.Errorf("valid entries: got %v, want DrawComplete for keys 10 and 12", byKey)
	}
	if byKey[11] != MsgDrawError {
		t.Errorf("invalid entry: got %v, want DrawError for key 11", byKey)
	}

	if n := eng.Files[0].Artboards[0].DrawCount; n != 1 {
		t.Errorf("main drawn %d times, want 1", n)
	}
	if n := eng.Files[0].Artboards[1].DrawCount; n != 1 {
		t.Errorf("alt drawn %d times, want 1", n)
	}
}

func TestServer_DeleteRenderTarget(t *testing.T) {
	s, _ := newTestServer(t)
	file := loadSample(t, s)
	ab := s.CreateDefaultArtboardSync(file)
	target := s.CreateRenderTargetSync(32, 32)

	s.DeleteRenderTarget(1, target)
	if m := drainOne(t, s); m.Type != MsgRenderTargetDeleted || m.Handle != target {
		t.Fatalf("got %+v, want RenderTargetDeleted", m)
	}

	s.Draw(2, target, DrawEntry{Artboard: ab, DrawKey: 1})
	if m := drainOne(t, s); m.Type != MsgDrawError {
		t.Errorf("draw after delete: got %+v, want DrawError", m)
	}

	s.DeleteRenderTarget(3, target)
	if m := drainOne(t, s); m.Type != MsgDrawError {
		t.Errorf("double delete: got %+v, want DrawError", m)
	}
}
