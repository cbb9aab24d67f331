package module

import (
	"testing"

	phttp "repoqa/internal/platform/net/http"
)

type greeter interface{ Greet() string }

type greeterImpl struct{}

func (greeterImpl) Greet() string { return "hi" }

type fakePorts struct {
	Greeter greeter
}

type fakeModule struct {
	ports any
}

func (m *fakeModule) MountRoutes(phttp.Router) {}
func (m *fakeModule) Ports() any               { return m.ports }
func (m *fakeModule) Name() string             { return "fake" }

func TestPortsOf_WalksExportedFields(t *testing.T) {
	t.Parallel()

	m := &fakeModule{ports: fakePorts{Greeter: greeterImpl{}}}
	g, ok := PortsOf[greeter](m)
	if !ok {
		t.Fatal("want greeter port")
	}
	if g.Greet() != "hi" {
		t.Fatalf("greet = %q", g.Greet())
	}
}

func TestPortsOf_NilPortsIsNotFound(t *testing.T) {
	t.Parallel()

	if _, ok := PortsOf[greeter](&fakeModule{}); ok {
		t.Fatal("nil ports should not resolve")
	}
}

func TestMustPortsOf_PanicsOnMissing(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustPortsOf[greeter](&fakeModule{ports: fakePorts{}})
}

func TestRegistry_RoundTrip(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("fake", fakePorts{Greeter: greeterImpl{}})

	got, ok := PortsAs[fakePorts]("fake")
	if !ok {
		t.Fatal("registered ports not found")
	}
	if got.Greeter.Greet() != "hi" {
		t.Fatalf("greet = %q", got.Greeter.Greet())
	}

	if _, ok := PortsAs[fakePorts]("missing"); ok {
		t.Fatal("unknown name should miss")
	}

	Reset()
	if _, ok := PortsAs[fakePorts]("fake"); ok {
		t.Fatal("reset should clear the registry")
	}
}
