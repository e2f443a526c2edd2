package monitoring

import "testing"

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(format string, v ...interface{}) {
		called = true
	})
	Logf("handshake poll %d", 1)
	if !called {
		t.Error("custom logger was not called")
	}

	// nil installs a no-op that must not panic and must not invoke the
	// previously installed logger.
	called = false
	SetLogger(nil)
	Logf("muted")
	if called {
		t.Error("no-op logger should not invoke the previous callback")
	}
}

func TestLogf_Default(t *testing.T) {
	if Logf == nil {
		t.Fatal("Logf should not be nil by default")
	}
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logf panicked: %v", r)
		}
	}()
	Logf("default logger: %s", "ok")
}
