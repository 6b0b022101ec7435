package cmd

import (
	"os"
	"testing"

	"github.com/mj1618/grayscale-cli/internal/platform"
)

// withFakeProvider installs a provider backed by d for the test duration.
func withFakeProvider(t *testing.T, d platform.Display) {
	t.Helper()
	orig := platform.NewProviderFunc
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{Display: d}, nil
	}
	t.Cleanup(func() { platform.NewProviderFunc = orig })
}

// silenceStdout keeps command result output out of the test log.
func silenceStdout(t *testing.T) {
	t.Helper()
	orig := os.Stdout
	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = devnull
	t.Cleanup(func() {
		os.Stdout = orig
		devnull.Close()
	})
}

func TestRunEnable_FromOff(t *testing.T) {
	d := &fakeDisplay{on: false}
	withFakeProvider(t, d)
	silenceStdout(t)

	if err := runEnable(enableCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !d.on {
		t.Error("flag should be on")
	}
	if d.setCalls != 1 || !d.lastSet {
		t.Errorf("setter: got %d calls (last=%v), want 1 call with true", d.setCalls, d.lastSet)
	}
}

func TestRunEnable_AlreadyOn(t *testing.T) {
	d := &fakeDisplay{on: true}
	withFakeProvider(t, d)
	silenceStdout(t)

	if err := runEnable(enableCmd, nil); err != nil {
		t.Fatal(err)
	}
	if d.setCalls != 0 {
		t.Errorf("setter should never be invoked, got %d calls", d.setCalls)
	}
	if !d.on {
		t.Error("flag should remain on")
	}
}

func TestRunDisable_FromOn(t *testing.T) {
	d := &fakeDisplay{on: true}
	withFakeProvider(t, d)
	silenceStdout(t)

	if err := runDisable(disableCmd, nil); err != nil {
		t.Fatal(err)
	}
	if d.on {
		t.Error("flag should be off")
	}
	if d.setCalls != 1 || d.lastSet {
		t.Errorf("setter: got %d calls (last=%v), want 1 call with false", d.setCalls, d.lastSet)
	}
}

func TestRunDisable_AlreadyOff(t *testing.T) {
	d := &fakeDisplay{on: false}
	withFakeProvider(t, d)
	silenceStdout(t)

	if err := runDisable(disableCmd, nil); err != nil {
		t.Fatal(err)
	}
	if d.setCalls != 0 {
		t.Errorf("setter should never be invoked, got %d calls", d.setCalls)
	}
}

func TestRunStatus_NeverMutates(t *testing.T) {
	for _, initial := range []bool{true, false} {
		d := &fakeDisplay{on: initial}
		withFakeProvider(t, d)
		silenceStdout(t)

		if err := runStatus(statusCmd, nil); err != nil {
			t.Fatal(err)
		}
		if d.setCalls != 0 {
			t.Errorf("initial=%v: status performed %d setter calls", initial, d.setCalls)
		}
		if d.getCalls != 1 {
			t.Errorf("initial=%v: query calls: got %d, want 1", initial, d.getCalls)
		}
	}
}

func TestRunToggle_BothStates(t *testing.T) {
	for _, initial := range []bool{true, false} {
		d := &fakeDisplay{on: initial}
		withFakeProvider(t, d)
		silenceStdout(t)

		if err := runToggle(toggleCmd, nil); err != nil {
			t.Fatal(err)
		}
		if d.on == initial {
			t.Errorf("initial=%v: toggle did not invert the flag", initial)
		}
	}
}

func TestRunEnable_UnsupportedPlatform(t *testing.T) {
	orig := platform.NewProviderFunc
	platform.NewProviderFunc = nil
	t.Cleanup(func() { platform.NewProviderFunc = orig })

	if err := runEnable(enableCmd, nil); err == nil {
		t.Error("expected error when no platform backend is registered")
	}
}
