package config

import (
	"errors"
	"testing"
)

func resetOptions() {
	optionsLock.Lock()
	options = make(map[string]*Option)
	optionsLock.Unlock()
	signalChanges()
}

func TestRegistry(t *testing.T) {
	resetOptions()

	if err := Register(&Option{
		Name:            "name",
		Key:             "key",
		Description:     "description",
		OptType:         OptTypeString,
		DefaultValue:    "water",
		ValidationRegex: "^(banana|water)$",
	}); err != nil {
		t.Error(err)
	}

	if err := Register(&Option{
		Name:            "name",
		Key:             "key",
		Description:     "description",
		OptType:         0,
		DefaultValue:    "default",
		ValidationRegex: "^[A-Z][a-z]+$",
	}); !errors.Is(err, ErrIncompleteCall) {
		t.Error("should fail")
	}

	if err := Register(&Option{
		Name:            "name",
		Key:             "key",
		Description:     "description",
		OptType:         OptTypeString,
		DefaultValue:    "default",
		ValidationRegex: "[",
	}); err == nil {
		t.Error("should fail")
	}

	if err := Register(&Option{
		Name:            "name",
		Key:             "key",
		Description:     "description",
		OptType:         OptTypeString,
		DefaultValue:    "apple",
		ValidationRegex: "^(banana|water)$",
	}); err == nil {
		t.Error("should fail, default does not match validation regex")
	}

	if _, err := GetOption("key"); err != nil {
		t.Error(err)
	}
	if _, err := GetOption("missing"); !errors.Is(err, ErrUnknownOption) {
		t.Error("should fail with ErrUnknownOption")
	}
	if len(Options()) != 1 {
		t.Errorf("expected 1 option, got %d", len(Options()))
	}
}
