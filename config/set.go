package config

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/tevino/abool"
)

var (
	validityFlag     = abool.NewBool(true)
	validityFlagLock sync.RWMutex
)

// getValidityFlag returns a flag that signifies if the configuration has been changed. This flag must not be changed, only read.
func getValidityFlag() *abool.AtomicBool {
	validityFlagLock.RLock()
	defer validityFlagLock.RUnlock()
	return validityFlag
}

// signalChanges marks the configs validityFlag as dirty, so that all cached option getters reload.
func signalChanges() {
	validityFlagLock.Lock()
	defer validityFlagLock.Unlock()

	validityFlag.SetTo(false)
	validityFlag = abool.NewBool(true)
}

// SetConfigOption sets a single value in the user defined config. A nil value resets the option to its default.
func SetConfigOption(key string, value interface{}) error {
	option, err := GetOption(key)
	if err != nil {
		return err
	}

	option.Lock()
	if value == nil {
		option.activeValue = nil
	} else {
		var vc *valueCache
		vc, err = validateValue(option, value)
		if err == nil {
			option.activeValue = vc
		}
	}
	option.Unlock()

	if err != nil {
		return err
	}

	signalChanges()
	return nil
}

// SetConfigOptionFromString parses value according to the option type and sets it like SetConfigOption.
func SetConfigOptionFromString(key string, value string) error {
	option, err := GetOption(key)
	if err != nil {
		return err
	}

	switch option.OptType {
	case OptTypeString:
		return SetConfigOption(key, value)
	case OptTypeInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return newInvalidValueError(key, value, "not an integer")
		}
		return SetConfigOption(key, n)
	case OptTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return newInvalidValueError(key, value, "not a boolean")
		}
		return SetConfigOption(key, b)
	default:
		return ErrUnsupportedType
	}
}

// setConfig replaces the user defined config. Unknown keys are ignored, invalid values are skipped and reported.
func setConfig(newValues map[string]interface{}) error {
	var firstErr error
	var errCnt int

	optionsLock.RLock()
	for key, option := range options {
		newValue, ok := newValues[key]

		option.Lock()
		option.activeValue = nil
		if ok {
			vc, err := validateValue(option, newValue)
			if err == nil {
				option.activeValue = vc
			} else {
				errCnt++
				if firstErr == nil {
					firstErr = err
				}
			}
		}
		option.Unlock()
	}
	optionsLock.RUnlock()

	signalChanges()

	if firstErr != nil {
		if errCnt > 1 {
			return fmt.Errorf("encountered %d errors, first was: %w", errCnt, firstErr)
		}
		return firstErr
	}
	return nil
}
