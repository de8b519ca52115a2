package config

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
)

// Variable Type IDs.
const (
	OptTypeString uint8 = 1
	OptTypeInt    uint8 = 3
	OptTypeBool   uint8 = 4
)

var (
	optionsLock sync.RWMutex
	options     = make(map[string]*Option)
)

// Option describes a configuration option.
type Option struct {
	sync.Mutex

	Name            string
	Key             string // category/sub/key
	Description     string
	OptType         uint8
	DefaultValue    interface{}
	ValidationRegex string

	compiledRegex *regexp.Regexp
	activeValue   *valueCache
}

// Register registers a new configuration option. Registering a key again replaces the option and drops its value.
func Register(option *Option) error {
	if option.Name == "" ||
		option.Key == "" ||
		option.Description == "" ||
		option.OptType == 0 {
		return ErrIncompleteCall
	}

	if option.ValidationRegex != "" {
		var err error
		option.compiledRegex, err = regexp.Compile(option.ValidationRegex)
		if err != nil {
			return fmt.Errorf("config: could not compile option.ValidationRegex: %w", err)
		}
	}

	if option.DefaultValue != nil {
		if _, err := validateValue(option, option.DefaultValue); err != nil {
			return fmt.Errorf("config: invalid default value: %w", err)
		}
	}

	optionsLock.Lock()
	options[option.Key] = option
	optionsLock.Unlock()

	signalChanges()
	return nil
}

// GetOption returns the option with the given key.
func GetOption(key string) (*Option, error) {
	optionsLock.RLock()
	defer optionsLock.RUnlock()

	option, ok := options[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOption, key)
	}
	return option, nil
}

// Options returns all registered options sorted by key.
func Options() []*Option {
	optionsLock.RLock()
	defer optionsLock.RUnlock()

	opts := make([]*Option, 0, len(options))
	for _, option := range options {
		opts = append(opts, option)
	}
	sort.Slice(opts, func(i, j int) bool {
		return opts[i].Key < opts[j].Key
	})
	return opts
}
