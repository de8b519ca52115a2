// Copyright Safing ICS Technologies GmbH. Use of this source code is governed by the AGPL license that can be found in the LICENSE file.

package dsd

// dynamic structured data
// check here for some benchmarks: https://github.com/alecthomas/go_serialization_benchmarks

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Load loads the given data into the interface, using the format identifier in the first byte.
func Load(data []byte, t interface{}) (SerializationFormat, error) {
	if len(data) < 2 {
		return 0, ErrNoMoreSpace
	}

	format := SerializationFormat(data[0])
	return format, LoadAsFormat(data[1:], format, t)
}

// LoadAsFormat loads the given data into the interface using the given format.
func LoadAsFormat(data []byte, format SerializationFormat, t interface{}) (err error) {
	switch format {
	case JSON:
		err = json.Unmarshal(data, t)
		if err != nil {
			return fmt.Errorf("dsd: failed to unpack json: %w, data: %s", err, string(data))
		}
		return nil
	case CBOR:
		err = cbor.Unmarshal(data, t)
		if err != nil {
			return fmt.Errorf("dsd: failed to unpack cbor: %w, data: %v", err, data)
		}
		return nil
	case MsgPack:
		err = msgpack.Unmarshal(data, t)
		if err != nil {
			return fmt.Errorf("dsd: failed to unpack msgpack: %w, data: %v", err, data)
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

// Dump stores the interface as a dsd formatted data structure, with the format identifier as the first byte.
func Dump(t interface{}, format SerializationFormat) ([]byte, error) {
	format, ok := format.ValidateSerializationFormat()
	if !ok {
		return nil, ErrIncompatibleFormat
	}

	data, err := DumpWithoutIdentifier(t, format)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(format)}, data...), nil
}

// DumpWithoutIdentifier stores the interface as a data structure in the given format, without the format identifier.
func DumpWithoutIdentifier(t interface{}, format SerializationFormat) (data []byte, err error) {
	format, ok := format.ValidateSerializationFormat()
	if !ok {
		return nil, ErrIncompatibleFormat
	}

	switch format {
	case JSON:
		data, err = json.Marshal(t)
		if err != nil {
			return nil, err
		}
	case CBOR:
		data, err = cbor.Marshal(t)
		if err != nil {
			return nil, err
		}
	case MsgPack:
		data, err = msgpack.Marshal(t)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}

	return data, nil
}
