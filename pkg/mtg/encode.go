package mtg

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// RawMessage raw bytes element
type RawMessage []byte

// Encode encode values to bytes, each value is length prefixed
func Encode(values ...interface{}) ([]byte, error) {
	var data []byte

	for _, value := range values {
		b, err := encodeValue(value)
		if err != nil {
			return nil, err
		}

		data = appendElement(data, b)
	}

	return data, nil
}

func appendElement(data, b []byte) []byte {
	var size [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(size[:], uint64(len(b)))
	data = append(data, size[:n]...)
	return append(data, b...)
}

func encodeValue(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case int:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int8:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int16:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int32:
		return []byte(strconv.FormatInt(int64(v), 10)), nil
	case int64:
		return []byte(strconv.FormatInt(v, 10)), nil
	case uint:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint8:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint16:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint32:
		return []byte(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return []byte(strconv.FormatUint(v, 10)), nil
	case string:
		return []byte(v), nil
	case uuid.UUID:
		return v.Bytes(), nil
	case decimal.Decimal:
		return []byte(v.String()), nil
	case RawMessage:
		return v, nil
	case []byte:
		return v, nil
	case encoding.BinaryMarshaler:
		return v.MarshalBinary()
	default:
		return nil, fmt.Errorf("mtg: encode unsupported type %T", value)
	}
}
