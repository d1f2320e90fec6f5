package mtg

import (
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// Scan decode elements from data into dest pointers and return the remain bytes
func Scan(data []byte, dest ...interface{}) ([]byte, error) {
	for _, d := range dest {
		b, remain, err := nextElement(data)
		if err != nil {
			return nil, err
		}

		if err := scanValue(b, d); err != nil {
			return nil, err
		}

		data = remain
	}

	return data, nil
}

func nextElement(data []byte) (element, remain []byte, err error) {
	size, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, nil, errors.New("mtg: read element size failed")
	}

	data = data[n:]
	if uint64(len(data)) < size {
		return nil, nil, errors.New("mtg: element size exceeds data")
	}

	return data[:size], data[size:], nil
}

func scanValue(b []byte, dest interface{}) error {
	switch v := dest.(type) {
	case *int:
		i, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return err
		}
		*v = int(i)
	case *int8:
		i, err := strconv.ParseInt(string(b), 10, 8)
		if err != nil {
			return err
		}
		*v = int8(i)
	case *int16:
		i, err := strconv.ParseInt(string(b), 10, 16)
		if err != nil {
			return err
		}
		*v = int16(i)
	case *int32:
		i, err := strconv.ParseInt(string(b), 10, 32)
		if err != nil {
			return err
		}
		*v = int32(i)
	case *int64:
		i, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return err
		}
		*v = i
	case *uint:
		i, err := strconv.ParseUint(string(b), 10, 64)
		if err != nil {
			return err
		}
		*v = uint(i)
	case *uint8:
		i, err := strconv.ParseUint(string(b), 10, 8)
		if err != nil {
			return err
		}
		*v = uint8(i)
	case *uint16:
		i, err := strconv.ParseUint(string(b), 10, 16)
		if err != nil {
			return err
		}
		*v = uint16(i)
	case *uint32:
		i, err := strconv.ParseUint(string(b), 10, 32)
		if err != nil {
			return err
		}
		*v = uint32(i)
	case *uint64:
		i, err := strconv.ParseUint(string(b), 10, 64)
		if err != nil {
			return err
		}
		*v = i
	case *string:
		*v = string(b)
	case *uuid.UUID:
		id, err := uuid.FromBytes(b)
		if err != nil {
			return err
		}
		*v = id
	case *decimal.Decimal:
		d, err := decimal.NewFromString(string(b))
		if err != nil {
			return err
		}
		*v = d
	case *RawMessage:
		raw := make(RawMessage, len(b))
		copy(raw, b)
		*v = raw
	case encoding.BinaryUnmarshaler:
		return v.UnmarshalBinary(b)
	default:
		return fmt.Errorf("mtg: scan unsupported type %T", dest)
	}

	return nil
}
