package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a string is not a valid 24-character hex identifier.
var ErrInvalidID = errors.New("invalid identifier")

// ID is the opaque identifier shared by users, QR codes, scans and logo files.
// It is stored as a native ObjectID and rendered as hex everywhere else.
// Raw strings are only converted at the HTTP boundary through ParseID.
type ID struct {
	oid primitive.ObjectID
}

func NewID() ID {
	return ID{oid: primitive.NewObjectID()}
}

func ParseID(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID{oid: oid}, nil
}

func (id ID) Hex() string {
	return id.oid.Hex()
}

func (id ID) String() string {
	return id.oid.Hex()
}

// IsZero lets the bson encoder honour omitempty.
func (id ID) IsZero() bool {
	return id.oid.IsZero()
}

func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(id.oid)
}

func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	oid, ok := raw.ObjectIDOK()
	if !ok {
		return fmt.Errorf("%w: bson type %s", ErrInvalidID, t)
	}
	id.oid = oid
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.oid.Hex())
}

func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// IDFromObjectID wraps an ObjectID produced by the driver itself, such as a
// GridFS file id.
func IDFromObjectID(oid primitive.ObjectID) ID {
	return ID{oid: oid}
}
