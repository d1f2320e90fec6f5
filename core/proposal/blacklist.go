package proposal

import (
	"diamond/pkg/mtg"

	"github.com/gofrs/uuid"
)

// BlacklistReq blacklist req for add and remove
type BlacklistReq struct {
	UserID string `json:"user_id,omitempty"`
}

// MarshalBinary marshal blacklist req to binary
func (r BlacklistReq) MarshalBinary() (data []byte, err error) {
	user, e := uuid.FromString(r.UserID)
	if e != nil {
		return nil, e
	}

	return mtg.Encode(user)
}

// UnmarshalBinary unmarshal blacklist req from binary
func (r *BlacklistReq) UnmarshalBinary(data []byte) error {
	var user uuid.UUID

	if _, err := mtg.Scan(data, &user); err != nil {
		return err
	}

	r.UserID = user.String()

	return nil
}
