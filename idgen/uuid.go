// Package idgen generates the identifiers tagging reductions and their log
// records.
package idgen

import (
	"github.com/gofrs/uuid/v5"

	"github.com/go-transduce/transduce/commonerrors"
)

// GenerateUUID4 generates a random UUID.
func GenerateUUID4() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", commonerrors.WrapError(commonerrors.ErrUnexpected, err, "failed generating uuid")
	}
	return id.String(), nil
}

// IsValidUUID states whether u parses as a UUID.
func IsValidUUID(u string) bool {
	_, err := uuid.FromString(u)
	return err == nil
}
