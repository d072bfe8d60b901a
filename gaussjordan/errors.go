// SPDX-License-Identifier: MIT

package gaussjordan

import (
	"errors"
	"fmt"
)

// ErrUnknownClassification is returned when decoding an unrecognized
// Classification label.
var ErrUnknownClassification = errors.New("gaussjordan: unknown classification")

func gjErrorf(tag string, err error) error {
	return fmt.Errorf("gaussjordan.%s: %w", tag, err)
}
