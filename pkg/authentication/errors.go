// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"fmt"
)

// ErrTokenRejected marks a credential the identity provider refused.
// Verifier errors that do not wrap it are provider or transport failures.
var ErrTokenRejected = errors.New("token rejected")

func rejected(err error) error {
	return fmt.Errorf("%w: %w", ErrTokenRejected, err)
}
