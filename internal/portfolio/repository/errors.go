package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/kerigansolutions/kma-portfolio/internal/portfolio/domain"
)

// storeError marks err as a store failure, keeping the postgres error code
// when there is one.
func storeError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%w: %s: %s (%s %s)", domain.ErrStoreUnavailable, op, pqErr.Message, pqErr.Code, pqErr.Code.Name())
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}
