package background

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

const expireTimeout = time.Minute

// ExpireDonations is a background job to store the expired status on
// available donations past their expiry time. Reads derive the status on
// their own, so a missed run only delays what the stored status shows.
func (m *BackgroundManager) ExpireDonations() error {
	ctx, cancel := context.WithTimeout(context.Background(), expireTimeout)
	defer cancel()

	now := m.now()
	n, err := m.store.ExpireDonations(ctx, now)
	if err != nil {
		log.WithError(err).Error("expire donations")
		return errors.Wrap(err, "expire donations")
	}

	log.WithField("count", n).WithField("at", now).Info("donations expired")
	return nil
}
