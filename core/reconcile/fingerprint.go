package reconcile

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
)

// Fingerprint builds the stable novelty key for a record from its sequence
// and quantities. Date and species are deliberately excluded: a correction to
// an existing row must re-trigger when the quantities change, while two rows
// with identical quantities on different dates are still distinguished by
// their sequence.
func Fingerprint(rec *InventoryRecord) string {
	return fmt.Sprintf("%d-%s-%s-%s",
		rec.Sequence,
		formatQuantity(rec.Received),
		formatQuantity(rec.Shipped),
		formatQuantity(rec.Lost),
	)
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SeenStore is the persistence needed by the Detector: a single key holding
// the last surfaced fingerprint.
type SeenStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Detector decides whether an activity event is novel, i.e. has not been
// surfaced before on this installation. Only the most recent fingerprint is
// retained per channel: the requirement is "tell me about the newest thing
// since I last looked", not an audit trail.
type Detector struct {
	store SeenStore
	key   string
}

// NewDetector creates a detector persisting its last seen fingerprint under
// the given store key (one key per notification channel).
func NewDetector(store SeenStore, key string) *Detector {
	return &Detector{store: store, key: key}
}

// IsNovel reports whether the fingerprint differs from the last one seen,
// recording it as seen when it does. An unreadable stored value is treated
// as "never seen" rather than an error. When recording fails the event is
// still reported as novel alongside the error, so delivery is at least once:
// the same event may surface again after a restart.
func (d *Detector) IsNovel(ctx context.Context, fingerprint string) (bool, error) {
	stored, err := d.store.Get(ctx, d.key)
	if err != nil {
		// Missing or unreadable state is a miss; the event surfaces again.
		stored = nil
	}

	if stored != nil && bytes.Equal(stored, []byte(fingerprint)) {
		return false, nil
	}

	if err := d.store.Put(ctx, d.key, []byte(fingerprint)); err != nil {
		return true, fmt.Errorf("failed to record fingerprint: %w", err)
	}
	return true, nil
}
