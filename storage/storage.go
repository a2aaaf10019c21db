package storage

import "context"

// Bucket names used by the typed stores.
const (
	BucketProducts  = "products"
	BucketCustomers = "customers"
	BucketSales     = "sales"
	BucketSession   = "logged_in"
)

// Bucket is the persistence boundary: a synchronous key-value store holding
// one serialized string per named bucket. Get reports whether the bucket
// exists at all, so callers can tell "never written" from "empty".
type Bucket interface {
	Get(ctx context.Context, bucket string) (string, bool, error)
	Put(ctx context.Context, bucket string, value string) error
	Delete(ctx context.Context, bucket string) error
}
