package store

import (
	"context"

	"fashionstore/storage"
)

// Session owns the logged_in flag bucket.
type Session struct {
	kv storage.Bucket
}

func NewSession(kv storage.Bucket) *Session {
	return &Session{kv: kv}
}

func (s *Session) LoggedIn(ctx context.Context) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, storage.BucketSession)
	if err != nil {
		return false, err
	}
	return ok && raw == "true", nil
}

func (s *Session) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	if loggedIn {
		return s.kv.Put(ctx, storage.BucketSession, "true")
	}
	return s.kv.Delete(ctx, storage.BucketSession)
}
