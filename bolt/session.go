package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"teamdesk"
)

var (
	sessionBucket = []byte("session")

	tokenKey    = []byte("token")
	identityKey = []byte("identity")
)

// SessionStore persists the pair {token, identity} issued at login. The
// two keys are always written together and cleared together.
type SessionStore struct {
	Driver *Driver
}

func (s *SessionStore) Save(token string, user teamdesk.User) error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionBucket)

		data, err := json.Marshal(user)
		if err != nil {
			return err
		}

		if err := bucket.Put(tokenKey, []byte(token)); err != nil {
			return err
		}
		return bucket.Put(identityKey, data)
	})
}

// Load retrieves the persisted pair. ok is false when no session has
// been saved, or when only half of the pair is present.
func (s *SessionStore) Load() (token string, user teamdesk.User, ok bool, err error) {
	err = s.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionBucket)

		tokenData := bucket.Get(tokenKey)
		identityData := bucket.Get(identityKey)
		if tokenData == nil || identityData == nil {
			return nil
		}

		if err := json.Unmarshal(identityData, &user); err != nil {
			return err
		}

		token = string(tokenData)
		ok = true
		return nil
	})
	if err != nil {
		return "", teamdesk.User{}, false, err
	}

	return token, user, ok, nil
}

func (s *SessionStore) Clear() error {
	return s.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(sessionBucket)

		if err := bucket.Delete(tokenKey); err != nil {
			return err
		}
		return bucket.Delete(identityKey)
	})
}
