package kvstore

import (
	"strconv"
	"time"
)

// Registration is the durable registration state read at startup and by
// the periodic registration check.
type Registration struct {
	Registered   bool
	Name         string
	Phone        string
	InviteCode   string
	RegisteredAt time.Time
	SkippedAt    time.Time
}

// LoadRegistration reads all registration fields from the repository.
// Absent keys come back as zero values.
func LoadRegistration(r Repository) (Registration, error) {
	var reg Registration

	flag, err := r.Get(KeyRegistered)
	if err != nil {
		return reg, err
	}
	reg.Registered = flag == "true"

	if reg.Name, err = r.Get(KeyName); err != nil {
		return reg, err
	}
	if reg.Phone, err = r.Get(KeyPhone); err != nil {
		return reg, err
	}
	if reg.InviteCode, err = r.Get(KeyInviteCode); err != nil {
		return reg, err
	}
	if reg.RegisteredAt, err = getTime(r, KeyRegisteredAt); err != nil {
		return reg, err
	}
	if reg.SkippedAt, err = getTime(r, KeySkippedAt); err != nil {
		return reg, err
	}

	return reg, nil
}

// SaveRegistration persists a completed registration: name, phone, optional
// invite code, the registered flag and the registration timestamp.
func SaveRegistration(r Repository, name, phone, inviteCode string, at time.Time) error {
	if err := r.Set(KeyName, name); err != nil {
		return err
	}
	if err := r.Set(KeyPhone, phone); err != nil {
		return err
	}
	if inviteCode != "" {
		if err := r.Set(KeyInviteCode, inviteCode); err != nil {
			return err
		}
	}
	if err := r.Set(KeyRegistered, "true"); err != nil {
		return err
	}
	return setTime(r, KeyRegisteredAt, at)
}

// SaveSkip clears the registered flag plus name and phone, and records
// only the skip timestamp.
func SaveSkip(r Repository, at time.Time) error {
	if err := r.Delete(KeyRegistered); err != nil {
		return err
	}
	if err := r.Delete(KeyName); err != nil {
		return err
	}
	if err := r.Delete(KeyPhone); err != nil {
		return err
	}
	return setTime(r, KeySkippedAt, at)
}

func getTime(r Repository, key string) (time.Time, error) {
	raw, err := r.Get(key)
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return time.Time{}, nil
	}
	unix, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Unreadable timestamps are treated as unset
		return time.Time{}, nil
	}
	return time.Unix(unix, 0), nil
}

func setTime(r Repository, key string, at time.Time) error {
	return r.Set(key, strconv.FormatInt(at.Unix(), 10))
}
