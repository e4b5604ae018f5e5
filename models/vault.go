package models

// VaultDocument is the single shared document holding all users, active
// records, and checked records. Every mutation reads the whole document,
// changes it in memory, and writes it back wholesale; there is no
// field-level merge and no optimistic concurrency token, so concurrent
// writers can lose updates. This is an accepted property at the target
// scale and must not be silently changed by storage backends.
type VaultDocument struct {
	Users   []User          `json:"users"`
	Records []Record        `json:"records"`
	Checked []CheckedRecord `json:"checked"`
}

// FindUserByUsername returns the index of the user with the given
// username, or -1. Matching is case-sensitive and exact.
func (d *VaultDocument) FindUserByUsername(username string) int {
	for i, u := range d.Users {
		if u.Username == username {
			return i
		}
	}
	return -1
}

// FindUserByID returns the index of the user with the given ID, or -1.
func (d *VaultDocument) FindUserByID(id string) int {
	for i, u := range d.Users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// FindRecord returns the index of the active record with the given ID,
// or -1. Checked records are not searched.
func (d *VaultDocument) FindRecord(id string) int {
	for i, r := range d.Records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// FindChecked returns the index of the checked record with the given ID,
// or -1.
func (d *VaultDocument) FindChecked(id string) int {
	for i, r := range d.Checked {
		if r.ID == id {
			return i
		}
	}
	return -1
}
