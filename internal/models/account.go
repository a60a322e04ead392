package models

// UserAccount is a registered user. Username is the primary key of both the
// credential and the entry tables and is stored lowercased by the caller.
type UserAccount struct {
	Username     string
	PasswordHash string
}

// AccountRecord is the serialized form of a UserAccount. The username is the
// key of the credential table and therefore not repeated inside the record.
type AccountRecord struct {
	HashedPassword string `json:"hashed_password"`
}

// Record converts the account into its stored form.
func (u UserAccount) Record() AccountRecord {
	return AccountRecord{HashedPassword: u.PasswordHash}
}

// AccountFromRecord rebuilds an account from its table key and stored record.
func AccountFromRecord(username string, r AccountRecord) *UserAccount {
	return &UserAccount{Username: username, PasswordHash: r.HashedPassword}
}

func (u UserAccount) String() string {
	return u.Username
}
