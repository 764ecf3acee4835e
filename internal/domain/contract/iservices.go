package contract

// IUUIDGenerator creates new document ids.
type IUUIDGenerator interface {
	NewUUID() string
}

// IHasher hashes and verifies passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}
