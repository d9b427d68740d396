package common

// DefaultListID is the well-known list identifier used when a share link
// does not carry an explicit one.
const DefaultListID = "support-list"
