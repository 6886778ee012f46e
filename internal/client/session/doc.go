// Package session owns the signed-in state of the client.
//
// A Session is the single writer of the current user record. It is built
// explicitly (New) and handed to consumers, either directly or through a
// context (NewContext / FromContext). Reading a session from a context that
// carries none panics; there is no silent default.
//
// The bearer token lives in a TokenStore. SQLiteStore persists it in the
// local database under a fixed key so it survives restarts; MemoryStore is
// used in tests and for throwaway sessions.
package session
