package model

// User is the profile held by the session store while logged in.  There is
// no account database behind it: login synthesizes a User from the email
// address and register copies the submitted fields, so the profile exists
// only for the lifetime of the session blob.
//
// IsAdmin is a local UI toggle available to any authenticated user.  It is
// not an authorization boundary; flipping it merely gates the admin view on
// the client.
//
// Fields:
//  ID       – session-local identifier ("user_" + epoch millis).
//  FullName – display name (synthesized from the email on login).
//  Email    – address the user signed in with.
//  Mobile   – contact number (a fixed placeholder on login).
//  IsAdmin  – local admin-view toggle, persisted with the session.
type User struct {
	ID       string `json:"id"`       // session-local identifier
	FullName string `json:"fullName"` // display name
	Email    string `json:"email"`    // sign-in email
	Mobile   string `json:"mobile"`   // contact number
	IsAdmin  bool   `json:"isAdmin"`  // admin-view toggle
}
