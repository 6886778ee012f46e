// Package services holds the page-level logic of the client: what each
// screen loads, how its data is shaped, and what its actions do. Screens in
// package cli only render what these services return.
//
// Services talk to the backend through the narrow interfaces in api.go,
// which the api package's endpoint groups satisfy.
package services
