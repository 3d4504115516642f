// Package session holds the client side session and navigation state: the five
// persisted values shared by the whole application (page, keyword, access_token,
// username, is_login).
//
// Rather than package level singletons, the values live on a Context that is created
// once per process and handed to the components that need it.
package session
