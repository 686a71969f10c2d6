// Package ports defines the interfaces between the conversation core and its
// external collaborators: the keyed record store, the distributed locker, the
// remote template catalog, and the speech/mediation services.
//
// The core depends only on these interfaces; production adapters and
// deterministic test fakes both live elsewhere.
package ports
