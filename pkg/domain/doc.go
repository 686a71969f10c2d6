// Package domain contains the core data model for the editorBot pipeline:
// the conversation record and its state enumeration, the event union applied
// to it, the script and template models, and the render plan produced at the
// end of a session.
//
// The package is dependency-free on purpose. Adapters (stores, transports,
// the template catalog client) depend on domain, never the other way around.
package domain
