// Package resp encodes reply values in the RESP2 textual wire format.
//
// The gateway does not speak RESP on a socket; encoded replies are
// embedded as strings inside JSON response bodies when a client requests
// the wire-level representation. Only the writer side of the protocol
// exists here.
package resp
