// Package ports defines the interfaces between the application core and its
// adapters, following the hexagonal (ports and adapters) pattern.
//
// Outbound ports (TrackerClient, AuthClient) are implemented by the ACL
// adapter and called by the store layer. Collaborator ports (Confirmer,
// SessionStore) are implemented by the front end and the platform layer.
// Health ports wire downstream availability reporting into the CLI.
package ports
